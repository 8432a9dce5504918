/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package planner

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"k8s.io/utils/ptr"

	"github.com/llm-d/llm-d-production-planner/internal/config"
	"github.com/llm-d/llm-d-production-planner/internal/engines/common"
	"github.com/llm-d/llm-d-production-planner/internal/engines/limiter"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/internal/metrics"
	pkgconfig "github.com/llm-d/llm-d-production-planner/pkg/config"
)

const tolerance = 1e-9

type failingLimiter struct{}

func (failingLimiter) Limit(context.Context, *interfaces.ProductionDecision) error {
	return errors.New("limiter broke")
}

var _ = Describe("Engine", func() {
	var (
		ctx      context.Context
		global   *common.GlobalConfig
		fixedNow time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		global = common.NewGlobalConfig(pkgconfig.DefaultDomainBounds(), config.BoundsConfigData{
			"small": {
				Product:       "small",
				DemandMin:     ptr.To(0.0),
				DemandMax:     ptr.To(10.0),
				StockMin:      ptr.To(0.0),
				StockMax:      ptr.To(4.0),
				ProductionMin: ptr.To(0.0),
				ProductionMax: ptr.To(100.0),
			},
			"broken": {Product: "broken", ProductionMin: ptr.To(7000.0)},
		})
	})

	Context("NewEngine", func() {
		It("rejects a nil bounds provider", func() {
			_, err := NewEngine(nil, nil)
			Expect(err).To(HaveOccurred())
		})

		It("reports raw values without a limiter", func() {
			engine, err := NewEngine(global, nil)
			Expect(err).NotTo(HaveOccurred())

			d, err := engine.Plan(ctx, interfaces.ProductionRequest{Demand: 2000, Stock: 300})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Recommended).To(BeNumerically("~", 3061.9658119658116, tolerance))
			Expect(d.Limited).To(BeFalse())
		})
	})

	Context("Plan", func() {
		var engine *Engine

		BeforeEach(func() {
			lim, err := limiter.NewLimiter(limiter.UnitStrategy, nil)
			Expect(err).NotTo(HaveOccurred())
			engine, err = NewEngine(global, lim, WithClock(func() time.Time { return fixedNow }))
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("recommends production with the default bounds",
			func(demand, stock, raw, rounded float64) {
				d, err := engine.Plan(ctx, interfaces.ProductionRequest{Demand: demand, Stock: stock})
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Product).To(Equal(interfaces.DefaultProduct))
				Expect(d.RawRecommended).To(BeNumerically("~", raw, tolerance))
				Expect(d.Recommended).To(Equal(rounded))
				Expect(d.Timestamp).To(Equal(fixedNow))
			},
			Entry("low demand, plentiful stock", 1000.0, 1000.0, 1000.0, 1000.0),
			Entry("high demand, scarce stock", 5000.0, 100.0, 6000.0, 6000.0),
			Entry("midpoints", 3000.0, 550.0, 3500.0, 3500.0),
			Entry("interior point", 2000.0, 300.0, 3061.9658119658116, 3062.0),
			Entry("interior point near the middle", 2500.0, 700.0, 3406.25, 3406.0),
			Entry("high demand, mostly scarce", 4200.0, 250.0, 5041.666666666666, 5042.0),
		)

		It("uses per-product bounds", func() {
			d, err := engine.Plan(ctx, interfaces.ProductionRequest{Product: "small", Demand: 10, Stock: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Bounds.ProductionMax).To(Equal(100.0))
			Expect(d.RawRecommended).To(BeNumerically("~", 75.0, tolerance))
		})

		It("fails for products with invalid merged bounds", func() {
			_, err := engine.Plan(ctx, interfaces.ProductionRequest{Product: "broken", Demand: 3000, Stock: 500})
			Expect(err).To(MatchError(pkgconfig.ErrInvalidBounds))
		})

		It("caches the latest decision per product", func() {
			_, err := engine.Plan(ctx, interfaces.ProductionRequest{Product: "widget", Demand: 1000, Stock: 1000})
			Expect(err).NotTo(HaveOccurred())
			_, err = engine.Plan(ctx, interfaces.ProductionRequest{Product: "widget", Demand: 5000, Stock: 100})
			Expect(err).NotTo(HaveOccurred())

			latest, ok := engine.Latest("widget")
			Expect(ok).To(BeTrue())
			Expect(latest.Recommended).To(Equal(6000.0))

			_, ok = engine.Latest("gadget")
			Expect(ok).To(BeFalse())
		})

		It("wraps limiter errors", func() {
			broken, err := NewEngine(global, failingLimiter{})
			Expect(err).NotTo(HaveOccurred())
			_, err = broken.Plan(ctx, interfaces.ProductionRequest{Demand: 3000, Stock: 550})
			Expect(err).To(MatchError(ContainSubstring("limiter broke")))
		})
	})

	Context("with a capacity limiter and metrics", func() {
		It("caps the recommendation and records metrics", func() {
			lim, err := limiter.NewLimiter(limiter.CapacityStrategy, &limiter.LimiterConfig{Capacity: 4500})
			Expect(err).NotTo(HaveOccurred())
			reg := prometheus.NewRegistry()
			recorder, err := metrics.NewRecorder(reg)
			Expect(err).NotTo(HaveOccurred())

			engine, err := NewEngine(global, lim, WithRecorder(recorder))
			Expect(err).NotTo(HaveOccurred())

			d, err := engine.Plan(ctx, interfaces.ProductionRequest{Product: "widget", Demand: 5000, Stock: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.RawRecommended).To(Equal(6000.0))
			Expect(d.Recommended).To(Equal(4500.0))
			Expect(d.Limited).To(BeTrue())

			count, err := testutil.GatherAndCount(reg, "production_planner_inferences_total")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Context("PlanAll", func() {
		var engine *Engine

		BeforeEach(func() {
			var err error
			engine, err = NewEngine(global, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("plans every valid request and joins the errors", func() {
			decisions, err := engine.PlanAll(ctx, []interfaces.ProductionRequest{
				{Product: "widget", Demand: 1000, Stock: 1000},
				{Product: "broken", Demand: 3000, Stock: 500},
				{Product: "small", Demand: 10, Stock: 1},
			})
			Expect(err).To(MatchError(ContainSubstring("request 1 (broken)")))
			Expect(decisions).To(HaveLen(2))
			Expect(decisions[0].Product).To(Equal("widget"))
			Expect(decisions[1].Product).To(Equal("small"))
		})

		It("stops when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			decisions, err := engine.PlanAll(cancelled, []interfaces.ProductionRequest{{Demand: 1000, Stock: 1000}})
			Expect(err).To(MatchError(context.Canceled))
			Expect(decisions).To(BeEmpty())
		})
	})
})
