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

package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-production-planner/internal/actuator"
	"github.com/llm-d/llm-d-production-planner/internal/collector"
	"github.com/llm-d/llm-d-production-planner/internal/config"
	"github.com/llm-d/llm-d-production-planner/internal/engines/common"
	"github.com/llm-d/llm-d-production-planner/internal/engines/limiter"
	"github.com/llm-d/llm-d-production-planner/internal/engines/planner"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	pkgconfig "github.com/llm-d/llm-d-production-planner/pkg/config"
)

type fakeSource struct {
	reqs []interfaces.ProductionRequest
	err  error
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) Collect(context.Context) ([]interfaces.ProductionRequest, error) {
	return s.reqs, s.err
}

type fakePlanner struct {
	decisions []interfaces.ProductionDecision
	err       error
	calls     int
}

func (p *fakePlanner) PlanAll(context.Context, []interfaces.ProductionRequest) ([]interfaces.ProductionDecision, error) {
	p.calls++
	return p.decisions, p.err
}

type recordingActuator struct {
	emitted []interfaces.ProductionDecision
	err     error
}

func (a *recordingActuator) Emit(_ context.Context, decisions []interfaces.ProductionDecision) error {
	a.emitted = append(a.emitted, decisions...)
	return a.err
}

var _ = Describe("Controller", func() {
	var (
		ctx context.Context
		act *recordingActuator
	)

	BeforeEach(func() {
		ctx = context.Background()
		act = &recordingActuator{}
	})

	It("aborts when collection fails", func() {
		p := &fakePlanner{}
		c := NewController(&fakeSource{err: collector.ErrNoInput}, p, act)

		_, err := c.Run(ctx)
		Expect(err).To(MatchError(collector.ErrNoInput))
		Expect(err.Error()).To(ContainSubstring("collecting requests from fake"))
		Expect(p.calls).To(BeZero())
		Expect(act.emitted).To(BeEmpty())
	})

	It("emits the planned decisions and reports planning errors", func() {
		planErr := errors.New("request 1 (broken): bad bounds")
		p := &fakePlanner{
			decisions: []interfaces.ProductionDecision{{Product: "widget", Recommended: 1000}},
			err:       planErr,
		}
		c := NewController(&fakeSource{reqs: make([]interfaces.ProductionRequest, 2)}, p, act)

		decisions, err := c.Run(ctx)
		Expect(err).To(MatchError(planErr))
		Expect(decisions).To(HaveLen(1))
		Expect(act.emitted).To(HaveLen(1))
	})

	It("does not emit when nothing was planned", func() {
		planErr := errors.New("everything failed")
		c := NewController(&fakeSource{reqs: make([]interfaces.ProductionRequest, 1)}, &fakePlanner{err: planErr}, act)

		decisions, err := c.Run(ctx)
		Expect(err).To(MatchError(planErr))
		Expect(decisions).To(BeEmpty())
		Expect(act.emitted).To(BeEmpty())
	})

	It("wraps actuator errors", func() {
		act.err = errors.New("stdout closed")
		p := &fakePlanner{decisions: []interfaces.ProductionDecision{{Product: "widget"}}}
		c := NewController(&fakeSource{reqs: make([]interfaces.ProductionRequest, 1)}, p, act)

		_, err := c.Run(ctx)
		Expect(err).To(MatchError(ContainSubstring("emitting decisions: stdout closed")))
	})

	Context("with the real pipeline", func() {
		var (
			global *common.GlobalConfig
			engine *planner.Engine
		)

		BeforeEach(func() {
			global = common.NewGlobalConfig(pkgconfig.DefaultDomainBounds(), config.BoundsConfigData{})
			lim, err := limiter.NewLimiter(limiter.UnitStrategy, nil)
			Expect(err).NotTo(HaveOccurred())
			engine, err = planner.NewEngine(global, lim)
			Expect(err).NotTo(HaveOccurred())
		})

		It("plans a console session end to end", func() {
			var prompts, report bytes.Buffer
			source := collector.NewConsoleSource(bytes.NewBufferString("abc\n2000\n300\n"), &prompts, global, collector.ConsoleSourceConfig{})
			c := NewController(source, engine, actuator.NewTextActuator(&report, false))

			decisions, err := c.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(decisions).To(HaveLen(1))
			Expect(prompts.String()).To(ContainSubstring("Please enter a valid number!"))
			Expect(report.String()).To(Equal("\n=== CALCULATION RESULT ===\n" +
				"Demand: 2000 units\n" +
				"Stock: 300 units\n" +
				"Recommended Production: 3062 units\n"))
		})

		It("plans a batch file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "requests.yaml")
			doc := "requests:\n" +
				"  - product: widget\n    demand: 5000\n    stock: 100\n" +
				"  - product: gadget\n    demand: 1000\n    stock: 1000\n"
			Expect(os.WriteFile(path, []byte(doc), 0o600)).To(Succeed())

			var report bytes.Buffer
			c := NewController(collector.NewFileSource(path, global), engine, actuator.NewDocumentActuator(&report, actuator.FormatYAML))

			decisions, err := c.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(decisions).To(HaveLen(2))
			Expect(decisions[0].Recommended).To(Equal(6000.0))
			Expect(decisions[1].Recommended).To(Equal(1000.0))
			Expect(report.String()).To(ContainSubstring("product: gadget"))

			latest, ok := engine.Latest("widget")
			Expect(ok).To(BeTrue())
			Expect(latest.Recommended).To(Equal(6000.0))
		})
	})
})
