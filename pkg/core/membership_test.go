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

package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

const tolerance = 1e-9

var _ = Describe("Membership ramps", func() {
	var bounds config.DomainBounds

	BeforeEach(func() {
		bounds = config.DefaultDomainBounds()
	})

	Context("over the demand universe", func() {
		It("should saturate at or below demand_min", func() {
			for _, x := range []float64{-1e9, 0, 999.5, 1000} {
				Expect(Low(bounds.Demand(), x)).To(Equal(1.0))
				Expect(High(bounds.Demand(), x)).To(Equal(0.0))
			}
		})

		It("should saturate at or above demand_max", func() {
			for _, x := range []float64{5000, 5000.5, 1e9} {
				Expect(Low(bounds.Demand(), x)).To(Equal(0.0))
				Expect(High(bounds.Demand(), x)).To(Equal(1.0))
			}
		})

		It("should keep low and high complementary in between", func() {
			for x := 1000.0; x <= 5000; x += 37 {
				low, high := Low(bounds.Demand(), x), High(bounds.Demand(), x)
				Expect(low).To(BeNumerically(">=", 0))
				Expect(low).To(BeNumerically("<=", 1))
				Expect(low + high).To(BeNumerically("~", 1.0, tolerance))
			}
		})

		It("should interpolate linearly", func() {
			Expect(Low(bounds.Demand(), 2000)).To(BeNumerically("~", 0.75, tolerance))
			Expect(High(bounds.Demand(), 2000)).To(BeNumerically("~", 0.25, tolerance))
		})
	})

	Context("over the stock universe", func() {
		It("should saturate at the bounds", func() {
			Expect(Low(bounds.Stock(), 100)).To(Equal(1.0))
			Expect(High(bounds.Stock(), 100)).To(Equal(0.0))
			Expect(Low(bounds.Stock(), 1000)).To(Equal(0.0))
			Expect(High(bounds.Stock(), 1000)).To(Equal(1.0))
		})

		It("should keep scarce and plentiful complementary in between", func() {
			for x := 100.0; x <= 1000; x += 7.5 {
				m := Fuzzify(bounds, 3000, x)
				Expect(m.StockScarce + m.StockPlentiful).To(BeNumerically("~", 1.0, tolerance))
			}
		})
	})

	Describe("Fuzzify", func() {
		It("should put the midpoints at 0.5 everywhere", func() {
			m := Fuzzify(bounds, 3000, 550)
			Expect(m.DemandLow).To(BeNumerically("~", 0.5, tolerance))
			Expect(m.DemandHigh).To(BeNumerically("~", 0.5, tolerance))
			Expect(m.StockScarce).To(BeNumerically("~", 0.5, tolerance))
			Expect(m.StockPlentiful).To(BeNumerically("~", 0.5, tolerance))
		})

		DescribeTable("Degree",
			func(term Term, want float64) {
				m := Memberships{DemandLow: 0.1, DemandHigh: 0.9, StockScarce: 0.3, StockPlentiful: 0.7}
				Expect(m.Degree(term)).To(Equal(want))
			},
			Entry("demand low", DemandLow, 0.1),
			Entry("demand high", DemandHigh, 0.9),
			Entry("stock scarce", StockScarce, 0.3),
			Entry("stock plentiful", StockPlentiful, 0.7),
			Entry("unknown term", Term("weather_sunny"), 0.0),
		)
	})
})
