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

var _ = Describe("Rule base", func() {
	It("should cover every demand/stock combination exactly once", func() {
		seen := map[[2]Term]int{}
		for _, r := range Rules() {
			seen[[2]Term{r.Demand, r.Stock}]++
		}
		Expect(seen).To(HaveLen(4))
		for _, d := range []Term{DemandLow, DemandHigh} {
			for _, s := range []Term{StockScarce, StockPlentiful} {
				Expect(seen[[2]Term{d, s}]).To(Equal(1))
			}
		}
	})

	It("should only increase production on high demand and scarce stock", func() {
		for _, r := range Rules() {
			if r.Demand == DemandHigh && r.Stock == StockScarce {
				Expect(r.Direction).To(Equal(Increase))
			} else {
				Expect(r.Direction).To(Equal(Decrease))
			}
		}
	})

	It("should not expose the table for mutation", func() {
		rules := Rules()
		rules[0].Direction = Increase
		Expect(Rules()[0].Direction).To(Equal(Decrease))
	})

	DescribeTable("firing strength uses the minimum of both antecedents",
		func(name string, want float64) {
			m := Memberships{DemandLow: 0.2, DemandHigh: 0.8, StockScarce: 0.6, StockPlentiful: 0.4}
			for _, r := range Rules() {
				if r.Name == name {
					Expect(r.Strength(m)).To(Equal(want))
					return
				}
			}
			Fail("rule not found: " + name)
		},
		Entry("R1 low demand, plentiful stock", "R1", 0.2),
		Entry("R2 low demand, scarce stock", "R2", 0.2),
		Entry("R3 high demand, plentiful stock", "R3", 0.4),
		Entry("R4 high demand, scarce stock", "R4", 0.6),
	)

	Describe("Fire", func() {
		production := config.DefaultDomainBounds().Production()

		It("should return activations in table order with their consequents", func() {
			acts := Fire(Memberships{DemandLow: 1, StockPlentiful: 1}, production)
			Expect(acts[0].Rule.Name).To(Equal("R1"))
			Expect(acts[0].Alpha).To(Equal(1.0))
			Expect(acts[0].Z).To(Equal(1000.0))
			for _, a := range acts[1:] {
				Expect(a.Alpha).To(Equal(0.0))
			}
			Expect(acts[3].Z).To(Equal(1000.0))
			Expect(acts[1].Z).To(Equal(6000.0))
		})

		It("should keep every strength within [0, 1]", func() {
			bounds := config.DefaultDomainBounds()
			for d := 800.0; d <= 5200; d += 200 {
				for s := 50.0; s <= 1050; s += 50 {
					for _, a := range Fire(Fuzzify(bounds, d, s), production) {
						Expect(a.Alpha).To(BeNumerically(">=", 0))
						Expect(a.Alpha).To(BeNumerically("<=", 1))
					}
				}
			}
		})
	})
})
