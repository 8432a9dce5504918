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

var _ = Describe("Consequents", func() {
	production := config.DefaultDomainBounds().Production()

	DescribeTable("inverse membership endpoints",
		func(d Direction, alpha, want float64) {
			Expect(d.Consequent(production, alpha)).To(Equal(want))
		},
		Entry("decrease at 0 is production_max", Decrease, 0.0, 6000.0),
		Entry("decrease at 1 is production_min", Decrease, 1.0, 1000.0),
		Entry("increase at 0 is production_min", Increase, 0.0, 1000.0),
		Entry("increase at 1 is production_max", Increase, 1.0, 6000.0),
		Entry("decrease at 0.5 is the midpoint", Decrease, 0.5, 3500.0),
		Entry("increase at 0.5 is the midpoint", Increase, 0.5, 3500.0),
	)

	It("should stay within the production range for alpha in [0, 1]", func() {
		for alpha := 0.0; alpha <= 1; alpha += 0.05 {
			for _, z := range []float64{DecreaseZ(production, alpha), IncreaseZ(production, alpha)} {
				Expect(z).To(BeNumerically(">=", production.Min-tolerance))
				Expect(z).To(BeNumerically("<=", production.Max+tolerance))
			}
		}
	})

	It("should mirror each other", func() {
		for alpha := 0.0; alpha <= 1; alpha += 0.1 {
			Expect(DecreaseZ(production, alpha) + IncreaseZ(production, alpha)).
				To(BeNumerically("~", production.Min+production.Max, tolerance))
		}
	})
})
