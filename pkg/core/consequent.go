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
	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

// DecreaseZ inverts the falling consequent set: alpha 0 maps to Max, alpha 1 to Min.
func DecreaseZ(production config.Range, alpha float64) float64 {
	return production.Max - alpha*production.Span()
}

// IncreaseZ inverts the rising consequent set: alpha 0 maps to Min, alpha 1 to Max.
func IncreaseZ(production config.Range, alpha float64) float64 {
	return production.Min + alpha*production.Span()
}

// Consequent maps a firing strength onto production for this direction.
func (d Direction) Consequent(production config.Range, alpha float64) float64 {
	if d == Increase {
		return IncreaseZ(production, alpha)
	}
	return DecreaseZ(production, alpha)
}
