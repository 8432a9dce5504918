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
	"gonum.org/v1/gonum/floats"

	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

// Aggregate defuzzifies the activations as the alpha-weighted average of their
// consequents. When the total strength is zero the midpoint of the production
// range is returned and fallback is true.
//
// With complementary ramps some rule always fires at >= 0.5 for finite inputs,
// so the fallback only triggers for hand-built activations.
func Aggregate(activations []Activation, production config.Range) (recommended float64, fallback bool) {
	alphas := make([]float64, len(activations))
	zs := make([]float64, len(activations))
	for i, a := range activations {
		alphas[i] = a.Alpha
		zs[i] = a.Z
	}

	total := floats.Sum(alphas)
	if total == 0 {
		return production.Midpoint(), true
	}
	return floats.Dot(alphas, zs) / total, false
}

// Dominant returns the activation with the highest strength. Ties go to the
// earlier rule. It returns false for an empty slice.
func Dominant(activations []Activation) (Activation, bool) {
	if len(activations) == 0 {
		return Activation{}, false
	}
	best := activations[0]
	for _, a := range activations[1:] {
		if a.Alpha > best.Alpha {
			best = a
		}
	}
	return best, true
}
