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

package solver

import (
	"fmt"

	"github.com/llm-d/llm-d-production-planner/pkg/config"
	"github.com/llm-d/llm-d-production-planner/pkg/core"
)

// Solver recommends a production quantity for a demand and stock pair.
type Solver struct {
	bounds config.DomainBounds
}

// Inference is the trace of one solver run.
type Inference struct {
	Demand        float64                        `json:"demand"`
	Stock         float64                        `json:"stock"`
	Memberships   core.Memberships               `json:"memberships"`
	Activations   [core.NumRules]core.Activation `json:"activations"`
	TotalStrength float64                        `json:"totalStrength"`
	Recommended   float64                        `json:"recommended"`
	Fallback      bool                           `json:"fallback"`
}

// NewSolver validates bounds and returns a solver over them.
func NewSolver(bounds config.DomainBounds) (*Solver, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("creating solver: %w", err)
	}
	return &Solver{bounds: bounds}, nil
}

// NewDefaultSolver returns a solver over the reference bounds.
func NewDefaultSolver() *Solver {
	return &Solver{bounds: config.DefaultDomainBounds()}
}

// Bounds returns the solver's domain bounds.
func (s *Solver) Bounds() config.DomainBounds {
	return s.bounds
}

// Infer returns the recommended production.
func (s *Solver) Infer(demand, stock float64) float64 {
	return s.Explain(demand, stock).Recommended
}

// Explain runs the pipeline and keeps every intermediate value.
func (s *Solver) Explain(demand, stock float64) Inference {
	production := s.bounds.Production()
	m := core.Fuzzify(s.bounds, demand, stock)
	acts := core.Fire(m, production)

	var total float64
	for _, a := range acts {
		total += a.Alpha
	}
	recommended, fallback := core.Aggregate(acts[:], production)

	return Inference{
		Demand:        demand,
		Stock:         stock,
		Memberships:   m,
		Activations:   acts,
		TotalStrength: total,
		Recommended:   recommended,
		Fallback:      fallback,
	}
}

// Dominant returns the strongest rule of the inference.
func (in Inference) Dominant() core.Activation {
	best, _ := core.Dominant(in.Activations[:])
	return best
}
