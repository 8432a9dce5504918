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

// Term names a linguistic set over one input variable.
type Term string

const (
	DemandLow      Term = "demand_low"
	DemandHigh     Term = "demand_high"
	StockScarce    Term = "stock_scarce"
	StockPlentiful Term = "stock_plentiful"
)

// Low is the decreasing ramp over r: 1 at or below Min, 0 at or above Max.
func Low(r config.Range, x float64) float64 {
	switch {
	case x <= r.Min:
		return 1
	case x >= r.Max:
		return 0
	default:
		return (r.Max - x) / r.Span()
	}
}

// High is the increasing ramp over r, the complement of Low.
func High(r config.Range, x float64) float64 {
	switch {
	case x <= r.Min:
		return 0
	case x >= r.Max:
		return 1
	default:
		return (x - r.Min) / r.Span()
	}
}

// Memberships holds the degree of every linguistic term for one (demand, stock) pair.
type Memberships struct {
	DemandLow      float64 `json:"demandLow"`
	DemandHigh     float64 `json:"demandHigh"`
	StockScarce    float64 `json:"stockScarce"`
	StockPlentiful float64 `json:"stockPlentiful"`
}

// Fuzzify evaluates all four membership functions.
func Fuzzify(bounds config.DomainBounds, demand, stock float64) Memberships {
	d, s := bounds.Demand(), bounds.Stock()
	return Memberships{
		DemandLow:      Low(d, demand),
		DemandHigh:     High(d, demand),
		StockScarce:    Low(s, stock),
		StockPlentiful: High(s, stock),
	}
}

// Degree returns the membership degree of the given term. Unknown terms have degree 0.
func (m Memberships) Degree(t Term) float64 {
	switch t {
	case DemandLow:
		return m.DemandLow
	case DemandHigh:
		return m.DemandHigh
	case StockScarce:
		return m.StockScarce
	case StockPlentiful:
		return m.StockPlentiful
	default:
		return 0
	}
}
