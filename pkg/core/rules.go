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

// Direction is the consequent of a rule.
type Direction string

const (
	Decrease Direction = "decrease"
	Increase Direction = "increase"
)

// Rule is one IF demand AND stock THEN production rule.
type Rule struct {
	Name      string    `json:"name"`
	Demand    Term      `json:"demand"`
	Stock     Term      `json:"stock"`
	Direction Direction `json:"direction"`
}

// Activation is a rule evaluated against a pair of inputs: Alpha is the firing
// strength and Z the crisp consequent for that strength.
type Activation struct {
	Rule  Rule    `json:"rule"`
	Alpha float64 `json:"alpha"`
	Z     float64 `json:"z"`
}

// NumRules is the size of the rule base.
const NumRules = 4

var ruleBase = [NumRules]Rule{
	{Name: "R1", Demand: DemandLow, Stock: StockPlentiful, Direction: Decrease},
	{Name: "R2", Demand: DemandLow, Stock: StockScarce, Direction: Decrease},
	{Name: "R3", Demand: DemandHigh, Stock: StockPlentiful, Direction: Decrease},
	{Name: "R4", Demand: DemandHigh, Stock: StockScarce, Direction: Increase},
}

// Rules returns a copy of the rule base.
func Rules() [NumRules]Rule {
	return ruleBase
}

// Strength computes the rule's firing strength with the minimum T-norm.
func (r Rule) Strength(m Memberships) float64 {
	return min(m.Degree(r.Demand), m.Degree(r.Stock))
}

// Fire evaluates every rule, in table order, against m.
func Fire(m Memberships, production config.Range) [NumRules]Activation {
	var out [NumRules]Activation
	for i, r := range ruleBase {
		alpha := r.Strength(m)
		out[i] = Activation{
			Rule:  r,
			Alpha: alpha,
			Z:     r.Direction.Consequent(production, alpha),
		}
	}
	return out
}
