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

package config

import (
	"errors"
	"fmt"
	"math"
)

// Reference bounds of the planner.
const (
	DefaultDemandMin     = 1000.0
	DefaultDemandMax     = 5000.0
	DefaultStockMin      = 100.0
	DefaultStockMax      = 1000.0
	DefaultProductionMin = 1000.0
	DefaultProductionMax = 6000.0
)

// ErrInvalidBounds is returned when a bound pair cannot define a universe of discourse.
var ErrInvalidBounds = errors.New("invalid domain bounds")

// Range is a closed interval [Min, Max] over one variable.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Midpoint returns the center of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether Min <= x <= Max. NaN is never contained.
func (r Range) Contains(x float64) bool {
	return r.Min <= x && x <= r.Max
}

// Validate checks that the range is finite and non-degenerate.
func (r Range) Validate(name string) error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: %s bounds must be finite, got [%g, %g]", ErrInvalidBounds, name, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: %s_min (%g) must be < %s_max (%g)", ErrInvalidBounds, name, r.Min, name, r.Max)
	}
	return nil
}

// String renders the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// DomainBounds holds the six scalars bounding demand, stock and production.
type DomainBounds struct {
	DemandMin     float64 `yaml:"demand_min" json:"demand_min" mapstructure:"demand_min"`
	DemandMax     float64 `yaml:"demand_max" json:"demand_max" mapstructure:"demand_max"`
	StockMin      float64 `yaml:"stock_min" json:"stock_min" mapstructure:"stock_min"`
	StockMax      float64 `yaml:"stock_max" json:"stock_max" mapstructure:"stock_max"`
	ProductionMin float64 `yaml:"production_min" json:"production_min" mapstructure:"production_min"`
	ProductionMax float64 `yaml:"production_max" json:"production_max" mapstructure:"production_max"`
}

// DefaultDomainBounds returns the reference bounds.
func DefaultDomainBounds() DomainBounds {
	return DomainBounds{
		DemandMin:     DefaultDemandMin,
		DemandMax:     DefaultDemandMax,
		StockMin:      DefaultStockMin,
		StockMax:      DefaultStockMax,
		ProductionMin: DefaultProductionMin,
		ProductionMax: DefaultProductionMax,
	}
}

// Demand returns the demand universe.
func (b DomainBounds) Demand() Range {
	return Range{Min: b.DemandMin, Max: b.DemandMax}
}

// Stock returns the stock universe.
func (b DomainBounds) Stock() Range {
	return Range{Min: b.StockMin, Max: b.StockMax}
}

// Production returns the production universe.
func (b DomainBounds) Production() Range {
	return Range{Min: b.ProductionMin, Max: b.ProductionMax}
}

// Validate checks every bound pair. All violations are reported together.
func (b DomainBounds) Validate() error {
	return errors.Join(
		b.Demand().Validate("demand"),
		b.Stock().Validate("stock"),
		b.Production().Validate("production"),
	)
}
