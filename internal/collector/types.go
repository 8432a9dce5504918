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

package collector

import (
	"errors"
	"fmt"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

var (
	// ErrOutOfRange is returned for a value outside its variable's bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidNumber is returned for text that does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNoInput is returned when input ends before a value was read.
	ErrNoInput = errors.New("no input")
)

// ValidateValue checks that value lies within r. NaN is always out of range.
func ValidateValue(name string, value float64, r config.Range) error {
	if !r.Contains(value) {
		return fmt.Errorf("%w: %s %g must be between %g and %g", ErrOutOfRange, name, value, r.Min, r.Max)
	}
	return nil
}

// ValidateRequest checks demand and stock against the product's bounds.
func ValidateRequest(req interfaces.ProductionRequest, provider interfaces.BoundsProvider) error {
	bounds, err := provider.BoundsFor(req.ProductName())
	if err != nil {
		return fmt.Errorf("resolving bounds for product %q: %w", req.ProductName(), err)
	}
	return errors.Join(
		ValidateValue("demand", req.Demand, bounds.Demand()),
		ValidateValue("stock", req.Stock, bounds.Stock()),
	)
}
