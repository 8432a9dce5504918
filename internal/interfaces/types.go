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

// Package interfaces holds the records and contracts shared by the planner's stages.
package interfaces

import (
	"time"

	"github.com/llm-d/llm-d-production-planner/pkg/config"
	"github.com/llm-d/llm-d-production-planner/pkg/solver"
)

// DefaultProduct is used for requests that do not name a product.
const DefaultProduct = "default"

// ProductionRequest is one validated (demand, stock) pair to plan for.
type ProductionRequest struct {
	Product string  `yaml:"product,omitempty" json:"product,omitempty"`
	Demand  float64 `yaml:"demand" json:"demand"`
	Stock   float64 `yaml:"stock" json:"stock"`
}

// ProductName returns the request's product, or DefaultProduct when unset.
func (r ProductionRequest) ProductName() string {
	if r.Product == "" {
		return DefaultProduct
	}
	return r.Product
}

// ProductionDecision is the planner's answer to a ProductionRequest.
type ProductionDecision struct {
	Product string
	Demand  float64
	Stock   float64
	Bounds  config.DomainBounds

	// Inference is the full trace of the solver run.
	Inference solver.Inference

	// RawRecommended is the defuzzified value before any limiter ran.
	RawRecommended float64
	// Recommended is the value reported to the operator.
	Recommended float64
	// Limited is true when a limiter changed the recommendation.
	Limited bool

	Timestamp time.Time
}

// BoundsProvider resolves the effective domain bounds of a product.
type BoundsProvider interface {
	BoundsFor(product string) (config.DomainBounds, error)
}
