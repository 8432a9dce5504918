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

package limiter

import (
	"context"
	"fmt"
	"math"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// CapacityLimiter caps the recommendation at the plant capacity, then rounds
// it to whole units.
type CapacityLimiter struct {
	config *LimiterConfig
}

// NewCapacityLimiter creates a new CapacityLimiter instance.
func NewCapacityLimiter(config *LimiterConfig) (*CapacityLimiter, error) {
	if config == nil {
		return nil, fmt.Errorf("capacity limiter config cannot be nil")
	}
	if !(config.Capacity > 0) || math.IsInf(config.Capacity, 0) {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidCapacity, config.Capacity)
	}
	return &CapacityLimiter{config: config}, nil
}

// Limit implements Limiter.
func (l *CapacityLimiter) Limit(ctx context.Context, decision *interfaces.ProductionDecision) error {
	if decision == nil {
		return errNilDecision
	}
	logger := ctrl.LoggerFrom(ctx)

	value := decision.RawRecommended
	if value > l.config.Capacity {
		logger.Info("Recommendation exceeds plant capacity, capping",
			"product", decision.Product,
			"recommended", value,
			"capacity", l.config.Capacity)
		value = l.config.Capacity
		decision.Limited = true
	}
	if l.config.Capacity < decision.Bounds.ProductionMin {
		logger.Info("Plant capacity is below the production range",
			"product", decision.Product,
			"capacity", l.config.Capacity,
			"productionMin", decision.Bounds.ProductionMin)
	}
	decision.Recommended = RoundUnits(value)
	return nil
}
