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
	"errors"
	"fmt"
	"strings"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// ErrInvalidCapacity is returned for a capacity limiter without a positive capacity.
var ErrInvalidCapacity = errors.New("capacity must be > 0")

// Limiter adjusts the recommendation of a decision after inference.
type Limiter interface {
	// Limit rewrites decision.Recommended in place. RawRecommended is left untouched.
	Limit(ctx context.Context, decision *interfaces.ProductionDecision) error
}

// LimiterStrategy is an enumeration of the different strategies that can be used by the Limiter
type LimiterStrategy int

// enumeration of LimiterStrategy
const (
	NoneStrategy LimiterStrategy = iota
	UnitStrategy
	CapacityStrategy
)

// LimiterConfig holds configuration shared by all limiters
type LimiterConfig struct {
	// Capacity is the most the plant can produce; used by CapacityStrategy.
	Capacity float64
}

func (s LimiterStrategy) String() string {
	switch s {
	case NoneStrategy:
		return "none"
	case UnitStrategy:
		return "unit"
	case CapacityStrategy:
		return "capacity"
	default:
		return fmt.Sprintf("LimiterStrategy(%d)", int(s))
	}
}

// ParseLimiterStrategy maps a configuration name onto a strategy.
func ParseLimiterStrategy(name string) (LimiterStrategy, error) {
	switch strings.ToLower(name) {
	case "none":
		return NoneStrategy, nil
	case "", "unit":
		return UnitStrategy, nil
	case "capacity":
		return CapacityStrategy, nil
	default:
		return 0, fmt.Errorf("unsupported limiter strategy: %q", name)
	}
}

// NewLimiter is a factory that creates a new Limiter based on the provided strategy
func NewLimiter(strategy LimiterStrategy, config *LimiterConfig) (Limiter, error) {
	switch strategy {
	case NoneStrategy:
		return noneLimiter{}, nil
	case UnitStrategy:
		return NewUnitLimiter(), nil
	case CapacityStrategy:
		return NewCapacityLimiter(config)
	default:
		return nil, fmt.Errorf("unsupported limiter strategy: %v", strategy)
	}
}

// noneLimiter reports the raw defuzzified value.
type noneLimiter struct{}

func (noneLimiter) Limit(_ context.Context, decision *interfaces.ProductionDecision) error {
	if decision == nil {
		return errNilDecision
	}
	decision.Recommended = decision.RawRecommended
	return nil
}
