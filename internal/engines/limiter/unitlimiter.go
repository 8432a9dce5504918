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

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/internal/logging"
)

// UnitLimiter rounds the recommendation to whole units.
type UnitLimiter struct{}

// NewUnitLimiter creates a new UnitLimiter instance.
func NewUnitLimiter() *UnitLimiter {
	return &UnitLimiter{}
}

// Limit implements Limiter.
func (l *UnitLimiter) Limit(ctx context.Context, decision *interfaces.ProductionDecision) error {
	if decision == nil {
		return errNilDecision
	}
	decision.Recommended = RoundUnits(decision.RawRecommended)

	ctrl.LoggerFrom(ctx).V(logging.TRACE).Info("Rounded recommendation to whole units",
		"product", decision.Product,
		"raw", decision.RawRecommended,
		"recommended", decision.Recommended)
	return nil
}
