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

package controller

import (
	"context"
	"errors"
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/actuator"
	"github.com/llm-d/llm-d-production-planner/internal/collector"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/internal/logging"
)

// Planner turns requests into decisions.
type Planner interface {
	PlanAll(ctx context.Context, reqs []interfaces.ProductionRequest) ([]interfaces.ProductionDecision, error)
}

// Controller runs collect, plan and emit in sequence.
type Controller struct {
	source   collector.InputSource
	planner  Planner
	actuator actuator.Actuator
}

// NewController creates a Controller.
func NewController(source collector.InputSource, planner Planner, act actuator.Actuator) *Controller {
	return &Controller{
		source:   source,
		planner:  planner,
		actuator: act,
	}
}

// Run performs one pass and returns the decisions that were planned.
func (c *Controller) Run(ctx context.Context) ([]interfaces.ProductionDecision, error) {
	logger := ctrl.LoggerFrom(ctx).WithName("controller").WithValues("source", c.source.Name())
	ctx = ctrl.LoggerInto(ctx, logger)

	reqs, err := c.source.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting requests from %s: %w", c.source.Name(), err)
	}
	logger.V(logging.DEBUG).Info("Collected requests", "count", len(reqs))

	decisions, planErr := c.planner.PlanAll(ctx, reqs)
	if planErr != nil {
		logger.Error(planErr, "Some requests could not be planned",
			"planned", len(decisions),
			"requested", len(reqs))
	}
	if len(decisions) == 0 {
		return nil, planErr
	}

	if err := c.actuator.Emit(ctx, decisions); err != nil {
		return decisions, errors.Join(planErr, fmt.Errorf("emitting decisions: %w", err))
	}
	logger.V(logging.DEBUG).Info("Emitted decisions", "count", len(decisions))
	return decisions, planErr
}
