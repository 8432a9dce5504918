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

// Package planner turns production requests into production decisions.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/engines/common"
	"github.com/llm-d/llm-d-production-planner/internal/engines/limiter"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/internal/logging"
	"github.com/llm-d/llm-d-production-planner/internal/metrics"
	"github.com/llm-d/llm-d-production-planner/pkg/solver"
)

// Engine runs the fuzzy solver for each request with the bounds of its product.
type Engine struct {
	bounds   interfaces.BoundsProvider
	limiter  limiter.Limiter
	recorder *metrics.Recorder
	cache    *common.InternalDecisionCache
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder records every decision as metrics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithCache stores the latest decision per product in c.
func WithCache(c *common.InternalDecisionCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithClock overrides the decision timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine. A nil limiter reports raw values.
func NewEngine(bounds interfaces.BoundsProvider, lim limiter.Limiter, opts ...Option) (*Engine, error) {
	if bounds == nil {
		return nil, fmt.Errorf("bounds provider cannot be nil")
	}
	if lim == nil {
		var err error
		if lim, err = limiter.NewLimiter(limiter.NoneStrategy, nil); err != nil {
			return nil, err
		}
	}
	e := &Engine{
		bounds:  bounds,
		limiter: lim,
		cache:   common.NewInternalDecisionCache(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Plan computes the decision for one request.
func (e *Engine) Plan(ctx context.Context, req interfaces.ProductionRequest) (*interfaces.ProductionDecision, error) {
	product := req.ProductName()
	logger := ctrl.LoggerFrom(ctx).WithValues("product", product)

	bounds, err := e.bounds.BoundsFor(product)
	if err != nil {
		return nil, err
	}
	s, err := solver.NewSolver(bounds)
	if err != nil {
		return nil, err
	}

	in := s.Explain(req.Demand, req.Stock)
	logger.V(logging.TRACE).Info("Fuzzified inputs",
		"demandLow", in.Memberships.DemandLow,
		"demandHigh", in.Memberships.DemandHigh,
		"stockScarce", in.Memberships.StockScarce,
		"stockPlentiful", in.Memberships.StockPlentiful)
	for _, act := range in.Activations {
		logger.V(logging.TRACE).Info("Rule fired",
			"rule", act.Rule.Name,
			"alpha", act.Alpha,
			"z", act.Z)
	}
	if in.Fallback {
		logger.Info("No rule fired, using production midpoint",
			"demand", req.Demand,
			"stock", req.Stock,
			"midpoint", in.Recommended)
	}

	decision := &interfaces.ProductionDecision{
		Product:        product,
		Demand:         req.Demand,
		Stock:          req.Stock,
		Bounds:         bounds,
		Inference:      in,
		RawRecommended: in.Recommended,
		Recommended:    in.Recommended,
		Timestamp:      e.now(),
	}
	if err := e.limiter.Limit(ctx, decision); err != nil {
		return nil, fmt.Errorf("limiting recommendation for product %q: %w", product, err)
	}

	logger.V(logging.DEBUG).Info("Planned production",
		"demand", decision.Demand,
		"stock", decision.Stock,
		"raw", decision.RawRecommended,
		"recommended", decision.Recommended,
		"dominantRule", in.Dominant().Rule.Name)

	e.cache.Set(product, *decision)
	e.recorder.Observe(decision)
	return decision, nil
}

// PlanAll plans every request in order. Failed requests are skipped and their
// errors joined; planning stops early if ctx is done.
func (e *Engine) PlanAll(ctx context.Context, reqs []interfaces.ProductionRequest) ([]interfaces.ProductionDecision, error) {
	decisions := make([]interfaces.ProductionDecision, 0, len(reqs))
	var errs []error
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		d, err := e.Plan(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("request %d (%s): %w", i, req.ProductName(), err))
			continue
		}
		decisions = append(decisions, *d)
	}
	return decisions, errors.Join(errs...)
}

// Latest returns the most recent decision for a product.
func (e *Engine) Latest(product string) (interfaces.ProductionDecision, bool) {
	return e.cache.Get(product)
}
