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

package actuator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/llm-d/llm-d-production-planner/api/v1alpha1"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// DocumentActuator writes decisions as a ProductionPlanList.
type DocumentActuator struct {
	out    io.Writer
	format string
}

// NewDocumentActuator creates a DocumentActuator. format is FormatJSON or FormatYAML.
func NewDocumentActuator(out io.Writer, format string) *DocumentActuator {
	return &DocumentActuator{out: out, format: format}
}

// Emit implements Actuator.
func (a *DocumentActuator) Emit(ctx context.Context, decisions []interfaces.ProductionDecision) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	list := NewProductionPlanList(decisions)

	var (
		raw []byte
		err error
	)
	switch a.format {
	case FormatYAML:
		raw, err = yaml.Marshal(list)
	default:
		raw, err = json.MarshalIndent(list, "", "  ")
		raw = append(raw, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding production plans: %w", err)
	}
	if _, err := a.out.Write(raw); err != nil {
		return fmt.Errorf("writing production plans: %w", err)
	}
	return nil
}

// NewProductionPlanList converts decisions into a ProductionPlanList.
func NewProductionPlanList(decisions []interfaces.ProductionDecision) *v1alpha1.ProductionPlanList {
	list := &v1alpha1.ProductionPlanList{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.GroupVersion.String(),
			Kind:       "ProductionPlanList",
		},
		Items: make([]v1alpha1.ProductionPlan, 0, len(decisions)),
	}
	for i := range decisions {
		list.Items = append(list.Items, NewProductionPlan(&decisions[i]))
	}
	return list
}

// NewProductionPlan converts one decision into a ProductionPlan.
func NewProductionPlan(d *interfaces.ProductionDecision) v1alpha1.ProductionPlan {
	in := d.Inference
	plannedAt := metav1.NewTime(d.Timestamp)

	rules := make([]v1alpha1.RuleStatus, 0, len(in.Activations))
	for _, act := range in.Activations {
		rules = append(rules, v1alpha1.RuleStatus{
			Name:      act.Rule.Name,
			Direction: string(act.Rule.Direction),
			Alpha:     act.Alpha,
			Z:         act.Z,
		})
	}

	planned := metav1.Condition{
		Type:               v1alpha1.TypePlanned,
		Status:             metav1.ConditionTrue,
		Reason:             v1alpha1.ReasonRulesFired,
		Message:            fmt.Sprintf("Total firing strength %.3f", in.TotalStrength),
		LastTransitionTime: plannedAt,
	}
	dominant := ""
	if in.Fallback {
		planned.Reason = v1alpha1.ReasonMidpointFallback
		planned.Message = "No rule fired, production midpoint used"
	} else {
		dominant = in.Dominant().Rule.Name
	}

	limited := metav1.Condition{
		Type:               v1alpha1.TypeLimited,
		Status:             metav1.ConditionFalse,
		Reason:             v1alpha1.ReasonWithinLimits,
		LastTransitionTime: plannedAt,
	}
	if d.Limited {
		limited.Status = metav1.ConditionTrue
		limited.Reason = v1alpha1.ReasonCapacityExceeded
		limited.Message = fmt.Sprintf("Weighted average %.2f capped to %.0f", d.RawRecommended, d.Recommended)
	}

	return v1alpha1.ProductionPlan{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.GroupVersion.String(),
			Kind:       "ProductionPlan",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: d.Product,
		},
		Spec: v1alpha1.ProductionPlanSpec{
			Product: d.Product,
			Demand:  d.Demand,
			Stock:   d.Stock,
			Bounds: v1alpha1.PlanBounds{
				DemandMin:     d.Bounds.DemandMin,
				DemandMax:     d.Bounds.DemandMax,
				StockMin:      d.Bounds.StockMin,
				StockMax:      d.Bounds.StockMax,
				ProductionMin: d.Bounds.ProductionMin,
				ProductionMax: d.Bounds.ProductionMax,
			},
		},
		Status: v1alpha1.ProductionPlanStatus{
			Recommended:    d.Recommended,
			RawRecommended: d.RawRecommended,
			Limited:        d.Limited,
			Memberships: v1alpha1.MembershipStatus{
				DemandLow:      in.Memberships.DemandLow,
				DemandHigh:     in.Memberships.DemandHigh,
				StockScarce:    in.Memberships.StockScarce,
				StockPlentiful: in.Memberships.StockPlentiful,
			},
			Rules:        rules,
			Fallback:     in.Fallback,
			DominantRule: dominant,
			PlannedAt:    plannedAt,
			Conditions:   []metav1.Condition{planned, limited},
		},
	}
}
