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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ProductionPlanSpec holds the inputs a plan was computed from.
type ProductionPlanSpec struct {
	// Product names the product line. "default" when the request did not name one.
	Product string `json:"product"`

	// Demand is the forecast demand in units.
	Demand float64 `json:"demand"`

	// Stock is the current stock in units.
	Stock float64 `json:"stock"`

	// Bounds are the effective domain bounds used for this product.
	Bounds PlanBounds `json:"bounds"`
}

// PlanBounds are the min/max pairs of the three fuzzy variables.
type PlanBounds struct {
	DemandMin     float64 `json:"demandMin"`
	DemandMax     float64 `json:"demandMax"`
	StockMin      float64 `json:"stockMin"`
	StockMax      float64 `json:"stockMax"`
	ProductionMin float64 `json:"productionMin"`
	ProductionMax float64 `json:"productionMax"`
}

// ProductionPlanStatus is the outcome of the inference.
type ProductionPlanStatus struct {
	// Recommended is the production to schedule, after limiting.
	Recommended float64 `json:"recommended"`

	// RawRecommended is the defuzzified value before limiting.
	RawRecommended float64 `json:"rawRecommended"`

	// Limited is true when a limiter changed the recommendation.
	// +optional
	Limited bool `json:"limited,omitempty"`

	// Memberships are the fuzzified inputs.
	Memberships MembershipStatus `json:"memberships"`

	// Rules lists every rule with its firing strength and consequent.
	// +optional
	Rules []RuleStatus `json:"rules,omitempty"`

	// Fallback is true when no rule fired and the production midpoint was used.
	// +optional
	Fallback bool `json:"fallback,omitempty"`

	// DominantRule is the name of the strongest rule, empty on fallback.
	// +optional
	DominantRule string `json:"dominantRule,omitempty"`

	// PlannedAt is when the plan was computed.
	PlannedAt metav1.Time `json:"plannedAt,omitempty"`

	// Conditions represent the latest available observations of the plan's state.
	// +optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// MembershipStatus holds the degrees of the four linguistic terms.
type MembershipStatus struct {
	DemandLow      float64 `json:"demandLow"`
	DemandHigh     float64 `json:"demandHigh"`
	StockScarce    float64 `json:"stockScarce"`
	StockPlentiful float64 `json:"stockPlentiful"`
}

// RuleStatus describes one rule of an inference.
type RuleStatus struct {
	// Name is the rule identifier, R1 to R4.
	Name string `json:"name"`

	// Direction is the consequent term, decrease or increase.
	Direction string `json:"direction"`

	// Alpha is the firing strength in [0, 1].
	Alpha float64 `json:"alpha"`

	// Z is the crisp consequent value for Alpha.
	Z float64 `json:"z"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=pp
// +kubebuilder:printcolumn:name="Product",type=string,JSONPath=".spec.product"
// +kubebuilder:printcolumn:name="Demand",type=number,JSONPath=".spec.demand"
// +kubebuilder:printcolumn:name="Stock",type=number,JSONPath=".spec.stock"
// +kubebuilder:printcolumn:name="Recommended",type=number,JSONPath=".status.recommended"

// ProductionPlan is a recommended production quantity together with the
// inputs and rule trace that produced it.
type ProductionPlan struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ProductionPlanSpec   `json:"spec,omitempty"`
	Status ProductionPlanStatus `json:"status,omitempty"`
}

// ProductionPlanList contains a list of ProductionPlan documents.
// +kubebuilder:object:root=true
type ProductionPlanList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	// Items is the list of ProductionPlan documents.
	Items []ProductionPlan `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ProductionPlan{}, &ProductionPlanList{})
}

// Condition Types for ProductionPlan
const (
	// TypePlanned indicates whether the inference produced a recommendation from the rules
	TypePlanned = "Planned"
	// TypeLimited indicates whether a limiter changed the recommendation
	TypeLimited = "Limited"
)

// Condition Reasons for Planned
const (
	// ReasonRulesFired indicates at least one rule fired
	ReasonRulesFired = "RulesFired"
	// ReasonMidpointFallback indicates no rule fired and the production midpoint was used
	ReasonMidpointFallback = "MidpointFallback"
)

// Condition Reasons for Limited
const (
	// ReasonCapacityExceeded indicates the recommendation was capped at plant capacity
	ReasonCapacityExceeded = "CapacityExceeded"
	// ReasonWithinLimits indicates no limit applied
	ReasonWithinLimits = "WithinLimits"
)
