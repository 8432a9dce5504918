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

// Package metrics exposes Prometheus metrics for planning decisions.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

const (
	namespace = "production_planner"

	labelProduct      = "product"
	labelRule         = "rule"
	labelDominantRule = "dominant_rule"

	noDominantRule = "none"
)

// Recorder records planning decisions as Prometheus metrics.
type Recorder struct {
	inferences  *prometheus.CounterVec
	recommended *prometheus.GaugeVec
	strength    *prometheus.GaugeVec
	fallbacks   *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		inferences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inferences_total",
			Help:      "Number of production recommendations computed.",
		}, []string{labelProduct, labelDominantRule}),
		recommended: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recommended_production",
			Help:      "Latest recommended production in units.",
		}, []string{labelProduct}),
		strength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rule_firing_strength",
			Help:      "Firing strength of each rule in the latest inference.",
		}, []string{labelProduct, labelRule}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_total",
			Help:      "Number of inferences that fell back to the production midpoint.",
		}, []string{labelProduct}),
	}

	for _, c := range []prometheus.Collector{r.inferences, r.recommended, r.strength, r.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return r, nil
}

// Observe records a decision. A nil Recorder is a no-op.
func (r *Recorder) Observe(d *interfaces.ProductionDecision) {
	if r == nil || d == nil {
		return
	}

	dominant := noDominantRule
	if !d.Inference.Fallback {
		dominant = d.Inference.Dominant().Rule.Name
	}
	r.inferences.WithLabelValues(d.Product, dominant).Inc()
	r.recommended.WithLabelValues(d.Product).Set(d.Recommended)
	for _, act := range d.Inference.Activations {
		r.strength.WithLabelValues(d.Product, act.Rule.Name).Set(act.Alpha)
	}
	if d.Inference.Fallback {
		r.fallbacks.WithLabelValues(d.Product).Inc()
	}
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
