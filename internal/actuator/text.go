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
	"fmt"
	"io"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

// TextActuator writes the console report.
type TextActuator struct {
	out     io.Writer
	explain bool
}

// NewTextActuator creates a TextActuator writing to out.
func NewTextActuator(out io.Writer, explain bool) *TextActuator {
	return &TextActuator{out: out, explain: explain}
}

// WriteBanner prints the title and the accepted input ranges.
func WriteBanner(out io.Writer, bounds config.DomainBounds) error {
	_, err := fmt.Fprintf(out, "\n=== FUZZY TSUKAMOTO PRODUCTION PLANNER ===\n"+
		"Bounds:\n"+
		"- Demand: %s units\n"+
		"- Stock: %s units\n"+
		"- Production: %s units\n",
		bounds.Demand(), bounds.Stock(), bounds.Production())
	return err
}

// Emit implements Actuator.
func (a *TextActuator) Emit(ctx context.Context, decisions []interfaces.ProductionDecision) error {
	for i := range decisions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.write(&decisions[i]); err != nil {
			return fmt.Errorf("writing report for product %q: %w", decisions[i].Product, err)
		}
	}
	return nil
}

func (a *TextActuator) write(d *interfaces.ProductionDecision) error {
	w := &errWriter{w: a.out}
	w.printf("\n=== CALCULATION RESULT ===\n")
	if d.Product != interfaces.DefaultProduct {
		w.printf("Product: %s\n", d.Product)
	}
	w.printf("Demand: %.0f units\n", d.Demand)
	w.printf("Stock: %.0f units\n", d.Stock)
	w.printf("Recommended Production: %.0f units\n", d.Recommended)

	if !a.explain {
		return w.err
	}
	m := d.Inference.Memberships
	w.printf("Memberships: demand low=%.3f high=%.3f, stock scarce=%.3f plentiful=%.3f\n",
		m.DemandLow, m.DemandHigh, m.StockScarce, m.StockPlentiful)
	for _, act := range d.Inference.Activations {
		w.printf("%s: IF %s AND %s THEN %s (alpha=%.3f, z=%.2f)\n",
			act.Rule.Name, act.Rule.Demand, act.Rule.Stock, act.Rule.Direction, act.Alpha, act.Z)
	}
	if d.Inference.Fallback {
		w.printf("No rule fired, production midpoint used\n")
	} else {
		w.printf("Dominant rule: %s\n", d.Inference.Dominant().Rule.Name)
	}
	if d.Limited {
		w.printf("Limited: weighted average %.2f units\n", d.RawRecommended)
	}
	return w.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
