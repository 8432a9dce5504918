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
	"os"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Actuator renders decisions.
type Actuator interface {
	Emit(ctx context.Context, decisions []interfaces.ProductionDecision) error
}

// Config selects and configures an Actuator.
type Config struct {
	// Format is one of FormatText, FormatJSON or FormatYAML. Empty means text.
	Format string
	// Out defaults to os.Stdout.
	Out io.Writer
	// Explain adds the inference trace to the text report.
	Explain bool
}

// NewActuator builds the actuator for cfg.Format.
func NewActuator(cfg Config) (Actuator, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	switch cfg.Format {
	case "", FormatText:
		return NewTextActuator(out, cfg.Explain), nil
	case FormatJSON, FormatYAML:
		return NewDocumentActuator(out, cfg.Format), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", cfg.Format)
	}
}
