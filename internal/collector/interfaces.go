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

package collector

import (
	"context"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// InputSource is the interface for pluggable input sources.
// Implementations include ConsoleSource, StaticSource and FileSource.
type InputSource interface {
	// Name returns the unique name of this source (e.g., "console", "file").
	Name() string

	// Collect returns the requests to plan for. Every returned request lies
	// within the bounds of its product.
	Collect(ctx context.Context) ([]interfaces.ProductionRequest, error)
}
