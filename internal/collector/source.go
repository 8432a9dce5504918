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
	"fmt"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// StaticSource yields one fixed request, typically built from flags.
type StaticSource struct {
	request  interfaces.ProductionRequest
	provider interfaces.BoundsProvider
}

// NewStaticSource creates a source for a single request.
func NewStaticSource(request interfaces.ProductionRequest, provider interfaces.BoundsProvider) *StaticSource {
	return &StaticSource{request: request, provider: provider}
}

// Name implements InputSource.
func (s *StaticSource) Name() string {
	return "static"
}

// Collect implements InputSource.
func (s *StaticSource) Collect(_ context.Context) ([]interfaces.ProductionRequest, error) {
	if err := ValidateRequest(s.request, s.provider); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return []interfaces.ProductionRequest{s.request}, nil
}
