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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// RequestFile is the YAML document read by FileSource:
//
//	requests:
//	  - product: widget
//	    demand: 3200
//	    stock: 400
type RequestFile struct {
	Requests []interfaces.ProductionRequest `yaml:"requests"`
}

// FileSource reads a batch of requests from a YAML file.
type FileSource struct {
	path     string
	provider interfaces.BoundsProvider
}

// NewFileSource creates a source backed by the YAML file at path.
func NewFileSource(path string, provider interfaces.BoundsProvider) *FileSource {
	return &FileSource{path: path, provider: provider}
}

// Name implements InputSource.
func (s *FileSource) Name() string {
	return "file"
}

// Collect implements InputSource. Any invalid entry fails the whole batch.
func (s *FileSource) Collect(_ context.Context) ([]interfaces.ProductionRequest, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return ParseRequests(raw, s.provider)
}

// ParseRequests decodes and validates a RequestFile document.
func ParseRequests(raw []byte, provider interfaces.BoundsProvider) ([]interfaces.ProductionRequest, error) {
	var doc RequestFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	if len(doc.Requests) == 0 {
		return nil, fmt.Errorf("request file: %w", ErrNoInput)
	}
	for i, req := range doc.Requests {
		if err := ValidateRequest(req, provider); err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", i, req.ProductName(), err)
		}
	}
	return doc.Requests, nil
}
