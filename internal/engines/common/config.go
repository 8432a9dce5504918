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

package common

import (
	"fmt"
	"sync"

	"github.com/llm-d/llm-d-production-planner/internal/config"
	pkgconfig "github.com/llm-d/llm-d-production-planner/pkg/config"
)

// GlobalConfig holds the base bounds and per-product overrides. Updates swap
// whole values, so readers always see a consistent pair.
type GlobalConfig struct {
	mu        sync.RWMutex
	base      pkgconfig.DomainBounds
	overrides config.BoundsConfigData
}

// NewGlobalConfig creates a config holder from base bounds and overrides.
func NewGlobalConfig(base pkgconfig.DomainBounds, overrides config.BoundsConfigData) *GlobalConfig {
	g := &GlobalConfig{}
	g.UpdateBaseBounds(base)
	g.UpdateBoundsConfig(overrides)
	return g
}

// UpdateBaseBounds replaces the base bounds.
func (g *GlobalConfig) UpdateBaseBounds(base pkgconfig.DomainBounds) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.base = base
}

// UpdateBoundsConfig replaces the per-product overrides.
func (g *GlobalConfig) UpdateBoundsConfig(overrides config.BoundsConfigData) {
	copied := make(config.BoundsConfigData, len(overrides))
	for k, v := range overrides {
		copied[k] = v
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.overrides = copied
}

// GetBoundsConfig returns a copy of the per-product overrides.
func (g *GlobalConfig) GetBoundsConfig() config.BoundsConfigData {
	g.mu.RLock()
	defer g.mu.RUnlock()
	copied := make(config.BoundsConfigData, len(g.overrides))
	for k, v := range g.overrides {
		copied[k] = v
	}
	return copied
}

// BoundsFor returns the validated effective bounds of a product. It
// implements interfaces.BoundsProvider.
func (g *GlobalConfig) BoundsFor(product string) (pkgconfig.DomainBounds, error) {
	g.mu.RLock()
	bounds := g.overrides.GetBounds(product, g.base)
	g.mu.RUnlock()

	if err := bounds.Validate(); err != nil {
		return pkgconfig.DomainBounds{}, fmt.Errorf("bounds for product %q: %w", product, err)
	}
	return bounds, nil
}
