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

// Package common holds state shared by the planning engines.
package common

import (
	"sync"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
)

// InternalDecisionCache keeps the latest decision per product.
type InternalDecisionCache struct {
	mu    sync.RWMutex
	items map[string]interfaces.ProductionDecision
}

// NewInternalDecisionCache creates an empty cache.
func NewInternalDecisionCache() *InternalDecisionCache {
	return &InternalDecisionCache{items: make(map[string]interfaces.ProductionDecision)}
}

// Set stores the decision for a product, replacing any previous one.
func (c *InternalDecisionCache) Set(product string, d interfaces.ProductionDecision) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[product] = d
}

// Get returns the latest decision for a product.
func (c *InternalDecisionCache) Get(product string) (interfaces.ProductionDecision, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.items[product]
	return d, ok
}

// Len returns the number of cached products.
func (c *InternalDecisionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
