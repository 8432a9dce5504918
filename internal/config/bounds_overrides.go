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

package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/logging"
	pkgconfig "github.com/llm-d/llm-d-production-planner/pkg/config"
)

// GlobalDefaultsKey is the entry that overrides the bounds of every product.
const GlobalDefaultsKey = "default"

// BoundsOverride is a partial set of domain bounds for one product.
// Unset fields inherit from the global defaults.
type BoundsOverride struct {
	// Product is the product identifier (only used in override entries)
	Product string `yaml:"product,omitempty" json:"product,omitempty"`

	DemandMin     *float64 `yaml:"demand_min,omitempty" json:"demand_min,omitempty"`
	DemandMax     *float64 `yaml:"demand_max,omitempty" json:"demand_max,omitempty"`
	StockMin      *float64 `yaml:"stock_min,omitempty" json:"stock_min,omitempty"`
	StockMax      *float64 `yaml:"stock_max,omitempty" json:"stock_max,omitempty"`
	ProductionMin *float64 `yaml:"production_min,omitempty" json:"production_min,omitempty"`
	ProductionMax *float64 `yaml:"production_max,omitempty" json:"production_max,omitempty"`
}

// BoundsConfigData maps a product (or GlobalDefaultsKey) to its override.
type BoundsConfigData map[string]BoundsOverride

// Validate checks the values that are set. Pairs are only compared when both
// ends are present; the merged bounds are validated again when used.
func (o *BoundsOverride) Validate() error {
	pairs := []struct {
		name     string
		min, max *float64
	}{
		{"demand", o.DemandMin, o.DemandMax},
		{"stock", o.StockMin, o.StockMax},
		{"production", o.ProductionMin, o.ProductionMax},
	}
	var errs []error
	for _, p := range pairs {
		for _, v := range []*float64{p.min, p.max} {
			if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
				errs = append(errs, fmt.Errorf("%w: %s bounds must be finite, got %g", pkgconfig.ErrInvalidBounds, p.name, *v))
			}
		}
		if p.min != nil && p.max != nil && *p.min >= *p.max {
			errs = append(errs, fmt.Errorf("%w: %s_min (%g) must be < %s_max (%g)",
				pkgconfig.ErrInvalidBounds, p.name, *p.min, p.name, *p.max))
		}
	}
	return errors.Join(errs...)
}

// Apply returns base with every set field of the override replacing it.
func (o BoundsOverride) Apply(base pkgconfig.DomainBounds) pkgconfig.DomainBounds {
	return pkgconfig.DomainBounds{
		DemandMin:     ptr.Deref(o.DemandMin, base.DemandMin),
		DemandMax:     ptr.Deref(o.DemandMax, base.DemandMax),
		StockMin:      ptr.Deref(o.StockMin, base.StockMin),
		StockMax:      ptr.Deref(o.StockMax, base.StockMax),
		ProductionMin: ptr.Deref(o.ProductionMin, base.ProductionMin),
		ProductionMax: ptr.Deref(o.ProductionMax, base.ProductionMax),
	}
}

// ParseBoundsConfigMap parses bounds overrides from string data, one YAML
// document per key:
//   - "default": overrides for all products
//   - "<override-name>": per-product overrides with a product field
//
// Invalid entries are logged and skipped.
func ParseBoundsConfigMap(data map[string]string) BoundsConfigData {
	if data == nil {
		return make(BoundsConfigData)
	}
	return parseEntries(sortedKeys(data), func(key string, out *BoundsOverride) error {
		return yaml.Unmarshal([]byte(data[key]), out)
	})
}

// ParseBoundsDocument parses a YAML mapping from override name to override,
// applying the same rules as ParseBoundsConfigMap.
func ParseBoundsDocument(raw []byte) (BoundsConfigData, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &nodes); err != nil {
		return nil, fmt.Errorf("parsing bounds document: %w", err)
	}
	return parseEntries(sortedKeys(nodes), func(key string, out *BoundsOverride) error {
		node := nodes[key]
		return node.Decode(out)
	}), nil
}

func parseEntries(keys []string, decode func(key string, out *BoundsOverride) error) BoundsConfigData {
	out := make(BoundsConfigData)
	productToKey := make(map[string]string)

	for _, key := range keys {
		var override BoundsOverride
		if err := decode(key, &override); err != nil {
			ctrl.Log.Info("Failed to parse bounds override entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if err := override.Validate(); err != nil {
			ctrl.Log.Info("Invalid bounds override entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if key == GlobalDefaultsKey {
			out[GlobalDefaultsKey] = override
			continue
		}

		if override.Product == "" {
			ctrl.Log.Info("Skipping bounds override without product field",
				"key", key)
			continue
		}

		if winningKey, exists := productToKey[override.Product]; exists {
			ctrl.Log.Info("Duplicate product found in bounds overrides - first key wins",
				"product", override.Product,
				"winningKey", winningKey,
				"duplicateKey", key)
			continue
		}
		productToKey[override.Product] = key

		out[override.Product] = override
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed bounds overrides",
		"productCount", len(out))

	return out
}

// GetBounds returns the effective bounds of a product: base, then the global
// override, then the product's own override.
func (data BoundsConfigData) GetBounds(product string, base pkgconfig.DomainBounds) pkgconfig.DomainBounds {
	result := data[GlobalDefaultsKey].Apply(base)
	if product == GlobalDefaultsKey {
		return result
	}
	if override, ok := data[product]; ok {
		result = override.Apply(result)
	}
	return result
}

// Products returns the products that carry their own override, sorted.
func (data BoundsConfigData) Products() []string {
	out := make([]string, 0, len(data))
	for k := range data {
		if k != GlobalDefaultsKey {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
