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
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pkgconfig "github.com/llm-d/llm-d-production-planner/pkg/config"
)

// Configuration keys. Flags use the same names with dashes.
const (
	KeyConfigFile    = "config"
	KeyDemandMin     = "demand_min"
	KeyDemandMax     = "demand_max"
	KeyStockMin      = "stock_min"
	KeyStockMax      = "stock_max"
	KeyProductionMin = "production_min"
	KeyProductionMax = "production_max"
	KeyBoundsFile    = "bounds_file"
	KeyInputFile     = "input_file"
	KeyProduct       = "product"
	KeyDemand        = "demand"
	KeyStock         = "stock"
	KeyInteractive   = "interactive"
	KeyOutput        = "output"
	KeyLimiter       = "limiter"
	KeyCapacity      = "capacity"
	KeyPrintMetrics  = "print_metrics"
	KeyExplain       = "explain"
	KeyProducts      = "products"
	KeyVerbosity     = "v"
	KeyDevelopment   = "development"

	// EnvPrefix prefixes every environment override, e.g. PLANNER_DEMAND_MAX.
	EnvPrefix = "PLANNER"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Limiter names.
const (
	LimiterNone     = "none"
	LimiterUnit     = "unit"
	LimiterCapacity = "capacity"
)

// Config is the planner's application configuration.
type Config struct {
	Bounds     pkgconfig.DomainBounds
	BoundsFile string
	InputFile  string
	// Products holds inline overrides from the config file, one YAML
	// document per entry, in the same shape as the bounds file entries.
	Products map[string]string

	Product string
	// Demand and Stock are nil unless given explicitly.
	Demand      *float64
	Stock       *float64
	Interactive bool

	Output       string
	Explain      bool
	Limiter      string
	Capacity     float64
	PrintMetrics bool

	Verbosity   int
	Development bool
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	defaults := pkgconfig.DefaultDomainBounds()
	v.SetDefault(KeyDemandMin, defaults.DemandMin)
	v.SetDefault(KeyDemandMax, defaults.DemandMax)
	v.SetDefault(KeyStockMin, defaults.StockMin)
	v.SetDefault(KeyStockMax, defaults.StockMax)
	v.SetDefault(KeyProductionMin, defaults.ProductionMin)
	v.SetDefault(KeyProductionMax, defaults.ProductionMax)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyLimiter, LimiterUnit)
	v.SetDefault(KeyVerbosity, 0)
}

// BindFlags registers the planner flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	defaults := pkgconfig.DefaultDomainBounds()
	fs.String(flagName(KeyConfigFile), "", "Path to a YAML config file")
	fs.Float64(flagName(KeyDemandMin), defaults.DemandMin, "Lower bound of the demand universe")
	fs.Float64(flagName(KeyDemandMax), defaults.DemandMax, "Upper bound of the demand universe")
	fs.Float64(flagName(KeyStockMin), defaults.StockMin, "Lower bound of the stock universe")
	fs.Float64(flagName(KeyStockMax), defaults.StockMax, "Upper bound of the stock universe")
	fs.Float64(flagName(KeyProductionMin), defaults.ProductionMin, "Lower bound of the production universe")
	fs.Float64(flagName(KeyProductionMax), defaults.ProductionMax, "Upper bound of the production universe")
	fs.String(flagName(KeyBoundsFile), "", "YAML file with per-product bounds overrides")
	fs.String(flagName(KeyInputFile), "", "YAML file with a batch of requests")
	fs.String(flagName(KeyProduct), "", "Product to plan for")
	fs.Float64(flagName(KeyDemand), 0, "Demand for a single non-interactive run")
	fs.Float64(flagName(KeyStock), 0, "Stock for a single non-interactive run")
	fs.Bool(flagName(KeyInteractive), false, "Prompt for demand and stock")
	fs.String(flagName(KeyOutput), OutputText, "Output format: text, json or yaml")
	fs.Bool(flagName(KeyExplain), false, "Include memberships and rule strengths in the text report")
	fs.String(flagName(KeyLimiter), LimiterUnit, "Post-inference limiter: none, unit or capacity")
	fs.Float64(flagName(KeyCapacity), 0, "Plant capacity for the capacity limiter")
	fs.Bool(flagName(KeyPrintMetrics), false, "Print metrics in Prometheus text format on exit")
	fs.Int(flagName(KeyVerbosity), 0, "Log verbosity (0 info, 1 debug, 2 trace)")
	fs.Bool(flagName(KeyDevelopment), false, "Use the development (console) log encoder")

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		errs = append(errs, v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f))
	})
	return errors.Join(errs...)
}

// Load resolves the configuration from v: flags, then PLANNER_* environment
// variables, then the config file named by the "config" key, then defaults.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Bounds: pkgconfig.DomainBounds{
			DemandMin:     v.GetFloat64(KeyDemandMin),
			DemandMax:     v.GetFloat64(KeyDemandMax),
			StockMin:      v.GetFloat64(KeyStockMin),
			StockMax:      v.GetFloat64(KeyStockMax),
			ProductionMin: v.GetFloat64(KeyProductionMin),
			ProductionMax: v.GetFloat64(KeyProductionMax),
		},
		BoundsFile:   v.GetString(KeyBoundsFile),
		Products:     v.GetStringMapString(KeyProducts),
		InputFile:    v.GetString(KeyInputFile),
		Product:      v.GetString(KeyProduct),
		Interactive:  v.GetBool(KeyInteractive),
		Output:       strings.ToLower(v.GetString(KeyOutput)),
		Explain:      v.GetBool(KeyExplain),
		Limiter:      strings.ToLower(v.GetString(KeyLimiter)),
		Capacity:     v.GetFloat64(KeyCapacity),
		PrintMetrics: v.GetBool(KeyPrintMetrics),
		Verbosity:    v.GetInt(KeyVerbosity),
		Development:  v.GetBool(KeyDevelopment),
	}
	if v.IsSet(KeyDemand) {
		d := v.GetFloat64(KeyDemand)
		cfg.Demand = &d
	}
	if v.IsSet(KeyStock) {
		s := v.GetFloat64(KeyStock)
		cfg.Stock = &s
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Bounds.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output must be one of %s, %s, %s, got %q", OutputText, OutputJSON, OutputYAML, c.Output))
	}
	switch c.Limiter {
	case LimiterNone, LimiterUnit:
	case LimiterCapacity:
		if c.Capacity <= 0 {
			errs = append(errs, fmt.Errorf("capacity must be > 0 for the %s limiter, got %g", LimiterCapacity, c.Capacity))
		}
	default:
		errs = append(errs, fmt.Errorf("limiter must be one of %s, %s, %s, got %q", LimiterNone, LimiterUnit, LimiterCapacity, c.Limiter))
	}
	if (c.Demand == nil) != (c.Stock == nil) {
		errs = append(errs, errors.New("demand and stock must be given together"))
	}
	if c.Verbosity < 0 {
		errs = append(errs, fmt.Errorf("v must be >= 0, got %d", c.Verbosity))
	}
	return errors.Join(errs...)
}

// LoadBoundsOverrides merges the inline product overrides with the bounds
// file, if any. Entries from the file replace inline entries for the same key.
func (c *Config) LoadBoundsOverrides() (BoundsConfigData, error) {
	data := ParseBoundsConfigMap(c.Products)
	if c.BoundsFile == "" {
		return data, nil
	}
	raw, err := os.ReadFile(c.BoundsFile)
	if err != nil {
		return nil, fmt.Errorf("reading bounds file: %w", err)
	}
	fromFile, err := ParseBoundsDocument(raw)
	if err != nil {
		return nil, err
	}
	for k, override := range fromFile {
		data[k] = override
	}
	return data, nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
