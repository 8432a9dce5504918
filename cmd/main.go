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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-production-planner/internal/actuator"
	"github.com/llm-d/llm-d-production-planner/internal/collector"
	"github.com/llm-d/llm-d-production-planner/internal/config"
	"github.com/llm-d/llm-d-production-planner/internal/controller"
	"github.com/llm-d/llm-d-production-planner/internal/engines/common"
	"github.com/llm-d/llm-d-production-planner/internal/engines/limiter"
	"github.com/llm-d/llm-d-production-planner/internal/engines/planner"
	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/internal/logging"
	"github.com/llm-d/llm-d-production-planner/internal/metrics"
	"github.com/llm-d/llm-d-production-planner/pkg/core"
)

func main() {
	if err := newRootCommand().ExecuteContext(ctrl.SetupSignalHandler()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "production-planner",
		Short: "Recommend a production quantity from demand and stock",
		Long: `production-planner runs a Tsukamoto fuzzy inference over demand and stock
and recommends how many units to produce.

Input comes from --input-file, from --demand and --stock, or interactively
from the console when neither is given.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cobra.CheckErr(config.BindFlags(cmd.Flags(), v))
	cmd.AddCommand(newRulesCommand())
	return cmd
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rule base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range core.Rules() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: IF %s AND %s THEN production %s\n",
					r.Name, r.Demand, r.Stock, r.Direction); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	logger := logging.Setup(logging.Options{
		Verbosity:   cfg.Verbosity,
		Development: cfg.Development,
		Output:      errOut,
	})
	ctx = ctrl.LoggerInto(ctx, logger)

	overrides, err := cfg.LoadBoundsOverrides()
	if err != nil {
		return err
	}
	global := common.NewGlobalConfig(cfg.Bounds, overrides)

	strategy, err := limiter.ParseLimiterStrategy(cfg.Limiter)
	if err != nil {
		return err
	}
	lim, err := limiter.NewLimiter(strategy, &limiter.LimiterConfig{Capacity: cfg.Capacity})
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	engine, err := planner.NewEngine(global, lim, planner.WithRecorder(recorder))
	if err != nil {
		return err
	}

	act, err := actuator.NewActuator(actuator.Config{
		Format:  cfg.Output,
		Out:     out,
		Explain: cfg.Explain,
	})
	if err != nil {
		return err
	}

	source, err := newSource(cfg, global, in, out, errOut)
	if err != nil {
		return err
	}
	logger.V(logging.DEBUG).Info("Starting planner",
		"source", source.Name(),
		"output", cfg.Output,
		"limiter", strategy.String(),
		"products", overrides.Products())

	if _, err := controller.NewController(source, engine, act).Run(ctx); err != nil {
		return err
	}

	if cfg.PrintMetrics {
		return metrics.WriteText(out, registry)
	}
	return nil
}

// newSource picks the input: a batch file, then explicit demand and stock,
// then the interactive console. Console prompts go to errOut unless the report
// is text, so documents on out stay parseable.
func newSource(cfg *config.Config, provider *common.GlobalConfig, in io.Reader, out, errOut io.Writer) (collector.InputSource, error) {
	switch {
	case cfg.InputFile != "":
		return collector.NewFileSource(cfg.InputFile, provider), nil
	case cfg.Demand != nil && !cfg.Interactive:
		return collector.NewStaticSource(interfaces.ProductionRequest{
			Product: cfg.Product,
			Demand:  *cfg.Demand,
			Stock:   *cfg.Stock,
		}, provider), nil
	}

	product := interfaces.ProductionRequest{Product: cfg.Product}.ProductName()
	prompts := errOut
	if cfg.Output == config.OutputText {
		prompts = out
		bounds, err := provider.BoundsFor(product)
		if err != nil {
			return nil, err
		}
		if err := actuator.WriteBanner(out, bounds); err != nil {
			return nil, err
		}
	}
	return collector.NewConsoleSource(in, prompts, provider, collector.ConsoleSourceConfig{Product: cfg.Product}), nil
}
