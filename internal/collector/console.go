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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/llm-d/llm-d-production-planner/internal/interfaces"
	"github.com/llm-d/llm-d-production-planner/pkg/config"
)

// ConsoleSourceConfig holds configuration for the ConsoleSource.
type ConsoleSourceConfig struct {
	// Product selects the bounds used for validation.
	Product string
	// MaxAttempts bounds the re-prompts per value; 0 means unlimited.
	MaxAttempts int
}

// ConsoleSource prompts for demand and stock on a line-oriented console.
type ConsoleSource struct {
	scanner  *bufio.Scanner
	out      io.Writer
	provider interfaces.BoundsProvider
	config   ConsoleSourceConfig
}

// NewConsoleSource creates a console source reading answers from in and
// writing prompts to out.
func NewConsoleSource(in io.Reader, out io.Writer, provider interfaces.BoundsProvider, config ConsoleSourceConfig) *ConsoleSource {
	return &ConsoleSource{
		scanner:  bufio.NewScanner(in),
		out:      out,
		provider: provider,
		config:   config,
	}
}

// Name implements InputSource.
func (s *ConsoleSource) Name() string {
	return "console"
}

// Collect implements InputSource. It asks for demand first, then stock.
func (s *ConsoleSource) Collect(ctx context.Context) ([]interfaces.ProductionRequest, error) {
	req := interfaces.ProductionRequest{Product: s.config.Product}
	bounds, err := s.provider.BoundsFor(req.ProductName())
	if err != nil {
		return nil, fmt.Errorf("resolving bounds for product %q: %w", req.ProductName(), err)
	}

	fmt.Fprintln(s.out)
	if req.Demand, err = s.ask(ctx, "demand", bounds.Demand()); err != nil {
		return nil, fmt.Errorf("reading demand: %w", err)
	}
	if req.Stock, err = s.ask(ctx, "stock", bounds.Stock()); err != nil {
		return nil, fmt.Errorf("reading stock: %w", err)
	}
	return []interfaces.ProductionRequest{req}, nil
}

// ask re-prompts until a number inside r is entered.
func (s *ConsoleSource) ask(ctx context.Context, name string, r config.Range) (float64, error) {
	var lastErr error
	for attempt := 1; s.config.MaxAttempts == 0 || attempt <= s.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(s.out, "Enter %s (%s): ", name, r)

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, ErrNoInput
		}

		value, err := parseNumber(s.scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number!")
			lastErr = err
			continue
		}
		if err := ValidateValue(name, value, r); err != nil {
			fmt.Fprintf(s.out, "Value must be between %g and %g\n", r.Min, r.Max)
			lastErr = err
			continue
		}
		return value, nil
	}
	return 0, fmt.Errorf("giving up after %d attempts: %w", s.config.MaxAttempts, lastErr)
}

func parseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// overflow parses to ±Inf, which the range check rejects
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return v, nil
}
