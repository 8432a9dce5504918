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

// Package logging builds the process logger and defines verbosity levels.
package logging

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	crzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels passed to logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Options controls logger construction.
type Options struct {
	// Verbosity is the highest V() level that is emitted.
	Verbosity int
	// Development switches to the human-readable console encoder.
	Development bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// NewLogger returns a zap-backed logr.Logger.
func NewLogger(opts Options) logr.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := zap.NewAtomicLevelAt(zapcore.Level(-opts.Verbosity))
	return crzap.New(
		crzap.UseDevMode(opts.Development),
		crzap.WriteTo(out),
		crzap.Level(level),
	)
}

// Setup builds a logger and installs it as the controller-runtime global logger.
func Setup(opts Options) logr.Logger {
	logger := NewLogger(opts)
	ctrl.SetLogger(logger)
	return logger
}

// NewTestLogger installs a verbose development logger for test suites.
func NewTestLogger() {
	Setup(Options{Verbosity: TRACE, Development: true, Output: os.Stderr})
}
