// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routemap

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/routemap/config"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a Compile call.
type Option func(*compileOptions)

type compileOptions struct {
	builder        config.Builder
	logger         *slog.Logger
	diagnostics    DiagnosticHandler
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func defaultOptions() compileOptions {
	return compileOptions{
		builder: config.NodeBuilder{},
		logger:  noopLogger,
	}
}

// WithBuilder replaces the default config.NodeBuilder with a custom
// framework integration. The compiler calls only the four Builder
// factories, so this is the single extension point for emitting a
// different config format.
func WithBuilder(b config.Builder) Option {
	return func(o *compileOptions) {
		if b != nil {
			o.builder = b
		}
	}
}

// WithLogger sets a structured logger for compilation. Route
// registrations are logged at debug level. Without this option,
// logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *compileOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDiagnostics sets a diagnostic handler for the compile.
//
// Diagnostic events are optional informational events that may indicate
// route-map configuration issues (duplicate names, duplicate
// parameters, empty entries). Compilation succeeds whether diagnostics
// are collected or not.
//
// Example with logging:
//
//	handler := routemap.DiagnosticHandlerFunc(func(e routemap.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	routes := routemap.MustCompile(m, routemap.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(o *compileOptions) {
		o.diagnostics = handler
	}
}

// WithTracerProvider wraps the compile in an OpenTelemetry span
// recording node and route counts.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *compileOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider records compile duration and emitted node and
// route counts through the given OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *compileOptions) {
		o.meterProvider = mp
	}
}
