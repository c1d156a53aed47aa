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
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "rivaas.dev/routemap"

// observability carries the optional OpenTelemetry instrumentation for
// Compile. All fields may be nil; recording is skipped accordingly.
type observability struct {
	tracer          trace.Tracer
	compileDuration metric.Float64Histogram
	nodesCompiled   metric.Int64Counter
	routesTotal     metric.Int64Counter
}

// newObservability creates the instruments for the configured
// providers. A nil provider disables the corresponding pillar.
func newObservability(tp trace.TracerProvider, mp metric.MeterProvider) (*observability, error) {
	obs := &observability{}

	if tp != nil {
		obs.tracer = tp.Tracer(instrumentationName)
	}

	if mp != nil {
		meter := mp.Meter(instrumentationName)

		var err error
		obs.compileDuration, err = meter.Float64Histogram(
			"routemap_compile_duration_seconds",
			metric.WithDescription("Duration of route map compilation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create compile duration histogram: %w", err)
		}

		obs.nodesCompiled, err = meter.Int64Counter(
			"routemap_config_nodes_total",
			metric.WithDescription("Total number of emitted config nodes"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create config node counter: %w", err)
		}

		obs.routesTotal, err = meter.Int64Counter(
			"routemap_routes_total",
			metric.WithDescription("Total number of registered routes"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create route counter: %w", err)
		}
	}

	return obs, nil
}

// start opens the compile span. Returns the (possibly enriched)
// context and a finish callback recording duration and counts.
func (o *observability) start(ctx context.Context) (context.Context, func(nodes, routes int)) {
	began := time.Now()

	var span trace.Span
	if o.tracer != nil {
		ctx, span = o.tracer.Start(ctx, "routemap.Compile")
	}

	return ctx, func(nodes, routes int) {
		attrs := metric.WithAttributes(
			attribute.Int("routemap.config_nodes", nodes),
			attribute.Int("routemap.routes", routes),
		)
		if o.compileDuration != nil {
			o.compileDuration.Record(ctx, time.Since(began).Seconds(), attrs)
		}
		if o.nodesCompiled != nil {
			o.nodesCompiled.Add(ctx, int64(nodes))
		}
		if o.routesTotal != nil {
			o.routesTotal.Add(ctx, int64(routes))
		}
		if span != nil {
			span.SetAttributes(
				attribute.Int("routemap.config_nodes", nodes),
				attribute.Int("routemap.routes", routes),
			)
			span.End()
		}
	}
}
