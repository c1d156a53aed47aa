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

// DiagnosticEvent represents a compile-time anomaly in a route map.
// These are informational events that may indicate configuration
// issues. Compilation succeeds whether diagnostics are collected or
// not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagDuplicateRouteName indicates two routes registered under the
	// same dotted name; the later registration wins for lookup.
	DiagDuplicateRouteName DiagnosticKind = "route_name_duplicate"

	// DiagDuplicateParam indicates a pattern declaring the same path
	// parameter name twice, which makes URL building ambiguous.
	DiagDuplicateParam DiagnosticKind = "route_param_duplicate"

	// DiagHighParamCount indicates a route with more than 8 path
	// parameters.
	DiagHighParamCount DiagnosticKind = "route_param_count_high"

	// DiagEmptyRouteEntry indicates a route entry with neither handler
	// file nor children; it emits no config node.
	DiagEmptyRouteEntry DiagnosticKind = "route_entry_empty"

	// DiagEmptyGroup indicates a nested map with no entries.
	DiagEmptyGroup DiagnosticKind = "route_group_empty"
)

// DiagnosticHandler receives diagnostic events during compilation.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are
// silently dropped.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := routemap.DiagnosticHandlerFunc(func(e routemap.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	routes := routemap.MustCompile(m, routemap.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
