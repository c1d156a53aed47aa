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
	"log/slog"

	"rivaas.dev/routemap/config"
)

// highParamThreshold triggers DiagHighParamCount.
const highParamThreshold = 8

// Info describes one registered route for introspection, debugging,
// and documentation generation.
type Info struct {
	Name         string   // dotted logical name
	Pattern      string   // fully composed pattern source
	Path         string   // path portion of the composed pattern
	File         string   // opaque handler reference
	Index        bool     // renders at the parent path
	IgnoreCase   bool     // pattern matches case-insensitively
	ParamCount   int      // number of path parameters
	SearchParams []string // declared search-parameter names
}

// Routes is a compiled, frozen route map: the ordered framework config
// plus a name registry for reverse routing. Routes values are immutable
// and safe for concurrent use.
type Routes struct {
	nodes  []config.Node
	byName map[string]*Route
	names  []string
	infos  []Info
}

// Compile walks the route map depth-first in declaration order and
// emits the framework config through the configured builder. The
// emitted sequence mirrors declaration order at every nesting level;
// compiling the same map twice yields structurally equal config.
func Compile(m *Map, opts ...Option) (*Routes, error) {
	if m == nil {
		return nil, ErrNilRouteMap
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	obs, err := newObservability(cfg.tracerProvider, cfg.meterProvider)
	if err != nil {
		return nil, err
	}
	_, finish := obs.start(context.Background())

	w := &walker{
		builder:     cfg.builder,
		logger:      cfg.logger,
		diagnostics: cfg.diagnostics,
	}

	rt := &Routes{
		nodes:  w.compileMap(m),
		byName: make(map[string]*Route),
	}
	w.register(m, rt)

	finish(countNodes(rt.nodes), len(rt.names))

	return rt, nil
}

// MustCompile is Compile but panics on error. Route maps are built in
// startup code where failing fast is the right behavior.
func MustCompile(m *Map, opts ...Option) *Routes {
	rt, err := Compile(m, opts...)
	if err != nil {
		panic(fmt.Sprintf("routemap: Compile failed: %v", err))
	}

	return rt
}

// Config returns the ordered framework config. The returned slice is a
// copy of the top level; callers must not mutate the node trees.
func (rt *Routes) Config() []config.Node {
	nodes := make([]config.Node, len(rt.nodes))
	copy(nodes, rt.nodes)

	return nodes
}

// Lookup returns the route registered under the dotted name.
func (rt *Routes) Lookup(name string) (*Route, bool) {
	r, ok := rt.byName[name]
	return r, ok
}

// Href builds a URL for the named route. It returns ErrRouteNotFound
// (wrapped with the name) for an unknown name and propagates Href's
// parameter validation errors.
func (rt *Routes) Href(name string, path, search Params) (string, error) {
	r, ok := rt.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	return r.Href(path, search)
}

// MustHref is Href but panics on error.
func (rt *Routes) MustHref(name string, path, search Params) string {
	href, err := rt.Href(name, path, search)
	if err != nil {
		panic(fmt.Sprintf("routemap: MustHref %s: %v", name, err))
	}

	return href
}

// Names returns the registered route names in declaration order.
func (rt *Routes) Names() []string {
	names := make([]string, len(rt.names))
	copy(names, rt.names)

	return names
}

// Info returns introspection records for every registered route, in
// declaration order.
func (rt *Routes) Info() []Info {
	infos := make([]Info, len(rt.infos))
	copy(infos, rt.infos)

	return infos
}

// walker compiles and registers a route map. It holds no state of its
// own beyond the configured collaborators, so compilation is
// deterministic and repeatable.
type walker struct {
	builder     config.Builder
	logger      *slog.Logger
	diagnostics DiagnosticHandler
}

// compileMap emits config nodes for every entry of m in insertion
// order.
func (w *walker) compileMap(m *Map) []config.Node {
	var out []config.Node
	for _, e := range m.entries {
		switch {
		case e.route != nil:
			out = append(out, w.compileRoute(e.route)...)
		case e.child != nil:
			out = append(out, w.compileChild(e.child)...)
		}
	}

	return out
}

func (w *walker) compileChild(m *Map) []config.Node {
	if len(m.entries) == 0 {
		w.emit(DiagEmptyGroup, "route map node has no entries", map[string]any{
			"name": m.namePrefix,
		})
	}

	switch m.kind {
	case kindLayout:
		// A layout gathers only its direct Route entries; nested maps
		// inside one are not descended into here.
		var kids []config.Node
		for _, e := range m.entries {
			if e.route != nil {
				kids = append(kids, w.compileRoute(e.route)...)
			}
		}

		return []config.Node{w.builder.Layout(m.file, kids)}

	case kindPrefix:
		// Children keep their relative patterns; the framework applies
		// the prefix natively so it is never applied twice.
		return w.builder.Prefix(m.prefixPath.Path(), w.compileMap(m))

	case kindMount:
		// The parent node carries the path portion only; search
		// suffixes have no framework config representation.
		return []config.Node{w.builder.Route(m.mountPath.Path(), m.file, w.compileMap(m))}

	default: // group: purely organizational, splice children in place
		return w.compileMap(m)
	}
}

// compileRoute emits the config for one Route leaf: an index node, a
// route node for its relative path (search suffix stripped), or
// nothing for an entry without a handler.
func (w *walker) compileRoute(r *Route) []config.Node {
	if r.file == "" {
		w.emit(DiagEmptyRouteEntry, "route entry has no handler file", map[string]any{
			"name":    r.name,
			"pattern": r.full.Source(),
		})

		return nil
	}

	if r.index {
		return []config.Node{w.builder.Index(r.file)}
	}

	return []config.Node{w.builder.Route(r.relative.Path(), r.file, nil)}
}

// register walks the full tree (including maps a layout's config
// emission skips) and records every route for reverse routing and
// introspection.
func (w *walker) register(m *Map, rt *Routes) {
	for _, e := range m.entries {
		if e.route != nil {
			w.registerRoute(e.route, rt)
			continue
		}
		w.register(e.child, rt)
	}
}

func (w *walker) registerRoute(r *Route, rt *Routes) {
	params := r.full.PathParams()

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p.Name] {
			w.emit(DiagDuplicateParam, "pattern declares the same path parameter twice", map[string]any{
				"name":    r.name,
				"pattern": r.full.Source(),
				"param":   p.Name,
			})
		}
		seen[p.Name] = true
	}

	if len(params) > highParamThreshold {
		w.emit(DiagHighParamCount, "route has an unusually high parameter count", map[string]any{
			"name":        r.name,
			"pattern":     r.full.Source(),
			"param_count": len(params),
		})
	}

	if _, dup := rt.byName[r.name]; dup {
		w.emit(DiagDuplicateRouteName, "route name registered twice; the later route wins", map[string]any{
			"name": r.name,
		})
	} else {
		rt.names = append(rt.names, r.name)
	}
	rt.byName[r.name] = r

	rt.infos = append(rt.infos, Info{
		Name:         r.name,
		Pattern:      r.full.Source(),
		Path:         r.full.Path(),
		File:         r.file,
		Index:        r.index,
		IgnoreCase:   r.full.IgnoreCase(),
		ParamCount:   len(params),
		SearchParams: r.full.SearchParams(),
	})

	w.logger.Debug("route registered",
		"name", r.name,
		"pattern", r.full.Source(),
		"file", r.file,
	)
}

func (w *walker) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if w.diagnostics == nil {
		return
	}
	w.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
}

// countNodes counts config nodes recursively.
func countNodes(nodes []config.Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Children)
	}

	return total
}
