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

import "rivaas.dev/routemap/pattern"

// mapKind discriminates the structural role of a Map node. Exactly one
// role per node is representable; the builder methods pick the variant
// at construction time, so conflicting roles cannot arise.
type mapKind uint8

const (
	kindGroup  mapKind = iota // organizational nesting, no path contribution
	kindLayout                // wraps children with a handler, no path segment
	kindPrefix                // prepends a path fragment, no wrapping node
	kindMount                 // wraps children under a parent path and handler
)

// entry is one named slot of a Map: either a Route leaf or a nested
// Map. Insertion order is emission order.
type entry struct {
	name  string
	route *Route
	child *Map
}

// Map is an ordered route map under construction. The zero value is
// not usable; create maps with NewMap and derive nested ones with
// Group, Layout, Prefix, Mount, Resources, and Resource.
//
// A Map accumulates the composed public base pattern of its position in
// the tree, so routes added anywhere already know their full pattern
// for URL building, while the pattern relative to the enclosing node is
// retained for config emission.
//
// Maps are not safe for concurrent mutation; build the map up front,
// then Compile. Compiled Routes values are immutable and safe to share.
type Map struct {
	kind       mapKind
	file       string          // layout and mount handler reference
	mountPath  pattern.Pattern // mount: pattern relative to the parent node
	prefixPath pattern.Pattern // prefix: the fragment to prepend
	base       pattern.Pattern // composed public base for children
	namePrefix string          // dotted name prefix, "" at the root
	entries    []entry
}

// NewMap creates an empty root route map.
func NewMap() *Map {
	return &Map{kind: kindGroup}
}

// Index adds a route rendering at the map's base path. Its public URL
// is the composed base itself ("/" at the root).
func (m *Map) Index(name, file string) *Route {
	r := &Route{
		full:  m.base,
		file:  file,
		index: true,
		name:  m.childName(name),
	}
	m.entries = append(m.entries, entry{name: name, route: r})

	return r
}

// Route adds a leaf route with the given pattern source relative to
// this map node. The returned Route's public pattern is the composition
// of the map's base and the given source.
func (m *Map) Route(name, source, file string) *Route {
	return m.AddRoute(name, pattern.New(source), file)
}

// AddRoute is Route for a pre-built pattern, e.g. one constructed with
// pattern.WithIgnoreCase.
func (m *Map) AddRoute(name string, p pattern.Pattern, file string) *Route {
	r := &Route{
		full:     pattern.Join(m.base, p),
		relative: p,
		file:     file,
		name:     m.childName(name),
	}
	m.entries = append(m.entries, entry{name: name, route: r})

	return r
}

// Group adds a purely organizational nested map. It contributes no
// path segment and no config node; its children are spliced into the
// parent's config in place. Only the dotted names gain a segment.
func (m *Map) Group(name string) *Map {
	child := &Map{
		kind:       kindGroup,
		base:       m.base,
		namePrefix: m.childName(name) + ".",
	}
	m.entries = append(m.entries, entry{name: name, child: child})

	return child
}

// Layout adds a map whose direct routes are wrapped by the given
// handler in the emitted config. A layout contributes no path segment;
// child patterns compose exactly as they would in the parent.
//
// Config emission gathers only the direct Route entries of a layout;
// maps nested inside one keep working for URL building but are not
// descended into when the layout node's children are collected.
func (m *Map) Layout(name, file string) *Map {
	child := &Map{
		kind:       kindLayout,
		file:       file,
		base:       m.base,
		namePrefix: m.childName(name) + ".",
	}
	m.entries = append(m.entries, entry{name: name, child: child})

	return child
}

// Prefix adds a map whose path fragment is prepended to all descendant
// routes without introducing a wrapping config node. The fragment may
// carry a search suffix, which composes into every descendant's public
// pattern.
//
// Emission keeps the children's relative patterns and asks the
// framework to apply the prefix natively, so the fragment is never
// applied twice.
func (m *Map) Prefix(name, source string) *Map {
	frag := pattern.New(source)
	child := &Map{
		kind:       kindPrefix,
		prefixPath: frag,
		base:       pattern.Join(m.base, frag),
		namePrefix: m.childName(name) + ".",
	}
	m.entries = append(m.entries, entry{name: name, child: child})

	return child
}

// Mount adds a map wrapped by one parent config node carrying the given
// path and handler. Children use patterns relative to the mount; their
// public patterns compose through it. Any search suffix on the mount
// pattern composes into descendants but is stripped from the emitted
// parent node, since framework config has no search-parameter concept.
func (m *Map) Mount(name, source, file string) *Map {
	rel := pattern.New(source)
	child := &Map{
		kind:       kindMount,
		file:       file,
		mountPath:  rel,
		base:       pattern.Join(m.base, rel),
		namePrefix: m.childName(name) + ".",
	}
	m.entries = append(m.entries, entry{name: name, child: child})

	return child
}

func (m *Map) childName(name string) string {
	return m.namePrefix + name
}
