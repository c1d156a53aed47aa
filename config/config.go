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

package config

import "rivaas.dev/routemap/pattern"

// Kind discriminates config node types.
type Kind string

const (
	// KindIndex is a route that renders at its parent's path.
	KindIndex Kind = "index"

	// KindLayout wraps child routes without contributing a path segment.
	KindLayout Kind = "layout"

	// KindRoute is a path-carrying route, optionally with children.
	KindRoute Kind = "route"
)

// Node is one framework-native route config entry. Nodes form a tree;
// child paths are relative to their parent. The File field is an
// opaque handler reference passed through from the route map unchanged.
//
// Nodes are plain data, safe to marshal for tooling that inspects the
// compiled configuration.
type Node struct {
	Kind     Kind   `json:"kind"`
	Path     string `json:"path,omitempty"`
	File     string `json:"file,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Builder constructs framework-native config nodes. The route-map
// compiler calls exactly these four factories; supplying a custom
// Builder integrates a different routing framework without touching
// the compiler.
type Builder interface {
	// Index builds a node for a route rendering at its parent's path.
	Index(file string) Node

	// Layout builds a node wrapping children with shared behavior but
	// no path segment of its own.
	Layout(file string, children []Node) Node

	// Route builds a path-carrying node. children may be nil for a
	// leaf route.
	Route(path, file string, children []Node) Node

	// Prefix prepends a path fragment to a group of nodes without
	// introducing a wrapping node. The returned slice preserves the
	// order of children.
	Prefix(prefix string, children []Node) []Node
}

// NodeBuilder is the default Builder. It emits Node values directly.
type NodeBuilder struct{}

var _ Builder = NodeBuilder{}

// Index implements Builder.
func (NodeBuilder) Index(file string) Node {
	return Node{Kind: KindIndex, File: file}
}

// Layout implements Builder.
func (NodeBuilder) Layout(file string, children []Node) Node {
	return Node{Kind: KindLayout, File: file, Children: children}
}

// Route implements Builder.
func (NodeBuilder) Route(path, file string, children []Node) Node {
	return Node{Kind: KindRoute, Path: path, File: file, Children: children}
}

// Prefix implements Builder. Per node:
//
//   - route nodes get the fragment joined in front of their path;
//   - layout nodes contribute no path, so the fragment distributes
//     over their children;
//   - index nodes become route nodes matching the fragment itself,
//     since an index directly under a prefix renders at the prefix
//     path.
func (NodeBuilder) Prefix(prefix string, children []Node) []Node {
	if len(children) == 0 {
		return nil
	}

	out := make([]Node, 0, len(children))
	for _, child := range children {
		out = append(out, prefixNode(prefix, child))
	}

	return out
}

func prefixNode(prefix string, n Node) Node {
	switch n.Kind {
	case KindLayout:
		kids := make([]Node, 0, len(n.Children))
		for _, child := range n.Children {
			kids = append(kids, prefixNode(prefix, child))
		}
		n.Children = kids
	case KindIndex:
		n.Kind = KindRoute
		n.Path = prefix
	case KindRoute:
		n.Path = pattern.JoinPaths(prefix, n.Path)
	}

	return n
}
