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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBuilder_Factories(t *testing.T) {
	t.Parallel()

	b := NodeBuilder{}

	assert.Equal(t, Node{Kind: KindIndex, File: "./home.tsx"}, b.Index("./home.tsx"))

	layout := b.Layout("./auth/layout.tsx", []Node{b.Route("/login", "./auth/login.tsx", nil)})
	assert.Equal(t, KindLayout, layout.Kind)
	assert.Empty(t, layout.Path)
	require.Len(t, layout.Children, 1)
	assert.Equal(t, "/login", layout.Children[0].Path)

	route := b.Route("/about", "./about.tsx", nil)
	assert.Equal(t, Node{Kind: KindRoute, Path: "/about", File: "./about.tsx"}, route)
}

func TestNodeBuilder_Prefix_Routes(t *testing.T) {
	t.Parallel()

	b := NodeBuilder{}

	got := b.Prefix("/concerts", []Node{
		b.Route("/trending", "./concerts/trending.tsx", nil),
		b.Route("/:city", "./concerts/show.tsx", nil),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "/concerts/trending", got[0].Path)
	assert.Equal(t, "/concerts/:city", got[1].Path)
}

// An index directly under a prefix renders at the prefix path itself,
// so it becomes a route node matching the fragment.
func TestNodeBuilder_Prefix_Index(t *testing.T) {
	t.Parallel()

	b := NodeBuilder{}

	got := b.Prefix("/concerts", []Node{b.Index("./concerts/home.tsx")})

	require.Len(t, got, 1)
	assert.Equal(t, KindRoute, got[0].Kind)
	assert.Equal(t, "/concerts", got[0].Path)
	assert.Equal(t, "./concerts/home.tsx", got[0].File)
}

// A layout carries no path, so the fragment distributes over its
// children.
func TestNodeBuilder_Prefix_Layout(t *testing.T) {
	t.Parallel()

	b := NodeBuilder{}

	got := b.Prefix("/admin", []Node{
		b.Layout("./admin/layout.tsx", []Node{
			b.Route("/users", "./admin/users.tsx", nil),
		}),
	})

	require.Len(t, got, 1)
	assert.Equal(t, KindLayout, got[0].Kind)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "/admin/users", got[0].Children[0].Path)
}

// Children of route nodes stay relative; the prefix applies to the
// parent only.
func TestNodeBuilder_Prefix_RouteWithChildren(t *testing.T) {
	t.Parallel()

	b := NodeBuilder{}

	got := b.Prefix("/api", []Node{
		b.Route("/artists", "./artists/layout.tsx", []Node{
			b.Route("/new", "./artists/new.tsx", nil),
		}),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "/api/artists", got[0].Path)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "/new", got[0].Children[0].Path)
}

func TestNodeBuilder_Prefix_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NodeBuilder{}.Prefix("/x", nil))
}
