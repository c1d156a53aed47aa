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
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routemap/config"
)

// demoMap builds the README scenario: plain routes, a layout, a
// prefix, a collection resource, a singleton resource, and a plain
// group, in one map.
func demoMap() *Map {
	m := NewMap()
	m.Index("home", "./home.tsx")
	m.Route("about", "/about", "./about.tsx")

	auth := m.Layout("auth", "./auth/layout.tsx")
	auth.Route("login", "/login", "./auth/login.tsx")
	auth.Route("register", "/register", "./auth/register.tsx")

	concerts := m.Prefix("concerts", "/concerts?q")
	concerts.Index("home", "./concerts/home.tsx")
	concerts.Route("show", "/:city", "./concerts/show.tsx")
	concerts.Route("trending", "/trending?in-my-town", "./concerts/trending.tsx")

	m.Resources("artists", "/artists?q", Only(MethodIndex, MethodShow), Param("name"))
	m.Resource("user", "/user")

	nested := m.Group("nested")
	nested.Route("some", "/some", "./some.tsx")
	nested.Route("other", "/other", "./other.tsx")

	return m
}

// Compile tests

func TestCompile_NilMap(t *testing.T) {
	t.Parallel()

	_, err := Compile(nil)
	require.ErrorIs(t, err, ErrNilRouteMap)
}

func TestCompile_EmptyMap(t *testing.T) {
	t.Parallel()

	routes, err := Compile(NewMap())
	require.NoError(t, err)
	assert.Empty(t, routes.Config())
	assert.Empty(t, routes.Names())
}

// Emission order mirrors declaration order at every nesting level.
func TestCompile_EmissionOrder(t *testing.T) {
	t.Parallel()

	routes := MustCompile(demoMap())
	cfg := routes.Config()
	require.Len(t, cfg, 10)

	// 1. index home
	assert.Equal(t, config.Node{Kind: config.KindIndex, File: "./home.tsx"}, cfg[0])

	// 2. about
	assert.Equal(t, config.KindRoute, cfg[1].Kind)
	assert.Equal(t, "/about", cfg[1].Path)

	// 3. auth layout wrapping login and register
	assert.Equal(t, config.KindLayout, cfg[2].Kind)
	assert.Equal(t, "./auth/layout.tsx", cfg[2].File)
	require.Len(t, cfg[2].Children, 2)
	assert.Equal(t, "/login", cfg[2].Children[0].Path)
	assert.Equal(t, "/register", cfg[2].Children[1].Path)

	// 4-6. concerts prefix, spliced without a wrapping node
	assert.Equal(t, config.Node{Kind: config.KindRoute, Path: "/concerts", File: "./concerts/home.tsx"}, cfg[3])
	assert.Equal(t, "/concerts/:city", cfg[4].Path)
	assert.Equal(t, "/concerts/trending", cfg[5].Path)

	// 7. artists resources parent
	assert.Equal(t, "/artists", cfg[6].Path)
	assert.Equal(t, "./artists/layout.tsx", cfg[6].File)
	require.Len(t, cfg[6].Children, 2)
	assert.Equal(t, config.KindIndex, cfg[6].Children[0].Kind)
	assert.Equal(t, "/:name", cfg[6].Children[1].Path)

	// 8. user resource parent
	assert.Equal(t, "/user", cfg[7].Path)
	require.Len(t, cfg[7].Children, 3)

	// 9-10. nested group, spliced in place
	assert.Equal(t, "/some", cfg[8].Path)
	assert.Equal(t, "/other", cfg[9].Path)
}

// Compiling the same map twice yields structurally equal config.
func TestCompile_Idempotent(t *testing.T) {
	t.Parallel()

	m := demoMap()

	first := MustCompile(m)
	second := MustCompile(m)

	assert.Equal(t, first.Config(), second.Config())
	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Info(), second.Info())
}

// A layout gathers only its direct Route entries; nested maps keep
// their public patterns for URL building but are not collected into
// the layout's config children.
func TestCompile_LayoutGathersDirectRoutesOnly(t *testing.T) {
	t.Parallel()

	m := NewMap()
	layout := m.Layout("shell", "./shell.tsx")
	layout.Route("top", "/top", "./top.tsx")
	inner := layout.Prefix("inner", "/inner")
	innerRoute := inner.Route("deep", "/deep", "./deep.tsx")

	routes := MustCompile(m)
	cfg := routes.Config()
	require.Len(t, cfg, 1)
	require.Len(t, cfg[0].Children, 1)
	assert.Equal(t, "/top", cfg[0].Children[0].Path)

	// URL building still composes through the skipped map.
	assert.Equal(t, "/inner/deep", innerRoute.MustHref(nil, nil))
}

func TestCompile_MountWrapsChildren(t *testing.T) {
	t.Parallel()

	m := NewMap()
	reports := m.Mount("reports", "/reports?from", "./reports/layout.tsx")
	reports.Index("home", "./reports/home.tsx")
	weekly := reports.Route("weekly", "/weekly", "./reports/weekly.tsx")

	routes := MustCompile(m)
	cfg := routes.Config()
	require.Len(t, cfg, 1)

	// The parent node carries the path only; the search suffix has no
	// config representation.
	assert.Equal(t, "/reports", cfg[0].Path)
	assert.Equal(t, "./reports/layout.tsx", cfg[0].File)
	require.Len(t, cfg[0].Children, 2)
	assert.Equal(t, config.KindIndex, cfg[0].Children[0].Kind)
	assert.Equal(t, "/weekly", cfg[0].Children[1].Path)

	assert.Equal(t, "/reports/weekly?from=monday", weekly.MustHref(nil, Params{"from": "monday"}))
}

func TestCompile_NestedPrefixes(t *testing.T) {
	t.Parallel()

	m := NewMap()
	api := m.Prefix("api", "/api")
	v1 := api.Prefix("v1", "/v1")
	users := v1.Route("users", "/users", "./users.tsx")

	routes := MustCompile(m)
	cfg := routes.Config()
	require.Len(t, cfg, 1)
	assert.Equal(t, "/api/v1/users", cfg[0].Path)
	assert.Equal(t, "/api/v1/users", users.MustHref(nil, nil))

	r, ok := routes.Lookup("api.v1.users")
	require.True(t, ok)
	assert.Same(t, users, r)
}

// Routes registry tests

func TestRoutes_LookupAndNames(t *testing.T) {
	t.Parallel()

	routes := MustCompile(demoMap())

	assert.Equal(t, []string{
		"home",
		"about",
		"auth.login",
		"auth.register",
		"concerts.home",
		"concerts.show",
		"concerts.trending",
		"artists.index",
		"artists.show",
		"user.show",
		"user.new",
		"user.edit",
		"nested.some",
		"nested.other",
	}, routes.Names())

	trending, ok := routes.Lookup("concerts.trending")
	require.True(t, ok)
	assert.Equal(t, "/concerts/trending?q&in-my-town", trending.Pattern().Source())

	_, ok = routes.Lookup("nope")
	assert.False(t, ok)
}

func TestRoutes_Href(t *testing.T) {
	t.Parallel()

	routes := MustCompile(demoMap())

	href, err := routes.Href("concerts.show", Params{"city": "austin"}, Params{"q": "rock"})
	require.NoError(t, err)
	assert.Equal(t, "/concerts/austin?q=rock", href)

	_, err = routes.Href("missing.route", nil, nil)
	require.ErrorIs(t, err, ErrRouteNotFound)
	assert.Contains(t, err.Error(), "missing.route")
}

func TestRoutes_MustHrefPanicsOnUnknownName(t *testing.T) {
	t.Parallel()

	routes := MustCompile(NewMap())

	assert.Panics(t, func() {
		routes.MustHref("nope", nil, nil)
	})
}

func TestRoutes_Info(t *testing.T) {
	t.Parallel()

	routes := MustCompile(demoMap())
	infos := routes.Info()
	require.Len(t, infos, 14)

	byName := make(map[string]Info, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	trending := byName["concerts.trending"]
	assert.Equal(t, "/concerts/trending?q&in-my-town", trending.Pattern)
	assert.Equal(t, "/concerts/trending", trending.Path)
	assert.Equal(t, []string{"q", "in-my-town"}, trending.SearchParams)
	assert.Zero(t, trending.ParamCount)

	show := byName["artists.show"]
	assert.Equal(t, 1, show.ParamCount)
	assert.Equal(t, "./artists/show.tsx", show.File)

	home := byName["home"]
	assert.True(t, home.Index)
}

// Diagnostics tests

func collectDiagnostics(m *Map) []DiagnosticEvent {
	var events []DiagnosticEvent
	MustCompile(m, WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})))

	return events
}

func kinds(events []DiagnosticEvent) []DiagnosticKind {
	out := make([]DiagnosticKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}

	return out
}

func TestCompile_DuplicateNameDiagnostic(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Route("about", "/about", "./about.tsx")
	later := m.Route("about", "/about-us", "./about-us.tsx")

	events := collectDiagnostics(m)
	assert.Contains(t, kinds(events), DiagDuplicateRouteName)

	// Last registration wins for lookup.
	routes := MustCompile(m)
	r, ok := routes.Lookup("about")
	require.True(t, ok)
	assert.Same(t, later, r)
	assert.Equal(t, []string{"about"}, routes.Names())
}

func TestCompile_DuplicateParamDiagnostic(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Route("odd", "/:id/versus/:id", "./odd.tsx")

	assert.Contains(t, kinds(collectDiagnostics(m)), DiagDuplicateParam)
}

func TestCompile_EmptyEntryDiagnostics(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Route("bare", "/bare", "")
	m.Group("empty")

	got := kinds(collectDiagnostics(m))
	assert.Contains(t, got, DiagEmptyRouteEntry)
	assert.Contains(t, got, DiagEmptyGroup)
}

func TestCompile_HighParamCountDiagnostic(t *testing.T) {
	t.Parallel()

	segs := make([]string, 0, 9)
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		segs = append(segs, ":"+s)
	}

	m := NewMap()
	m.Route("wide", "/"+strings.Join(segs, "/"), "./wide.tsx")

	assert.Contains(t, kinds(collectDiagnostics(m)), DiagHighParamCount)
}

// A route entry without a handler emits no config node but still
// registers for URL building.
func TestCompile_BareEntryStillBuildsHrefs(t *testing.T) {
	t.Parallel()

	m := NewMap()
	bare := m.Route("bare", "/bare/:id", "")

	routes := MustCompile(m)
	assert.Empty(t, routes.Config())
	assert.Equal(t, "/bare/7", bare.MustHref(Params{"id": 7}, nil))
}

func TestCompile_WithLogger(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	MustCompile(demoMap(), WithLogger(logger))

	assert.Contains(t, buf.String(), "route registered")
	assert.Contains(t, buf.String(), "concerts.trending")
}
