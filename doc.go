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

// Package routemap compiles a declarative, named route map into an
// ordered framework config while keeping a typed URL builder per route.
//
// A route map is built with methods on Map. Each entry has a logical
// name, and nesting is explicit: groups organize names without touching
// paths, layouts wrap children without a path segment, prefixes prepend
// a path fragment, and mounts wrap children under a parent path and
// handler. Resources and Resource expand a base pattern into
// conventional CRUD-style child routes.
//
//	m := routemap.NewMap()
//	m.Index("home", "./home.tsx")
//	m.Route("about", "/about", "./about.tsx")
//
//	auth := m.Layout("auth", "./auth/layout.tsx")
//	auth.Route("login", "/login", "./auth/login.tsx")
//
//	concerts := m.Prefix("concerts", "/concerts?q")
//	concerts.Route("trending", "/trending?in-my-town", "./concerts/trending.tsx")
//
//	artists := m.Resources("artists", "/artists?q",
//	    routemap.Only(routemap.MethodIndex, routemap.MethodShow),
//	    routemap.Param("name"))
//
//	routes := routemap.MustCompile(m)
//
// Compilation walks the map depth-first in declaration order and emits
// framework config nodes through the config.Builder factories. Config
// order mirrors declaration order exactly at every level; frameworks
// treat it as match-priority order.
//
// # URL building
//
// Every builder method returns the created *Route (or a typed resource
// set), so call sites hold direct handles:
//
//	url, err := artists.Show.Href(
//	    routemap.Params{"name": "haim"},
//	    routemap.Params{"q": "Austin"},
//	)
//	// url == "/artists/haim?q=Austin"
//
// Href validates strictly at runtime: a missing required path
// parameter, an unknown path or search key, or parameters supplied to a
// parameterless pattern all fail with a *ParameterError naming the
// offending key and the valid set. Routes can also be resolved by
// dotted name through the compiled Routes value:
//
//	url, err := routes.Href("concerts.trending", nil, routemap.Params{"q": "rock"})
//
// # Framework integration
//
// The compiled config is a []config.Node tree. The adapter
// subpackages translate it into gin, echo, or chi registrations, and a
// custom config.Builder integrates any other framework.
//
// Compilation is synchronous, performs no I/O, and shares no state
// between calls; separately built maps compile independently and
// concurrently.
package routemap
