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

// Package echoadapter registers a compiled route-map config on an echo
// instance.
//
// Echo distinguishes handlers from middleware, so the adapter takes a
// Registry with both: route and index files resolve to
// echo.HandlerFunc, layout and parent files to echo.MiddlewareFunc.
// Routes register as GET, matching the navigational nature of
// route-map endpoints, and registration preserves config order.
package echoadapter

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"rivaas.dev/routemap/config"
	"rivaas.dev/routemap/pattern"
)

var (
	// ErrUnknownHandler indicates a config file reference missing from
	// Registry.Handlers.
	ErrUnknownHandler = errors.New("no handler registered for file")

	// ErrUnknownMiddleware indicates a layout or parent file reference
	// missing from Registry.Middleware.
	ErrUnknownMiddleware = errors.New("no middleware registered for file")

	// ErrOptionalParentParam indicates an optional parameter in a node
	// that has children, which echo route groups cannot express.
	ErrOptionalParentParam = errors.New("optional parameter in parent path")
)

// Registry resolves opaque handler-file references.
type Registry struct {
	// Handlers backs index and leaf route nodes.
	Handlers map[string]echo.HandlerFunc

	// Middleware backs layout nodes and parent nodes of mounted
	// subtrees.
	Middleware map[string]echo.MiddlewareFunc
}

// Router is the subset of echo's registration surface the adapter
// needs. *echo.Echo and *echo.Group both satisfy it.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	Group(prefix string, m ...echo.MiddlewareFunc) *echo.Group
}

// Apply registers every node of the compiled config on r.
func Apply(r Router, nodes []config.Node, reg Registry) error {
	for _, n := range nodes {
		if err := applyNode(r, n, reg); err != nil {
			return err
		}
	}

	return nil
}

func applyNode(r Router, n config.Node, reg Registry) error {
	switch n.Kind {
	case config.KindIndex:
		fn, err := handler(reg, n.File)
		if err != nil {
			return err
		}
		r.GET("", fn)

		return nil

	case config.KindLayout:
		mw, err := middleware(reg, n.File)
		if err != nil {
			return err
		}

		return Apply(r.Group("", mw...), n.Children, reg)

	default: // route
		if len(n.Children) == 0 {
			fn, err := handler(reg, n.File)
			if err != nil {
				return err
			}
			for _, path := range pattern.ExpandOptional(n.Path) {
				r.GET(path, fn)
			}

			return nil
		}

		if len(pattern.ExpandOptional(n.Path)) > 1 {
			return fmt.Errorf("%w: %s", ErrOptionalParentParam, n.Path)
		}

		mw, err := middleware(reg, n.File)
		if err != nil {
			return err
		}

		return Apply(r.Group(n.Path, mw...), n.Children, reg)
	}
}

func handler(reg Registry, file string) (echo.HandlerFunc, error) {
	fn, ok := reg.Handlers[file]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, file)
	}

	return fn, nil
}

// middleware resolves a wrapping file reference. An empty file means a
// structural node without behavior and resolves to no middleware.
func middleware(reg Registry, file string) ([]echo.MiddlewareFunc, error) {
	if file == "" {
		return nil, nil
	}

	mw, ok := reg.Middleware[file]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMiddleware, file)
	}

	return []echo.MiddlewareFunc{mw}, nil
}
