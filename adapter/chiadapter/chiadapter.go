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

// Package chiadapter registers a compiled route-map config on a chi
// router.
//
// Chi uses '{name}' parameter syntax and net/http handler types, so
// the adapter rewrites ':name' tokens and resolves file references
// through a Registry of http.HandlerFunc for routes and standard
// middleware for layouts and mounted parents. Routes register as GET,
// matching the navigational nature of route-map endpoints, and
// registration preserves config order.
package chiadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

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
	// that has children, which chi subrouters cannot express.
	ErrOptionalParentParam = errors.New("optional parameter in parent path")
)

// Registry resolves opaque handler-file references.
type Registry struct {
	// Handlers backs index and leaf route nodes.
	Handlers map[string]http.HandlerFunc

	// Middleware backs layout nodes and parent nodes of mounted
	// subtrees.
	Middleware map[string]func(http.Handler) http.Handler
}

// Apply registers every node of the compiled config on r.
func Apply(r chi.Router, nodes []config.Node, reg Registry) error {
	for _, n := range nodes {
		if err := applyNode(r, n, reg); err != nil {
			return err
		}
	}

	return nil
}

func applyNode(r chi.Router, n config.Node, reg Registry) error {
	switch n.Kind {
	case config.KindIndex:
		fn, err := handler(reg, n.File)
		if err != nil {
			return err
		}
		r.Get("/", fn)

		return nil

	case config.KindLayout:
		mw, err := middleware(reg, n.File)
		if err != nil {
			return err
		}

		var applyErr error
		r.Group(func(sub chi.Router) {
			sub.Use(mw...)
			applyErr = Apply(sub, n.Children, reg)
		})

		return applyErr

	default: // route
		if len(n.Children) == 0 {
			fn, err := handler(reg, n.File)
			if err != nil {
				return err
			}
			for _, path := range pattern.ExpandOptional(n.Path) {
				r.Get(chiPath(path), fn)
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

		var applyErr error
		r.Route(chiPath(n.Path), func(sub chi.Router) {
			sub.Use(mw...)
			applyErr = Apply(sub, n.Children, reg)
		})

		return applyErr
	}
}

func handler(reg Registry, file string) (http.HandlerFunc, error) {
	fn, ok := reg.Handlers[file]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, file)
	}

	return fn, nil
}

// middleware resolves a wrapping file reference. An empty file means a
// structural node without behavior and resolves to no middleware.
func middleware(reg Registry, file string) ([]func(http.Handler) http.Handler, error) {
	if file == "" {
		return nil, nil
	}

	mw, ok := reg.Middleware[file]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMiddleware, file)
	}

	return []func(http.Handler) http.Handler{mw}, nil
}

// chiPath rewrites ':name' tokens to chi's '{name}' syntax and maps
// the empty path (an optional leading segment dropped) to "/".
func chiPath(path string) string {
	if path == "" {
		return "/"
	}

	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = "{" + seg[1:] + "}"
		}
	}

	return strings.Join(segs, "/")
}
