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

// Package ginadapter registers a compiled route-map config on a gin
// router.
//
// Handler-file references from the route map are opaque keys; the
// caller supplies a Handlers registry resolving them to gin handlers.
// Layout files and parent files of mounted subtrees resolve to the
// same handler type and run as group middleware. Routes register as
// GET, matching the navigational nature of route-map endpoints.
// Registration preserves config order, which gin treats as
// registration order.
package ginadapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"rivaas.dev/routemap/config"
	"rivaas.dev/routemap/pattern"
)

var (
	// ErrUnknownHandler indicates a config file reference missing from
	// the Handlers registry.
	ErrUnknownHandler = errors.New("no handler registered for file")

	// ErrOptionalParentParam indicates an optional parameter in a node
	// that has children, which gin route groups cannot express.
	ErrOptionalParentParam = errors.New("optional parameter in parent path")
)

// Handlers maps config handler-file references to gin handlers.
type Handlers map[string]gin.HandlerFunc

// Apply registers every node of the compiled config on r.
func Apply(r gin.IRouter, nodes []config.Node, handlers Handlers) error {
	for _, n := range nodes {
		if err := applyNode(r, n, handlers); err != nil {
			return err
		}
	}

	return nil
}

func applyNode(r gin.IRouter, n config.Node, handlers Handlers) error {
	fn, err := resolve(handlers, n.File)
	if err != nil {
		return err
	}

	switch n.Kind {
	case config.KindIndex:
		r.GET("", fn)
		return nil

	case config.KindLayout:
		return Apply(r.Group("", fn), n.Children, handlers)

	default: // route
		if len(n.Children) == 0 {
			// Gin shares the ':name' syntax; the empty variant (an
			// optional leading segment dropped) registers at the group
			// base.
			for _, path := range pattern.ExpandOptional(n.Path) {
				r.GET(path, fn)
			}
			return nil
		}

		if hasOptional(n.Path) {
			return fmt.Errorf("%w: %s", ErrOptionalParentParam, n.Path)
		}

		return Apply(r.Group(n.Path, fn), n.Children, handlers)
	}
}

func resolve(handlers Handlers, file string) (gin.HandlerFunc, error) {
	if file == "" {
		// Pathless grouping node without behavior; pass through.
		return func(*gin.Context) {}, nil
	}

	fn, ok := handlers[file]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, file)
	}

	return fn, nil
}

func hasOptional(path string) bool {
	return len(pattern.ExpandOptional(path)) > 1 || strings.Contains(path, "?")
}
