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
	"fmt"
	"strings"

	"rivaas.dev/routemap/pattern"
)

// Resource method names, also the default child entry names.
const (
	MethodIndex = "index"
	MethodNew   = "new"
	MethodShow  = "show"
	MethodEdit  = "edit"
)

// ResourceRoutes holds the public routes of one expanded resource.
// Fields for unselected methods are nil.
type ResourceRoutes struct {
	Index *Route // collection index (Resources) — nil for a singleton
	New   *Route // creation form
	Show  *Route // one entity; for a singleton this is the base path itself
	Edit  *Route // edit form
}

// resourceConfig collects the Resources/Resource options.
type resourceConfig struct {
	only   []string
	param  string
	rename map[string]string
}

// ResourceOption configures a Resources or Resource expansion.
type ResourceOption func(*resourceConfig)

// Only restricts the expansion to the given methods. For Resources the
// given order is also the config emission order; Resource keeps its
// fixed show, new, edit emission order regardless.
func Only(methods ...string) ResourceOption {
	return func(cfg *resourceConfig) {
		cfg.only = methods
	}
}

// Param overrides the path-parameter name used by show and edit
// (default "id"). Only valid for Resources; a singleton Resource has no
// path parameter.
func Param(name string) ResourceOption {
	return func(cfg *resourceConfig) {
		cfg.param = name
	}
}

// Rename changes the entry name of one method, e.g. Rename("new",
// "create") makes the route addressable as "<resource>.create". The
// synthesized handler file keeps the method name.
func Rename(method, name string) ResourceOption {
	return func(cfg *resourceConfig) {
		if cfg.rename == nil {
			cfg.rename = make(map[string]string)
		}
		cfg.rename[method] = name
	}
}

// Resources expands a base pattern into a conventional collection
// resource: index, new, show, edit (in that default order), each a
// child of one parent config node at the base path. The parent's
// handler file and the per-method files are synthesized from the base
// path's last segment: "/artists" yields "./artists/layout.tsx",
// "./artists/index.tsx", and so on.
//
// Show and edit take one path parameter, "id" unless overridden with
// Param. A search suffix on the base pattern composes into every
// method's public pattern.
//
// Panics on an unknown method name in Only or Rename; resource
// configuration is startup code and misconfiguration should fail fast.
func (m *Map) Resources(name, base string, opts ...ResourceOption) *ResourceRoutes {
	cfg := resourceConfig{
		only:  []string{MethodIndex, MethodNew, MethodShow, MethodEdit},
		param: "id",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	validateMethods(cfg, MethodIndex, MethodNew, MethodShow, MethodEdit)

	seg := resourceSegment(base, name)
	mnt := m.Mount(name, base, resourceFile(seg, "layout"))

	rr := &ResourceRoutes{}
	for _, method := range cfg.only {
		key := cfg.entryName(method)
		file := resourceFile(seg, method)
		switch method {
		case MethodIndex:
			rr.Index = mnt.Index(key, file)
		case MethodNew:
			rr.New = mnt.Route(key, "/new", file)
		case MethodShow:
			rr.Show = mnt.Route(key, "/:"+cfg.param, file)
		case MethodEdit:
			rr.Edit = mnt.Route(key, "/:"+cfg.param+"/edit", file)
		}
	}

	return rr
}

// Resource expands a base pattern into a singleton resource: show, new,
// edit. Show renders at the base path itself and is emitted as the
// parent's index node. There is no collection index and no path
// parameter.
//
// Config emission order is fixed show, new, edit regardless of the
// order given to Only.
func (m *Map) Resource(name, base string, opts ...ResourceOption) *ResourceRoutes {
	cfg := resourceConfig{
		only: []string{MethodShow, MethodNew, MethodEdit},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.param != "" {
		panic("routemap: a singleton Resource has no path parameter")
	}
	validateMethods(cfg, MethodShow, MethodNew, MethodEdit)

	selected := make(map[string]bool, len(cfg.only))
	for _, method := range cfg.only {
		selected[method] = true
	}

	seg := resourceSegment(base, name)
	mnt := m.Mount(name, base, resourceFile(seg, "layout"))

	rr := &ResourceRoutes{}
	for _, method := range []string{MethodShow, MethodNew, MethodEdit} {
		if !selected[method] {
			continue
		}
		key := cfg.entryName(method)
		file := resourceFile(seg, method)
		switch method {
		case MethodShow:
			rr.Show = mnt.Index(key, file)
		case MethodNew:
			rr.New = mnt.Route(key, "/new", file)
		case MethodEdit:
			rr.Edit = mnt.Route(key, "/edit", file)
		}
	}

	return rr
}

func (cfg *resourceConfig) entryName(method string) string {
	if name, ok := cfg.rename[method]; ok {
		return name
	}

	return method
}

func validateMethods(cfg resourceConfig, allowed ...string) {
	ok := make(map[string]bool, len(allowed))
	for _, method := range allowed {
		ok[method] = true
	}
	for _, method := range cfg.only {
		if !ok[method] {
			panic(fmt.Sprintf("routemap: unknown resource method %q", method))
		}
	}
	for method := range cfg.rename {
		if !ok[method] {
			panic(fmt.Sprintf("routemap: unknown resource method %q", method))
		}
	}
}

// resourceSegment derives the handler directory from the base path's
// last segment, falling back to the entry name for a bare "/" base.
func resourceSegment(base, name string) string {
	path := pattern.New(base).Path()
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return name
	}
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}

	return trimmed
}

func resourceFile(segment, method string) string {
	return "./" + segment + "/" + method + ".tsx"
}
