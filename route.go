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
	"math/big"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"rivaas.dev/routemap/pattern"
)

// Params carries parameter values for Href. Values are stringified in
// their canonical form: strings pass through, bool/int/uint/float via
// strconv, *big.Int and fmt.Stringer via String, anything else via
// fmt's %v verb.
type Params map[string]any

// Route is one navigable endpoint of a route map. It holds the fully
// composed public pattern for URL building and the pattern relative to
// its enclosing map node for config emission.
//
// Routes are immutable once created; composition through prefixes,
// mounts, and resources always produces new Route values.
type Route struct {
	full     pattern.Pattern // composed pattern, used by Href
	relative pattern.Pattern // pattern within the enclosing map node, used for config emission
	file     string          // opaque handler reference, "" for a bare entry
	index    bool            // renders at the parent path
	name     string          // dotted logical name, assigned at registration
}

// Name returns the dotted logical name ("concerts.trending").
func (r *Route) Name() string {
	return r.name
}

// File returns the opaque handler reference, or "" when the route has
// none.
func (r *Route) File() string {
	return r.file
}

// Pattern returns the fully composed public pattern.
func (r *Route) Pattern() pattern.Pattern {
	return r.full
}

// IsIndex reports whether the route renders at its parent's path.
func (r *Route) IsIndex() bool {
	return r.index
}

// Href builds a concrete URL from the route's composed pattern.
//
// path supplies values for ':name' and ':name?' tokens; search supplies
// values for the declared search parameters. Validation is strict: a
// missing required path parameter, a key the pattern does not declare,
// or a non-nil argument against a pattern declaring no parameters of
// that kind all return a *ParameterError. Optional path tokens that
// receive no value drop their segment. The query string is appended
// only when at least one search value was supplied, in the pattern's
// declaration order.
func (r *Route) Href(path, search Params) (string, error) {
	pathParams := r.full.PathParams()
	if err := validatePathParams(pathParams, path); err != nil {
		return "", err
	}

	searchNames := r.full.SearchParams()
	if err := validateSearchParams(searchNames, search); err != nil {
		return "", err
	}

	href := buildPath(r.full.Path(), path)
	if query := buildQuery(searchNames, search); query != "" {
		href += "?" + query
	}

	return href, nil
}

// MustHref is Href but panics on validation failure. Intended for
// statically known call sites such as templates and tests.
func (r *Route) MustHref(path, search Params) string {
	href, err := r.Href(path, search)
	if err != nil {
		panic(fmt.Sprintf("routemap: MustHref %s: %v", r.full.Source(), err))
	}

	return href
}

func validatePathParams(declared []pattern.Param, supplied Params) error {
	if len(declared) == 0 {
		if supplied == nil {
			return nil
		}

		return &ParameterError{Kind: ParamPath, Key: firstKey(supplied)}
	}

	names := make([]string, 0, len(declared))
	byName := make(map[string]pattern.Param, len(declared))
	for _, p := range declared {
		names = append(names, p.Name)
		byName[p.Name] = p
	}

	for _, key := range sortedKeys(supplied) {
		if _, ok := byName[key]; !ok {
			return &ParameterError{Kind: ParamPath, Key: key, Valid: names}
		}
	}

	for _, p := range declared {
		if p.Optional {
			continue
		}
		if _, ok := supplied[p.Name]; !ok {
			return &ParameterError{Kind: ParamPath, Key: p.Name, Missing: true, Valid: names}
		}
	}

	return nil
}

func validateSearchParams(declared []string, supplied Params) error {
	if len(declared) == 0 {
		if supplied == nil {
			return nil
		}

		return &ParameterError{Kind: ParamSearch, Key: firstKey(supplied)}
	}

	set := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		set[name] = struct{}{}
	}

	for _, key := range sortedKeys(supplied) {
		if _, ok := set[key]; !ok {
			return &ParameterError{Kind: ParamSearch, Key: key, Valid: declared}
		}
	}

	return nil
}

// buildPath substitutes parameter tokens into the path portion.
// Validation has already run; only optional tokens may be absent here.
func buildPath(path string, supplied Params) string {
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			kept = append(kept, seg)
			continue
		}

		name := strings.TrimSuffix(seg[1:], "?")
		value, ok := supplied[name]
		if !ok {
			continue // optional token without a value drops its segment
		}
		kept = append(kept, url.PathEscape(stringifyParam(value)))
	}

	href := strings.Join(kept, "/")
	if href == "" {
		return "/"
	}

	return href
}

// buildQuery renders supplied search values in pattern declaration
// order. Returns "" when nothing was supplied.
func buildQuery(declared []string, supplied Params) string {
	if len(supplied) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range declared {
		value, ok := supplied[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringifyParam(value)))
	}

	return b.String()
}

func stringifyParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case *big.Int:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(p Params) []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func firstKey(p Params) string {
	keys := sortedKeys(p)
	if len(keys) == 0 {
		return ""
	}

	return keys[0]
}
