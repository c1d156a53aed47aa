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

package pattern

import "strings"

// Pattern is an immutable route pattern: a path template plus an
// optional '?'-delimited list of declared search-parameter names.
//
// Pattern is a small value type; copy it freely. The zero value is the
// empty pattern, which composes as the identity on both sides of Join.
type Pattern struct {
	source     string
	ignoreCase bool
}

// Option configures a Pattern at construction time.
type Option func(*Pattern)

// WithIgnoreCase marks the pattern as case-insensitive for matching.
// The flag is carried through composition and surfaces in route
// introspection; it does not affect URL building.
func WithIgnoreCase() Option {
	return func(p *Pattern) {
		p.ignoreCase = true
	}
}

// New creates a Pattern from a source string.
func New(source string, opts ...Option) Pattern {
	p := Pattern{source: source}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Source returns the raw pattern string (path plus search suffix).
func (p Pattern) Source() string {
	return p.source
}

// IgnoreCase reports whether the pattern matches case-insensitively.
func (p Pattern) IgnoreCase() bool {
	return p.ignoreCase
}

// IsZero reports whether the pattern has an empty source.
func (p Pattern) IsZero() bool {
	return p.source == ""
}

// Path returns the path portion of the source: everything before the
// first '?'.
func (p Pattern) Path() string {
	path, _ := splitSource(p.source)
	return path
}

// Search returns the search portion of the source without its leading
// '?': everything after the first '?', or "" when the source declares
// no search parameters.
func (p Pattern) Search() string {
	_, search := splitSource(p.source)
	return search
}

// Param describes one path parameter token.
type Param struct {
	Name     string // token name without ':' or the optional marker
	Optional bool   // true for ':name?' tokens
}

// PathParams returns the path parameter tokens in order of appearance.
// Scanning is case-sensitive and does not deduplicate; parameter names
// are expected to be unique within a pattern for URL building to be
// meaningful.
func (p Pattern) PathParams() []Param {
	var params []Param
	for _, seg := range strings.Split(p.Path(), "/") {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		optional := strings.HasSuffix(name, "?")
		if optional {
			name = name[:len(name)-1]
		}
		if name == "" {
			continue
		}
		params = append(params, Param{Name: name, Optional: optional})
	}

	return params
}

// SearchParams returns the declared search-parameter names in order of
// appearance. Empty tokens produced by stray '&' separators are
// skipped.
func (p Pattern) SearchParams() []string {
	search := p.Search()
	if search == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(search, "&") {
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}

// Join composes base and child into a new Pattern: paths via JoinPaths,
// search fragments via JoinSearch. The result is case-insensitive when
// either input is.
func Join(base, child Pattern) Pattern {
	path := JoinPaths(base.Path(), child.Path())
	search := JoinSearch(base.Search(), child.Search())

	return Pattern{
		source:     path + search,
		ignoreCase: base.ignoreCase || child.ignoreCase,
	}
}

// splitSource splits a pattern source at the first '?' that starts the
// search portion. A '?' terminating a ':name' path token (the optional
// marker) is part of the path and skipped. The search part is returned
// without the '?' itself.
func splitSource(source string) (path, search string) {
	for i := 0; i < len(source); i++ {
		if source[i] != '?' || isOptionalMarker(source, i) {
			continue
		}

		return source[:i], source[i+1:]
	}

	return source, ""
}

// isOptionalMarker reports whether the '?' at index i closes a ':name'
// path token rather than starting the search portion. That is the case
// when the current segment is a parameter token and the '?' is followed
// by '/' or the end of the source.
func isOptionalMarker(source string, i int) bool {
	if i+1 < len(source) && source[i+1] != '/' {
		return false
	}

	seg := source[:i]
	if j := strings.LastIndexByte(seg, '/'); j >= 0 {
		seg = seg[j+1:]
	}

	return len(seg) > 1 && seg[0] == ':'
}
