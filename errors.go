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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilRouteMap indicates that Compile was called with a nil map.
	ErrNilRouteMap = errors.New("route map is nil")

	// ErrRouteNotFound indicates that no route is registered under the
	// requested name.
	ErrRouteNotFound = errors.New("route not found")
)

// ParamKind distinguishes path parameters from search parameters in a
// ParameterError.
type ParamKind string

const (
	// ParamPath marks an error about a ':name' path parameter.
	ParamPath ParamKind = "path"

	// ParamSearch marks an error about a declared search parameter.
	ParamSearch ParamKind = "search"
)

// ParameterError is returned by Href when the supplied parameters do
// not match the pattern: a required path parameter is missing, a key is
// not declared by the pattern, or parameters were supplied to a pattern
// that declares none.
//
// Use errors.As to inspect the offending key and the valid set:
//
//	var perr *routemap.ParameterError
//	if errors.As(err, &perr) {
//	    log.Printf("bad %s parameter %q, valid: %v", perr.Kind, perr.Key, perr.Valid)
//	}
type ParameterError struct {
	Kind    ParamKind // path or search
	Key     string    // offending key ("" when params were supplied but none are declared)
	Missing bool      // true when a required key was not supplied
	Valid   []string  // parameter names the pattern declares, in declaration order
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	valid := "the pattern declares none"
	if len(e.Valid) > 0 {
		valid = "valid: " + strings.Join(e.Valid, ", ")
	}

	switch {
	case e.Missing:
		return fmt.Sprintf("missing required %s parameter %q (%s)", e.Kind, e.Key, valid)
	case e.Key == "":
		return fmt.Sprintf("%s parameters supplied but the pattern declares none", e.Kind)
	default:
		return fmt.Sprintf("unknown %s parameter %q (%s)", e.Kind, e.Key, valid)
	}
}
