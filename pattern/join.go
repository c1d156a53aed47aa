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

// JoinPaths joins two path fragments with exactly one '/' separator.
//
// Rules:
//   - An empty side passes the other through unchanged.
//   - base ending in '/' and child starting with '/' collapse to one.
//   - Neither carrying the separator gets exactly one inserted.
//   - Exactly one side carrying it concatenates directly.
//
// The result never contains "//" at the seam and never drops a
// required separator.
func JoinPaths(base, child string) string {
	if base == "" {
		return child
	}
	if child == "" {
		return base
	}

	baseSlash := strings.HasSuffix(base, "/")
	childSlash := strings.HasPrefix(child, "/")
	switch {
	case baseSlash && childSlash:
		return base + child[1:]
	case !baseSlash && !childSlash:
		return base + "/" + child
	default:
		return base + child
	}
}

// JoinSearch joins two search fragments with '&' under a single leading
// '?'. Either side may be given with or without its own leading '?'.
// Absent or empty sides are skipped; when both are absent the result is
// the empty string.
func JoinSearch(base, child string) string {
	base = strings.TrimPrefix(base, "?")
	child = strings.TrimPrefix(child, "?")

	switch {
	case base == "" && child == "":
		return ""
	case base == "":
		return "?" + child
	case child == "":
		return "?" + base
	default:
		return "?" + base + "&" + child
	}
}
