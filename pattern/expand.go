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

// ExpandOptional expands a path containing ':name?' tokens into the
// concrete variants a framework without optional-parameter support
// needs to register: one with the token required, one with the segment
// dropped, for every combination. Variants are ordered most-specific
// first. A path without optional tokens expands to itself.
//
// Dropping a leading segment can produce the empty path; callers
// register it as their framework's notion of the base path.
func ExpandOptional(path string) []string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") || !strings.HasSuffix(seg, "?") {
			continue
		}

		with := make([]string, len(segs))
		copy(with, segs)
		with[i] = strings.TrimSuffix(seg, "?")

		without := make([]string, 0, len(segs)-1)
		without = append(without, segs[:i]...)
		without = append(without, segs[i+1:]...)

		out := ExpandOptional(strings.Join(with, "/"))

		return append(out, ExpandOptional(strings.Join(without, "/"))...)
	}

	return []string{path}
}
