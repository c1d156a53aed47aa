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

// Package pattern implements the route pattern value type and its
// composition algebra.
//
// A pattern source combines a URL path template and an optional list of
// recognized search-parameter names, separated by the first '?':
//
//	/concerts/:city?q&date
//
// The path portion may contain ':name' tokens for required parameters
// and ':name?' tokens for optional ones. The search portion is an
// '&'-separated list of declared search-parameter names.
//
// # Composition
//
// Two operations compose patterns:
//
//   - JoinPaths joins two path fragments with exactly one '/' separator,
//     collapsing doubled slashes and never dropping a required one.
//   - JoinSearch joins two search fragments with '&' under a single
//     leading '?', skipping absent sides.
//
// Join applies both to whole patterns. Every caller in the module goes
// through these two functions, so composed sources are identical no
// matter where composition happens (prefix application, mounting,
// resource expansion, or URL building).
package pattern
