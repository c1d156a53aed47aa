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

// Package config defines the boundary between the route-map compiler
// and the routing framework that consumes its output.
//
// The compiler never talks to a framework directly. It calls the four
// factories of the Builder interface and emits whatever they return.
// NodeBuilder is the default implementation, producing Node trees that
// the adapter packages translate into concrete framework registrations
// (gin, echo, chi). Integrations with other frameworks implement
// Builder themselves.
//
// Node order is significant everywhere: frameworks treat config order
// as route-matching priority order, so the compiler guarantees that
// emitted sequences mirror declaration order and builders must
// preserve the order of the children they are handed.
package config
