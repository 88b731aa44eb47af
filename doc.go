// Copyright 2024-2026 Pathtree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pathtree expands compact, path-like expressions that describe a
// hierarchy of typed, possibly-branching path segments into a concrete tree
// of nodes, one path per combination of chosen branch alternatives.
//
// An expression reads like a path. Each level is introduced by "/", a braced
// identifier like "{folder}" annotates the type of the nodes that follow, and
// a bracketed repeat block like "[local|cloud]" declares alternatives that
// each independently re-expand the remainder of the expression. For example:
//
//	/{folder}[local|cloud]/{user}rpringle/{stage}[home|work]/{file}contacts
//
// expands into two folder-typed children of the root (local and cloud), each
// holding a user-typed rpringle, each of those holding two stage-typed
// children (home and work), and each stage holding a file-typed contacts
// leaf: four concrete contact paths in total.
//
// The subpackages divide the work. Package parser tokenizes and expands
// expressions, package tree models the resulting nodes (including traversal,
// glob matching, and a path index), and package reporter carries the
// position-aware errors both of them produce. This package ties the pieces
// together behind the Expander front door.
package pathtree
