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

// Package tree defines the node model produced by expanding a path
// expression.
//
// Every node implements the Node interface. The parser creates nodes only
// through a Factory, so callers may substitute their own node representation
// (for example, one integrated with an external object model) while reusing
// the grammar logic; PathNode is the default representation.
//
// Each tree is rooted at a synthetic root node with an empty code, type, and
// path. Every other node carries the identifier it was created from (its
// code), the type annotation that was in scope, and the full path from the
// root, with segments joined by PathSeparator. A node's parent is set at
// construction and a parent's children keep creation order.
//
// Beyond the model itself the package offers traversal (Walk), an indented
// listing (Dump), glob selection over paths (Match), and an ordered path
// lookup table (Index).
package tree
