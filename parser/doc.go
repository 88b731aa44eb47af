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

// Package parser contains the logic for expanding a path expression into a
// concrete tree of nodes.
//
// The grammar is roughly:
//
//	identifier   := sequence of alphanumeric or '_' characters
//	type         := '{' identifier '}'
//	repeat block := '[' identifier ('|' identifier)* ']'
//	expression   := ('/'? (type? identifier | type? repeat block))+
//
// A type annotation labels every node created after it until the next
// annotation overrides it. A repeat block declares alternatives at one
// level; each alternative independently re-expands the remainder of the
// expression, so the expansion yields one concrete path per combination of
// chosen alternatives across all repeat blocks in a chain.
//
// Parsing is a single-threaded, purely synchronous recursive computation.
// The first malformed token aborts the whole parse; there is no error
// recovery and no partial result.
package parser
