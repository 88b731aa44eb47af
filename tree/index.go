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

package tree

import (
	"strings"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// orderedMap keeps index entries sorted by key so that prefix scans are a
// single seek plus a linear walk.
//
// A zero value is ready to use.
type orderedMap[K constraints.Ordered, V any] struct {
	tree btree.Map[K, V]
}

func (m *orderedMap[K, V]) set(key K, value V) {
	m.tree.Set(key, value)
}

func (m *orderedMap[K, V]) get(key K) (V, bool) {
	return m.tree.Get(key)
}

func (m *orderedMap[K, V]) len() int {
	return m.tree.Len()
}

func (m *orderedMap[K, V]) ascend(pivot K, iter func(key K, value V) bool) {
	m.tree.Ascend(pivot, iter)
}

// Index is a path-ordered lookup table over the nodes of an expanded tree.
//
// Paths are unique for most expressions, but a repeat block may declare the
// same identifier more than once ("[x|x]"), producing sibling nodes that
// share a path; when that happens the last-created node wins.
type Index struct {
	m orderedMap[string, Node]
}

// NewIndex builds an Index over the given nodes. Synthetic roots, which
// have an empty path, are skipped.
func NewIndex(nodes []Node) *Index {
	ix := &Index{}
	for _, n := range nodes {
		if n.Path() == "" {
			continue
		}
		ix.m.set(n.Path(), n)
	}
	return ix
}

// Get returns the node with the given path.
func (ix *Index) Get(path string) (Node, bool) {
	return ix.m.get(path)
}

// Len returns the number of indexed paths.
func (ix *Index) Len() int {
	return ix.m.len()
}

// Range visits every indexed node whose path begins with prefix, in
// lexicographic path order. It stops early if fn returns false.
func (ix *Index) Range(prefix string, fn func(path string, n Node) bool) {
	ix.m.ascend(prefix, func(path string, n Node) bool {
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		return fn(path, n)
	})
}
