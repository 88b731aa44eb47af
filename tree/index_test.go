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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []Node {
	root := sampleTree()
	var nodes []Node
	_ = Walk(root, func(n Node, _ int) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes
}

func TestIndexGet(t *testing.T) {
	ix := NewIndex(sampleNodes())

	// The synthetic root is not indexed.
	assert.Equal(t, 5, ix.Len())

	n, ok := ix.Get("/local/docs/readme")
	require.True(t, ok)
	assert.Equal(t, "readme", n.Code())

	_, ok = ix.Get("/nope")
	assert.False(t, ok)
	_, ok = ix.Get("")
	assert.False(t, ok)
}

func TestIndexRange(t *testing.T) {
	ix := NewIndex(sampleNodes())

	var got []string
	ix.Range("/local", func(path string, _ Node) bool {
		got = append(got, path)
		return true
	})
	assert.Equal(t, []string{"/local", "/local/docs", "/local/docs/readme"}, got)

	// Ranging over everything yields lexicographic path order.
	got = nil
	ix.Range("/", func(path string, _ Node) bool {
		got = append(got, path)
		return true
	})
	assert.Equal(t, []string{
		"/cloud", "/cloud/docs", "/local", "/local/docs", "/local/docs/readme",
	}, got)

	// An early false stops the scan.
	got = nil
	ix.Range("/", func(path string, _ Node) bool {
		got = append(got, path)
		return len(got) < 2
	})
	assert.Len(t, got, 2)
}

func TestIndexDuplicatePathLastWins(t *testing.T) {
	root := NewRoot()
	first := NewNode("x", "t", "/x", root)
	second := NewNode("x", "t", "/x", root)

	ix := NewIndex([]Node{root, first, second})
	assert.Equal(t, 1, ix.Len())
	n, ok := ix.Get("/x")
	require.True(t, ok)
	assert.Same(t, second, n)
}
