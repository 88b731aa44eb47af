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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds, by hand, the tree for two branches that both hold a
// shared document chain:
//
//	/local, /local/docs, /local/docs/readme
//	/cloud, /cloud/docs
func sampleTree() *PathNode {
	root := NewRoot()
	local := NewNode("local", "folder", "/local", root)
	docs := NewNode("docs", "folder", "/local/docs", local)
	NewNode("readme", "file", "/local/docs/readme", docs)
	cloud := NewNode("cloud", "folder", "/cloud", root)
	NewNode("docs", "folder", "/cloud/docs", cloud)
	return root
}

func TestNewRoot(t *testing.T) {
	root := NewRoot()
	assert.True(t, IsRoot(root))
	assert.Empty(t, root.Code())
	assert.Empty(t, root.Type())
	assert.Empty(t, root.Path())
	assert.Nil(t, root.Parent())
	assert.Empty(t, root.Children())
}

func TestNewNodeLinksParent(t *testing.T) {
	root := NewRoot()
	a := NewNode("a", "t", "/a", root)
	b := NewNode("b", "t", "/a/b", a)

	assert.Same(t, root, a.Parent())
	assert.Same(t, a, b.Parent())
	require.Len(t, root.Children(), 1)
	assert.Same(t, a, root.Children()[0])
	require.Len(t, a.Children(), 1)
	assert.Same(t, b, a.Children()[0])
	assert.False(t, IsRoot(a))
}

func TestChildrenKeepCreationOrder(t *testing.T) {
	root := NewRoot()
	for _, code := range []string{"one", "two", "three"} {
		NewNode(code, "t", "/"+code, root)
	}
	require.Len(t, root.Children(), 3)
	for i, code := range []string{"one", "two", "three"} {
		assert.Equal(t, code, root.Children()[i].Code())
	}
}

func TestSetParent(t *testing.T) {
	a := NewNode("a", "t", "/a", nil)
	b := NewNode("b", "t", "/b", nil)
	b.SetParent(a)
	assert.Same(t, a, b.Parent())
}

func TestDefaultFactory(t *testing.T) {
	root := NewRoot()
	n := DefaultFactory().NewNode("x", "t", "/x", root)
	require.IsType(t, (*PathNode)(nil), n)
	require.Len(t, root.Children(), 1)
	assert.Same(t, n, root.Children()[0])
}

func TestWalkOrder(t *testing.T) {
	root := sampleTree()

	type visit struct {
		code  string
		depth int
	}
	var visits []visit
	err := Walk(root, func(n Node, depth int) error {
		visits = append(visits, visit{n.Code(), depth})
		return nil
	})
	require.NoError(t, err)

	want := []visit{
		{"", 0},
		{"local", 1},
		{"docs", 2},
		{"readme", 3},
		{"cloud", 1},
		{"docs", 2},
	}
	assert.Equal(t, want, visits)
}

func TestWalkStopsOnError(t *testing.T) {
	root := sampleTree()
	stop := errors.New("stop")
	var seen int
	err := Walk(root, func(n Node, _ int) error {
		seen++
		if n.Code() == "readme" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, seen)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, sampleTree()))

	want := `local (folder) /local
    docs (folder) /local/docs
        readme (file) /local/docs/readme
cloud (folder) /cloud
    docs (folder) /cloud/docs
`
	assert.Equal(t, want, buf.String())
}

func TestDumpSubtree(t *testing.T) {
	root := sampleTree()
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, root.Children()[0]))

	want := `local (folder) /local
    docs (folder) /local/docs
        readme (file) /local/docs/readme
`
	assert.Equal(t, want, buf.String())
}
