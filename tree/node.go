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

const (
	// DefaultType is the node type assigned when an expression declares no
	// type annotation.
	DefaultType = "Folder"
	// PathSeparator joins the codes along a node's ancestry to form its path.
	PathSeparator = "/"
)

// Node is the capability contract for nodes produced by the parser. The
// parser depends only on this interface and on Factory, never on a concrete
// node representation.
type Node interface {
	// Code returns the identifier this node was created from. It is empty
	// only for a synthetic root.
	Code() string
	// Type returns the type annotation that was in scope when the node was
	// created.
	Type() string
	// Path returns the full path from the synthetic root to this node. It
	// equals the parent's path plus PathSeparator plus the node's code.
	Path() string
	// Parent returns the node's parent, or nil for a synthetic root.
	Parent() Node
	// SetParent re-points the node's parent reference.
	SetParent(Node)
	// Children returns the node's children in creation order.
	Children() []Node
}

// Factory creates the nodes attached to a tree as the parser expands an
// expression. NewNode must register the new node with parent so that the
// parent's Children reflect it; how that registration happens is up to the
// implementation. The parser also creates the synthetic root through the
// factory, with empty code, type, and path and a nil parent.
type Factory interface {
	NewNode(code, nodeType, path string, parent Node) Node
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(code, nodeType, path string, parent Node) Node

func (f FactoryFunc) NewNode(code, nodeType, path string, parent Node) Node {
	return f(code, nodeType, path, parent)
}

// DefaultFactory returns the factory producing *PathNode values.
func DefaultFactory() Factory {
	return FactoryFunc(func(code, nodeType, path string, parent Node) Node {
		return NewNode(code, nodeType, path, parent)
	})
}

// PathNode is the default Node implementation.
type PathNode struct {
	code     string
	nodeType string
	path     string
	parent   Node
	children []Node
}

var _ Node = (*PathNode)(nil)

// NewNode creates a PathNode and, when parent is a *PathNode too, appends
// the new node to the parent's children. The node's code, type, and path are
// immutable after construction.
func NewNode(code, nodeType, path string, parent Node) *PathNode {
	n := &PathNode{code: code, nodeType: nodeType, path: path, parent: parent}
	if p, ok := parent.(*PathNode); ok {
		p.children = append(p.children, n)
	}
	return n
}

// NewRoot creates a synthetic root node: no parent and an empty code, type,
// and path.
func NewRoot() *PathNode {
	return &PathNode{}
}

func (n *PathNode) Code() string { return n.code }

func (n *PathNode) Type() string { return n.nodeType }

func (n *PathNode) Path() string { return n.path }

func (n *PathNode) Parent() Node { return n.parent }

func (n *PathNode) SetParent(parent Node) { n.parent = parent }

func (n *PathNode) Children() []Node { return n.children }

// IsRoot reports whether n is a synthetic root node.
func IsRoot(n Node) bool {
	return n.Parent() == nil && n.Code() == ""
}
