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

package parser

import (
	"fmt"

	"github.com/pathtree/pathtree/reporter"
	"github.com/pathtree/pathtree/tree"
)

// maxExpansionDepth bounds the recursion the tree builder performs: every
// repeat block re-parses the remainder of the expression once per
// alternative, one call frame deeper. The bound caps call-stack growth on
// pathological inputs, whose output size is combinatorial anyway.
const maxExpansionDepth = 64

// Parse expands a path expression into its node tree. It returns the
// flattened node list in creation order, with the synthetic root first;
// consumers traverse the structure via each node's Parent and Children
// links.
//
// The first malformed token aborts the parse. The returned error is a
// reporter.ErrorWithPos carrying the offending token's text and position,
// unless handler's reporter replaced or swallowed it.
func Parse(expression string, handler *reporter.Handler) ([]tree.Node, error) {
	return ParseWithFactory(expression, nil, handler)
}

// ParseWithFactory is Parse with a caller-supplied node factory, letting an
// external object model provide the node representation while reusing the
// grammar logic. The synthetic root is also created through the factory. A
// nil factory means the default tree.PathNode representation; a nil handler
// means fail on the first error and ignore warnings.
func ParseWithFactory(expression string, factory tree.Factory, handler *reporter.Handler) ([]tree.Node, error) {
	if factory == nil {
		factory = tree.DefaultFactory()
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	root := factory.NewNode("", "", "", nil)
	b := &treeBuilder{factory: factory, handler: handler}
	r := newTokenReader(Tokenize(expression), len(expression), 0)
	nodes, err := b.build(r, tree.DefaultType, "", root)
	if err != nil {
		return nil, err
	}
	return append([]tree.Node{root}, nodes...), nil
}

// treeBuilder is the recursive-descent expander. A single builder is
// threaded through all recursive calls of one parse; each call owns its own
// tokenReader, so the per-alternative re-parses of a repeat block cannot
// disturb one another.
type treeBuilder struct {
	factory tree.Factory
	handler *reporter.Handler
	depth   int
}

// build consumes r until the end of its token sequence, or until a repeat
// block hands the remainder off to per-alternative sub-builds. It returns
// every node created at or below this call, in creation order.
//
// nodeType is the type annotation in scope, subpath the path accumulated so
// far, and parent the node new children attach to. Each identifier makes
// the new node current, so a chain of identifiers descends one level per
// identifier.
func (b *treeBuilder) build(r *tokenReader, nodeType, subpath string, parent tree.Node) ([]tree.Node, error) {
	var nodes []tree.Node

	curType := nodeType
	curNode := parent
	curPath := subpath

	r.advance()

	for r.cur.Kind != TokenEOF {
		if r.cur.Kind == TokenUnknown {
			return nil, b.errAt(r.pos(), "unclassified token %q", r.cur.Text)
		}

		if r.cur.Kind == TokenLevelSep {
			switch r.next.Kind {
			case TokenIdentifier, TokenRepeatBegin, TokenTypeBegin:
			default:
				return nil, b.errAt(r.nextPos(),
					`level separator must be followed by an identifier, "[", or "{"; got %s`, describe(r.next))
			}
			r.advance()
		}

		switch r.cur.Kind {
		case TokenIdentifier:
			curPath += tree.PathSeparator + r.cur.Text
			node := b.factory.NewNode(r.cur.Text, curType, curPath, curNode)
			nodes = append(nodes, node)
			curNode = node

		case TokenRepeatBegin:
			if b.depth >= maxExpansionDepth {
				return nil, b.errAt(r.pos(), "expression exceeds the maximum repeat block depth of %d", maxExpansionDepth)
			}
			alts, err := b.alternatives(r, curType, curPath, curNode)
			if err != nil {
				return nil, err
			}
			// Alternatives share the immutable remainder; each gets its own
			// reader over it. Sub-builds report absolute token positions via
			// the base index.
			rest := r.remainder()
			base := r.base + r.idx
			b.depth++
			for _, alt := range alts {
				nodes = append(nodes, alt)
				sub := newTokenReader(rest, r.end, base)
				subNodes, err := b.build(sub, curType, alt.Path(), alt)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, subNodes...)
			}
			b.depth--
			// Every alternative already covered the rest of the expression,
			// so this call must not keep consuming tokens.
			return nodes, nil

		case TokenTypeBegin:
			r.advance()
			if r.cur.Kind != TokenIdentifier {
				return nil, b.errAt(r.pos(), "expected type identifier, got %s", describe(r.cur))
			}
			curType = r.cur.Text
			r.advance()
			if r.cur.Kind != TokenTypeEnd {
				return nil, b.errAt(r.pos(), `expected "}" to close type annotation, got %s`, describe(r.cur))
			}

		default:
			return nil, b.errAt(r.pos(), "unexpected %s", describe(r.cur))
		}

		r.advance()
	}

	return nodes, nil
}

// alternatives parses the body of a repeat block and creates one node per
// alternative, all children of the shared parent. On entry the current
// token is the opening "["; on return it is the first token after the
// closing "]".
func (b *treeBuilder) alternatives(r *tokenReader, nodeType, subpath string, parent tree.Node) ([]tree.Node, error) {
	seen := map[string]bool{}
	var alts []tree.Node
	for r.cur.Kind != TokenRepeatEnd {
		r.advance()
		if r.cur.Kind != TokenIdentifier {
			return nil, b.errAt(r.pos(), "expected identifier in repeat block, got %s", describe(r.cur))
		}
		if seen[r.cur.Text] {
			b.handler.HandleWarning(r.pos(),
				fmt.Errorf("repeat block declares alternative %q more than once; the duplicates share a path", r.cur.Text))
		}
		seen[r.cur.Text] = true
		node := b.factory.NewNode(r.cur.Text, nodeType, subpath+tree.PathSeparator+r.cur.Text, parent)
		alts = append(alts, node)
		r.advance()
		if r.cur.Kind != TokenRepeatOr && r.cur.Kind != TokenRepeatEnd {
			return nil, b.errAt(r.pos(), `expected "|" or "]" in repeat block, got %s`, describe(r.cur))
		}
	}
	r.advance()
	return alts, nil
}

// errAt reports a fatal error at the given position. A lenient reporter may
// swallow the reported error, but the grammar offers no way to resume after
// a bad token, so the parse aborts either way.
func (b *treeBuilder) errAt(pos reporter.SourcePos, format string, args ...interface{}) error {
	if err := b.handler.HandleErrorf(pos, format, args...); err != nil {
		return err
	}
	return reporter.ErrInvalidExpression
}

// describe renders a token for an error message.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", tok.Text)
	case TokenEOF:
		return "end of expression"
	case TokenUnknown:
		return fmt.Sprintf("unclassified token %q", tok.Text)
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}
