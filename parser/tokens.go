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
	"slices"

	"github.com/pathtree/pathtree/reporter"
)

// TokenKind classifies a token of a path expression.
type TokenKind int

const (
	// TokenUnknown marks a character that classification cannot map to any
	// other kind. Reaching one during tree building is a fatal lexical
	// error.
	TokenUnknown TokenKind = iota
	// TokenIdentifier is a maximal run of alphanumeric or '_' characters.
	TokenIdentifier
	// TokenLevelSep is the '/' separating path levels.
	TokenLevelSep
	// TokenRepeatBegin is the '[' opening a repeat block.
	TokenRepeatBegin
	// TokenRepeatEnd is the ']' closing a repeat block.
	TokenRepeatEnd
	// TokenRepeatOr is the '|' between repeat block alternatives.
	TokenRepeatOr
	// TokenTypeBegin is the '{' opening a type annotation.
	TokenTypeBegin
	// TokenTypeEnd is the '}' closing a type annotation.
	TokenTypeEnd
	// TokenEOF marks the end of the token sequence.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "identifier"
	case TokenLevelSep:
		return `"/"`
	case TokenRepeatBegin:
		return `"["`
	case TokenRepeatEnd:
		return `"]"`
	case TokenRepeatOr:
		return `"|"`
	case TokenTypeBegin:
		return `"{"`
	case TokenTypeEnd:
		return `"}"`
	case TokenEOF:
		return "end of expression"
	default:
		return "unknown token"
	}
}

// Token is an immutable (kind, text) pair produced by Tokenize. Offset is
// the byte offset of the token's first character in the expression.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

// classify maps raw token text to its kind. Identifiers are recognized by
// their first character, every structural character maps 1:1 to a kind, and
// the empty string maps to TokenEOF. Anything else is TokenUnknown.
func classify(text string) TokenKind {
	if text == "" {
		return TokenEOF
	}
	if isIdentChar(text[0]) {
		return TokenIdentifier
	}
	switch text {
	case "/":
		return TokenLevelSep
	case "[":
		return TokenRepeatBegin
	case "]":
		return TokenRepeatEnd
	case "|":
		return TokenRepeatOr
	case "{":
		return TokenTypeBegin
	case "}":
		return TokenTypeEnd
	}
	return TokenUnknown
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenReader is a stateful cursor over a token sequence with one token of
// lookahead. The position starts before the first token, so the first
// advance lands on token zero. Once the position moves past the end, cur is
// pinned to a TokenEOF sentinel whose offset is the end of the expression.
type tokenReader struct {
	toks []Token
	// end is the byte offset just past the last input character; it becomes
	// the offset of EOF sentinels.
	end int
	// base is the index of this reader's first token within the full
	// expression's token sequence. Readers seeded from a remainder keep
	// reporting absolute token indexes through it.
	base int

	idx  int
	cur  Token
	next Token
}

func newTokenReader(toks []Token, end, base int) *tokenReader {
	r := &tokenReader{toks: toks, end: end, base: base, idx: -1}
	r.cur = r.eofToken()
	r.next = r.eofToken()
	return r
}

func (r *tokenReader) eofToken() Token {
	return Token{Kind: TokenEOF, Offset: r.end}
}

// advance moves the position forward by one token and refreshes both the
// current token and the lookahead.
func (r *tokenReader) advance() {
	r.idx++
	if r.idx < len(r.toks) {
		r.cur = r.toks[r.idx]
	} else {
		r.idx = len(r.toks)
		r.cur = r.eofToken()
	}
	if r.idx+1 < len(r.toks) {
		r.next = r.toks[r.idx+1]
	} else {
		r.next = r.eofToken()
	}
}

// remainder returns a copy of the token subsequence from the current
// position to the end. The copy seeds independent readers for the
// per-alternative re-parses of a repeat block, so those readers can never
// alias this reader's position.
func (r *tokenReader) remainder() []Token {
	if r.idx < 0 {
		return slices.Clone(r.toks)
	}
	if r.idx >= len(r.toks) {
		return nil
	}
	return slices.Clone(r.toks[r.idx:])
}

// pos returns the source position of the current token.
func (r *tokenReader) pos() reporter.SourcePos {
	return tokenPos(r.cur, r.base+r.idx)
}

// nextPos returns the source position of the lookahead token.
func (r *tokenReader) nextPos() reporter.SourcePos {
	return tokenPos(r.next, r.base+r.idx+1)
}

func tokenPos(tok Token, index int) reporter.SourcePos {
	return reporter.SourcePos{Offset: tok.Offset, Col: tok.Offset + 1, TokenIndex: index}
}
