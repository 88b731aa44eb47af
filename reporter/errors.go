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

package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is a sentinel error returned by parse operations when
// a lexical or syntax error was encountered but the configured ErrorReporter
// returned nil for it. The expression cannot be expanded either way; this
// sentinel stands in for the error the reporter chose to swallow.
var ErrInvalidExpression = errors.New("parse failed: invalid path expression")

// SourcePos identifies a location in a path expression.
//
// Offset is the zero-based byte offset of the offending token's first
// character, Col is the corresponding one-based column, and TokenIndex is
// the token's index in the tokenized expression. A position one past the
// last token refers to the end of the expression.
type SourcePos struct {
	Offset     int
	Col        int
	TokenIndex int
}

func (pos SourcePos) String() string {
	return fmt.Sprintf("token %d (column %d)", pos.TokenIndex, pos.Col)
}

// ErrorWithPos is an error about a path expression that includes information
// about the location in the expression that caused it. Both lexical errors
// (a character that classifies into no token kind) and syntax errors (a
// grammar violation) are reported through this one shape.
//
// The value of Error() contains both the SourcePos and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created with
// fmt.Errorf.
func Errorf(pos SourcePos, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
