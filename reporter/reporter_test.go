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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWithPos(t *testing.T) {
	pos := SourcePos{Offset: 4, Col: 5, TokenIndex: 2}
	underlying := errors.New("something went wrong")
	err := Error(pos, underlying)

	assert.EqualError(t, err, "token 2 (column 5): something went wrong")
	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, underlying)

	err = Errorf(pos, "got %q", "|")
	assert.EqualError(t, err, `token 2 (column 5): got "|"`)
}

func TestHandlerLatchesFirstError(t *testing.T) {
	var reported []ErrorWithPos
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		reported = append(reported, err)
		return err
	}, nil))

	first := Errorf(SourcePos{Col: 1}, "first")
	second := Errorf(SourcePos{Col: 2}, "second")

	assert.Error(t, h.HandleError(first))
	// The second report returns the latched first error and is not passed
	// to the reporter.
	assert.Equal(t, first, h.HandleError(second))
	require.Len(t, reported, 1)
	assert.Equal(t, first, reported[0])
	assert.Equal(t, first, h.Error())
}

func TestHandlerNilReporterFailsFast(t *testing.T) {
	h := NewHandler(nil)
	assert.Nil(t, h.Error())
	err := h.HandleErrorf(SourcePos{Col: 3, TokenIndex: 1}, "boom")
	assert.EqualError(t, err, "token 1 (column 3): boom")
	assert.Equal(t, err, h.Error())
}

func TestHandlerSwallowedErrorBecomesSentinel(t *testing.T) {
	h := NewHandler(NewReporter(func(ErrorWithPos) error { return nil }, nil))
	assert.Nil(t, h.HandleErrorf(SourcePos{}, "ignored"))
	assert.ErrorIs(t, h.Error(), ErrInvalidExpression)
}

func TestHandlerWarnings(t *testing.T) {
	var warnings []ErrorWithPos
	h := NewHandler(NewReporter(nil, func(err ErrorWithPos) {
		warnings = append(warnings, err)
	}))

	h.HandleWarning(SourcePos{Col: 7, TokenIndex: 3}, errors.New("looks odd"))
	require.Len(t, warnings, 1)
	assert.EqualError(t, warnings[0], "token 3 (column 7): looks odd")
	// Warnings never fail the parse.
	assert.Nil(t, h.Error())
}

func TestRender(t *testing.T) {
	expr := "/a/[x|"
	err := Errorf(SourcePos{Offset: 6, Col: 7, TokenIndex: 6}, "expected identifier in repeat block, got end of expression")

	var buf bytes.Buffer
	Render(&buf, expr, err)
	want := "  /a/[x|\n" +
		"        ^\n" +
		"token 6 (column 7): expected identifier in repeat block, got end of expression\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderPlainError(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "/a", errors.New("no position here"))
	assert.Equal(t, "no position here\n", buf.String())
}
