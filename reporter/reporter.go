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

// Package reporter contains the error taxonomy for path expression parsing
// and the hooks through which callers observe errors and warnings.
package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. Whatever it
// returns becomes the error surfaced by the parse: the original error, a
// replacement, or nil to swallow it (in which case the parse fails with
// ErrInvalidExpression, since the grammar offers no way to resume after a
// bad token).
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// flag suspicious but well-formed input, such as a repeat block declaring
// the same alternative twice; they never fail the parse. Though they are
// just warnings, the details are supplied via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings found while parsing an
// expression.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions. Either
// may be nil: a nil errs fails the parse with the reported error as-is, and a
// nil warnings ignores all warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler latches the first error reported during a parse and routes all
// reports through a Reporter.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. If rep is nil, a default reporter is
// used: it fails on the first error and ignores warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf wraps the formatted message with the given position and
// reports it, returning the reporter's verdict.
func (h *Handler) HandleErrorf(pos SourcePos, format string, args ...interface{}) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError reports the given error. If the handler has already latched an
// error, that error is returned instead of reporting the new one.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports the given warning.
func (h *Handler) HandleWarning(pos SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(errorWithSourcePos{pos: pos, underlying: err})
}

// Error returns the handler's verdict for the parse. It is nil if nothing
// was reported, ErrInvalidExpression if an error was reported but the
// reporter swallowed it, and the reporter's error otherwise.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidExpression
	}
	return h.err
}
