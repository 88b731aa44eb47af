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

package pathtree

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/pathtree/pathtree/parser"
	"github.com/pathtree/pathtree/reporter"
	"github.com/pathtree/pathtree/tree"
)

// Result holds the outcome of expanding one expression.
type Result struct {
	// Expression is the source expression that was expanded.
	Expression string
	// Root is the synthetic root of the expanded tree.
	Root tree.Node
	// Nodes lists every node of the tree in creation order, root first.
	Nodes []tree.Node

	index *tree.Index
}

// Index returns a path-ordered index over the result's nodes, building it
// on first use. It is not safe for concurrent first use.
func (r *Result) Index() *tree.Index {
	if r.index == nil {
		r.index = tree.NewIndex(r.Nodes)
	}
	return r.index
}

// Expand expands a single path expression with default options.
func Expand(expression string) (*Result, error) {
	var e Expander
	return e.Expand(expression)
}

// Expander expands path expressions into node trees. The zero value is
// ready to use.
type Expander struct {
	// Factory supplies the node representation for expanded trees. If nil,
	// the default tree.PathNode representation is used.
	Factory tree.Factory
	// Reporter receives the errors and warnings found during expansion. If
	// nil, expansion fails on the first error and ignores warnings.
	Reporter reporter.Reporter
	// MaxParallelism limits how many expressions ExpandAll expands
	// concurrently. If unset or non-positive, min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) is used. Each individual expression is always
	// expanded synchronously, on one goroutine.
	MaxParallelism int
}

// Expand expands one expression.
func (e *Expander) Expand(expression string) (*Result, error) {
	handler := reporter.NewHandler(e.Reporter)
	nodes, err := parser.ParseWithFactory(expression, e.Factory, handler)
	if err != nil {
		return nil, err
	}
	return &Result{Expression: expression, Root: nodes[0], Nodes: nodes}, nil
}

// ExpandAll expands several independent expressions, at most MaxParallelism
// at a time, and returns their results in argument order. The first failed
// expansion cancels the not-yet-started rest of the batch and its error is
// returned.
func (e *Expander) ExpandAll(ctx context.Context, expressions ...string) ([]*Result, error) {
	par := e.MaxParallelism
	if par <= 0 {
		par = min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(par))
	results := make([]*Result, len(expressions))
	errs := make([]error, len(expressions))
	var wg sync.WaitGroup
	for i, expr := range expressions {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(i int, expr string) {
			defer wg.Done()
			defer sem.Release(1)
			res, err := e.Expand(expr)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			results[i] = res
		}(i, expr)
	}
	wg.Wait()

	// Prefer a real expansion error over the cancellations it caused.
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
		if !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
