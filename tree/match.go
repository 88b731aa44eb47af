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
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Match returns the nodes in the subtree rooted at n whose path matches the
// given glob pattern, in pre-order. Patterns match whole paths and support
// doublestar globs, so "/*/rpringle" selects the rpringle node under every
// first-level branch and "/**/contacts" selects every contacts node at any
// depth. A synthetic root has an empty path and never matches.
func Match(n Node, pattern string) ([]Node, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}
	var matched []Node
	err := Walk(n, func(node Node, _ int) error {
		if IsRoot(node) {
			return nil
		}
		ok, err := doublestar.Match(pattern, node.Path())
		if err != nil {
			return err
		}
		if ok {
			matched = append(matched, node)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
