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

// Visitor is called once per node during a Walk. The depth is relative to
// the node the walk started from, which is at depth zero. Returning a
// non-nil error stops the walk and propagates the error to the caller.
type Visitor func(n Node, depth int) error

// Walk performs a pre-order traversal of the subtree rooted at n: parents
// before children, children in creation order.
func Walk(n Node, visit Visitor) error {
	return walk(n, 0, visit)
}

func walk(n Node, depth int, visit Visitor) error {
	if err := visit(n, depth); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := walk(child, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}
