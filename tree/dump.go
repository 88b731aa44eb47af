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
	"io"
	"strings"
)

const dumpIndent = "    "

// Dump writes a human-readable listing of the subtree rooted at n to w: one
// line per node with its code, type, and path, indented proportionally to
// depth. A synthetic root has nothing to show, so its own line is omitted
// and its children print at the outermost indent level.
func Dump(w io.Writer, n Node) error {
	if IsRoot(n) {
		for _, child := range n.Children() {
			if err := Dump(w, child); err != nil {
				return err
			}
		}
		return nil
	}
	return Walk(n, func(node Node, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s (%s) %s\n",
			strings.Repeat(dumpIndent, depth), node.Code(), node.Type(), node.Path())
		return err
	})
}
