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
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// Render writes a human-readable diagnostic for err to w. When err is an
// ErrorWithPos, the expression is echoed with a caret marking the offending
// column; the caret's indent is computed from the display width of the text
// before the error, so it stays aligned even if an identifier contains
// characters wider than one cell. Other errors print as a single line.
func Render(w io.Writer, expression string, err error) {
	ewp, ok := err.(ErrorWithPos)
	if !ok {
		fmt.Fprintf(w, "%v\n", err)
		return
	}
	offset := ewp.GetPosition().Offset
	if offset > len(expression) {
		offset = len(expression)
	}
	pad := uniseg.StringWidth(expression[:offset])
	fmt.Fprintf(w, "  %s\n", expression)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", pad))
	fmt.Fprintf(w, "%v\n", err)
}
