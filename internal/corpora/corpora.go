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

// Package corpora runs table-driven tests where the table lives in the file
// system: each test case is an expression file with a golden output file
// alongside it.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases. Every file under Root
// matching Pattern holds one input; the expected output lives next to it in
// a file with OutputExtension appended to the input's name (so for input
// "demo.expr" and extension "golden", the runner reads "demo.expr.golden").
// A missing golden file is treated as expecting empty output.
type Corpus struct {
	// Root of the corpus directory, relative to the test's working
	// directory.
	Root string
	// Pattern is a doublestar glob matching input files under Root, e.g.
	// "**/*.expr".
	Pattern string
	// OutputExtension (without dot) of the golden file for each input.
	OutputExtension string
	// Refresh names an environment variable; when it is set, golden files
	// are rewritten with the current output instead of compared, and the
	// test fails so the refresh cannot pass unnoticed.
	Refresh string
	// Test produces the output for one input file.
	Test func(t *testing.T, path, text string) string
}

// Run executes one subtest per input file in the corpus.
func (c Corpus) Run(t *testing.T) {
	paths, err := doublestar.Glob(os.DirFS(c.Root), c.Pattern)
	if err != nil {
		t.Fatalf("corpora: invalid glob %q: %v", c.Pattern, err)
	}
	if len(paths) == 0 {
		t.Fatalf("corpora: no files match %q under %q", c.Pattern, c.Root)
	}

	refresh := c.Refresh != "" && os.Getenv(c.Refresh) != ""
	if refresh {
		t.Logf("corpora: refreshing golden files because %s is set", c.Refresh)
		t.Fail()
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			input := filepath.Join(c.Root, filepath.FromSlash(path))
			data, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", input, err)
			}

			got := c.Test(t, path, string(data))
			golden := fmt.Sprint(input, ".", c.OutputExtension)

			if refresh {
				if err := os.WriteFile(golden, []byte(got), 0o644); err != nil {
					t.Fatalf("corpora: error while writing golden file %q: %v", golden, err)
				}
				return
			}

			want, err := os.ReadFile(golden)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("corpora: error while loading golden file %q: %v", golden, err)
			}
			if diff := compare(got, string(want)); diff != "" {
				t.Errorf("output mismatch for %q:\n%s", golden, diff)
			}
		})
	}
}

// compare returns an empty string when got and want match byte-for-byte,
// and a unified diff otherwise.
func compare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
