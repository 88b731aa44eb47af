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

// Tokenize scans an expression into its ordered token sequence. Scanning is
// purely lexical and never fails: a maximal run of identifier characters
// becomes one identifier token, and any other character becomes a
// single-character token. Every input character lands in exactly one token;
// characters outside the grammar classify as TokenUnknown and are rejected
// later, when the tree builder reaches them.
func Tokenize(expression string) []Token {
	var toks []Token
	for idx := 0; idx < len(expression); {
		start := idx
		if isIdentChar(expression[idx]) {
			for idx < len(expression) && isIdentChar(expression[idx]) {
				idx++
			}
		} else {
			idx++
		}
		text := expression[start:idx]
		toks = append(toks, Token{Kind: classify(text), Text: text, Offset: start})
	}
	return toks
}
