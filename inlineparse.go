// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package txxt

import "strings"

const escapableChars = "*_`#-\\[]"

// ParseInlineText implements spec.md §4.6 over a block's rendered text
// content. Every produced [Inline] carries span as its position — the
// promoter's line-oriented semantic tokens do not preserve per-rune
// columns once rendered back to a string, so inline nodes are not
// positioned more finely than the line they came from. This still
// satisfies invariant 8 (a child's span is a subspan of its parent's).
func ParseInlineText(text string, span Span) []*Inline {
	return parseInlineRun(text, span, 0)
}

// parseInlineRun scans s for the precedence chain CodeSpan > MathSpan >
// Reference/Link > Bold > Italic > Text. disallow suppresses re-entering
// the emphasis kind whose content is currently being parsed (Bold may
// not nest Bold, Italic may not nest Italic).
func parseInlineRun(s string, span Span, disallow InlineKind) []*Inline {
	var out []*Inline
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, &Inline{Kind: InlineText, Span: span, Text: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]

		if c == '\\' && i+1 < len(s) && strings.IndexByte(escapableChars, s[i+1]) >= 0 {
			buf.WriteByte(s[i+1])
			i += 2
			continue
		}

		switch {
		case c == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				flush()
				out = append(out, &Inline{Kind: InlineCode, Span: span, Text: s[i+1 : i+1+end]})
				i += end + 2
				continue
			}

		case c == '#':
			if end := strings.IndexByte(s[i+1:], '#'); end >= 0 {
				flush()
				out = append(out, &Inline{Kind: InlineMath, Span: span, Text: s[i+1 : i+1+end]})
				i += end + 2
				continue
			}

		case c == '[':
			if closeIdx := strings.IndexByte(s[i:], ']'); closeIdx >= 0 {
				inner := s[i+1 : i+closeIdx]
				after := i + closeIdx + 1
				if after < len(s) && s[after] == '(' {
					if urlEnd := strings.IndexByte(s[after:], ')'); urlEnd >= 0 {
						flush()
						url := s[after+1 : after+urlEnd]
						out = append(out, &Inline{
							Kind:       InlineLink,
							Span:       span,
							Children:   parseInlineRun(inner, span, disallow),
							LinkTarget: url,
						})
						i = after + urlEnd + 1
						continue
					}
				}
				flush()
				out = append(out, classifyReference(inner, span))
				i += closeIdx + 1
				continue
			}

		case c == '*' && disallow != InlineBold:
			if end := matchDelimiter(s, i+1, '*'); end >= 0 {
				flush()
				out = append(out, &Inline{
					Kind:     InlineBold,
					Span:     span,
					Children: parseInlineRun(s[i+1:end], span, InlineBold),
				})
				i = end + 1
				continue
			}

		case c == '_' && disallow != InlineItalic:
			if isIsolatedUnderscore(s, i) {
				if end := matchIsolatedUnderscore(s, i+1); end >= 0 {
					flush()
					out = append(out, &Inline{
						Kind:     InlineItalic,
						Span:     span,
						Children: parseInlineRun(s[i+1:end], span, InlineItalic),
					})
					i = end + 1
					continue
				}
			}
		}

		buf.WriteByte(c)
		i++
	}
	flush()
	return out
}

// matchDelimiter finds the next occurrence of delim in s starting at
// from, returning -1 if none exists before the end of the string.
func matchDelimiter(s string, from int, delim byte) int {
	idx := strings.IndexByte(s[from:], delim)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// isIsolatedUnderscore reports whether the '_' at s[i] is not part of a
// run of 2+ underscores (which reads as a dunder-style identifier, not
// an italic delimiter; see the scanner's dunderRun).
func isIsolatedUnderscore(s string, i int) bool {
	if i > 0 && s[i-1] == '_' {
		return false
	}
	return i+1 >= len(s) || s[i+1] != '_'
}

// matchIsolatedUnderscore finds the next isolated '_' at or after from,
// skipping over any underscore runs of length ≥ 2.
func matchIsolatedUnderscore(s string, from int) int {
	i := from
	for i < len(s) {
		if s[i] != '_' {
			i++
			continue
		}
		if isIsolatedUnderscore(s, i) {
			return i
		}
		for i < len(s) && s[i] == '_' {
			i++
		}
	}
	return -1
}
