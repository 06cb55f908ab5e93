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

import (
	"strconv"
	"strings"
)

// ScanResult bundles a scanner run's token stream with its warnings, so
// that [RunScanner] need not return two slices a caller might misalign.
type ScanResult struct {
	Tokens   []Token
	Warnings []Warning
}

// RunScanner implements spec.md §4.2: a single left-to-right pass over
// text that consults boundaries (from [RunVerbatimScan]) to treat
// verbatim regions as opaque, and otherwise tokenizes every line through
// the indentation tracker and the per-line lexer.
//
// Grounded on the teacher's lineParser cursor (blocks.go, discarded
// after extraction of the pattern): a stateful walk over one line at a
// time, backed by a small save/restore cursor for speculative multi-
// character matches.
func RunScanner(text string, boundaries []VerbatimBoundary) ScanResult {
	lines := splitLines(text)
	byTitleLine := make(map[int]VerbatimBoundary, len(boundaries))
	inVerbatim := make(map[int]*VerbatimBoundary, len(boundaries))
	for i := range boundaries {
		b := boundaries[i]
		if b.Unterminated() {
			// RunVerbatimScan has already reported the missing terminator;
			// the block's lines are scanned as ordinary TXXT text.
			continue
		}
		byTitleLine[b.TitleLine] = b
		end := b.TerminatorLine
		for row := b.TitleLine; row <= end; row++ {
			inVerbatim[row] = &boundaries[i]
		}
	}

	var result ScanResult
	tracker := newIndentTracker()

	for row, line := range lines {
		if b, ok := inVerbatim[row]; ok {
			result.appendVerbatimLine(row, line, *b)
			continue
		}

		indent := indentWidth(line)
		if !isBlankLine(line) {
			events, warn := tracker.step(indent)
			for _, ev := range events {
				kind := KindIndent
				if ev.kind == indentPop {
					kind = KindDedent
				}
				result.Tokens = append(result.Tokens, Token{
					Kind: kind,
					Span: Span{Start: Position{Row: row}, End: Position{Row: row, Column: ev.column}},
				})
			}
			if warn != nil {
				warn.Span = Span{Start: Position{Row: row}, End: Position{Row: row, Column: indent}}
				warn.Message = "indentation is not a multiple of " + strconv.Itoa(IndentSize)
				result.Warnings = append(result.Warnings, *warn)
			}
		}

		result.scanLine(row, line)
	}

	for _, ev := range tracker.finalize() {
		result.Tokens = append(result.Tokens, Token{
			Kind: KindDedent,
			Span: Span{Start: Position{Row: len(lines)}, End: Position{Row: len(lines), Column: ev.column}},
		})
	}

	result.Tokens = append(result.Tokens, Token{Kind: KindEOF, Span: Span{Start: Position{Row: len(lines)}, End: Position{Row: len(lines)}}})
	return result
}

func (r *ScanResult) appendVerbatimLine(row int, line string, b VerbatimBoundary) {
	span := Span{Start: Position{Row: row}, End: Position{Row: row + 1}}
	switch {
	case row == b.TitleLine:
		r.Tokens = append(r.Tokens, Token{Kind: KindVerbatimBlockStart, Span: span, Content: b.Title, Wall: b.Wall})
	case row == b.TerminatorLine:
		r.Tokens = append(r.Tokens, Token{Kind: KindVerbatimBlockEnd, Span: span, Content: b.LabelRaw})
	default:
		r.Tokens = append(r.Tokens, Token{Kind: KindVerbatimContentLine, Span: span, Content: line, Indentation: indentWidth(line)})
	}
}

// scanLine tokenizes the content of one non-verbatim line, following
// spec.md §4.2 step 3's fixed match order. It assumes the line's
// indentation has already been consumed by the indent tracker and
// begins scanning from the first non-whitespace column (or column 0 for
// a blank line).
func (r *ScanResult) scanLine(row int, line string) {
	if isBlankLine(line) {
		r.Tokens = append(r.Tokens, Token{
			Kind:    KindBlankLine,
			Span:    Span{Start: Position{Row: row}, End: Position{Row: row, Column: len(line)}},
			Content: line,
		})
		return
	}

	col := indentWidth(line)
	rest := line[byteOffsetForColumn(line, col):]

	if marker := parseSequenceMarker(rest); marker.end >= 0 {
		r.Tokens = append(r.Tokens, Token{
			Kind:   KindSequenceMarker,
			Span:   Span{Start: Position{Row: row, Column: col}, End: Position{Row: row, Column: col + marker.end}},
			Marker: marker,
		})
		col += marker.end
		rest = rest[marker.end:]
		// A sequence marker is always followed by exactly one space,
		// consumed here as ordinary whitespace below.
	}

	i := 0
	for i < len(rest) {
		start := i
		startCol := col
		c := rest[i]

		switch {
		case c == ' ' || c == '\t':
			for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
				i++
				col++
			}
			r.Tokens = append(r.Tokens, Token{Kind: KindWhitespace, Span: lineSpan(row, startCol, col), Content: rest[start:i]})

		case strings.HasPrefix(rest[i:], "::"):
			if strings.HasPrefix(rest[i:], ":::") {
				// Three or more colons are not markers; the whole run is
				// lexed as individual Colon tokens.
				for i < len(rest) && rest[i] == ':' {
					r.Tokens = append(r.Tokens, Token{Kind: KindColon, Span: lineSpan(row, col, col+1)})
					i++
					col++
				}
				continue
			}
			i += 2
			col += 2
			r.Tokens = append(r.Tokens, Token{Kind: KindTxxtMarker, Span: lineSpan(row, startCol, col)})

		case c == '[':
			consumed, tok, ok := scanReference(rest[i:], row, col)
			if ok {
				r.Tokens = append(r.Tokens, tok)
				i += consumed
				col += consumed
			} else {
				i++
				col++
				r.Tokens = append(r.Tokens, Token{Kind: KindLeftBracket, Span: lineSpan(row, startCol, col)})
			}

		case c == ']':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindRightBracket, Span: lineSpan(row, startCol, col)})

		case c == '(':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindLeftParen, Span: lineSpan(row, startCol, col)})

		case c == ')':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindRightParen, Span: lineSpan(row, startCol, col)})

		case c == ':':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindColon, Span: lineSpan(row, startCol, col)})

		case c == '=':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindEquals, Span: lineSpan(row, startCol, col)})

		case c == ',':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindComma, Span: lineSpan(row, startCol, col)})

		case c == '.':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindPeriod, Span: lineSpan(row, startCol, col)})

		case c == '-':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindDash, Span: lineSpan(row, startCol, col)})

		case c == '@':
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindAtSign, Span: lineSpan(row, startCol, col)})

		case c == '_':
			if n, ok := dunderRun(rest, i); ok {
				i = n
				col += n - start
				r.Tokens = append(r.Tokens, Token{Kind: KindIdentifier, Span: lineSpan(row, startCol, col), Content: rest[start:i]})
				continue
			}
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindItalicDelim, Span: lineSpan(row, startCol, col)})

		case c == '*' || c == '`' || c == '#':
			i++
			col++
			kind := map[byte]ScannerKind{'*': KindBoldDelim, '`': KindCodeDelim, '#': KindMathDelim}[c]
			r.Tokens = append(r.Tokens, Token{Kind: kind, Span: lineSpan(row, startCol, col)})

		case isWordByte(c):
			n, _ := identifierRun(rest, i)
			i = n
			col += n - start
			r.Tokens = append(r.Tokens, Token{Kind: KindIdentifier, Span: lineSpan(row, startCol, col), Content: rest[start:i]})

		default:
			i++
			col++
			r.Tokens = append(r.Tokens, Token{Kind: KindText, Span: lineSpan(row, startCol, col), Content: rest[start:i]})
		}
	}

	r.Tokens = append(r.Tokens, Token{Kind: KindNewline, Span: lineSpan(row, col, col+1)})
}

func lineSpan(row, startCol, endCol int) Span {
	return Span{Start: Position{Row: row, Column: startCol}, End: Position{Row: row, Column: endCol}}
}

// identifierRun extends a word-like run of letters/digits starting at i
// until a non-word byte *or* an underscore. It stops at an underscore
// rather than absorbing it, leaving that byte for the '_' branch of
// scanLine to classify as a lone italic delimiter or the start of a
// dunder run (dunderRun) — otherwise "_test_" would lex as one
// Identifier("test_") instead of ItalicDelim, Identifier("test"),
// ItalicDelim.
func identifierRun(s string, i int) (int, bool) {
	start := i
	for i < len(s) && isWordByte(s[i]) && s[i] != '_' {
		i++
	}
	return i, i > start
}

// dunderRun recognizes a Python-style dunder identifier such as
// "__init__": two or more underscores, word bytes, two or more
// underscores. A single leading/trailing underscore (as in "_test_")
// does not qualify, leaving it to be lexed as a paired ItalicDelim.
func dunderRun(s string, i int) (int, bool) {
	start := i
	j := i
	for j < len(s) && s[j] == '_' {
		j++
	}
	if j-start < 2 {
		return 0, false
	}
	wordStart := j
	for j < len(s) && isWordByte(s[j]) && s[j] != '_' {
		j++
	}
	if j == wordStart {
		return 0, false
	}
	trailStart := j
	for j < len(s) && s[j] == '_' {
		j++
	}
	if j-trailStart < 2 {
		return 0, false
	}
	return j, true
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// byteOffsetForColumn maps a tab-normalized column back to a byte
// offset in the original line, needed because leading whitespace may
// mix tabs and spaces.
func byteOffsetForColumn(line string, col int) int {
	c := 0
	for i := 0; i < len(line); i++ {
		if c >= col {
			return i
		}
		switch line[i] {
		case ' ':
			c++
		case '\t':
			c = (c/TabWidth + 1) * TabWidth
		default:
			return i
		}
	}
	return len(line)
}

// scanReference attempts to lex a reference-shaped bracket group
// "[...]" starting at s[0] == '['. It returns the number of bytes
// consumed (up to and including the matching ']') and a classified
// token. ok is false if there is no matching ']' on this line, in which
// case the caller falls back to a lone LeftBracket token.
func scanReference(s string, row, col int) (int, Token, bool) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return 0, Token{}, false
	}
	inner := s[1:end]
	span := lineSpan(row, col, col+end+1)

	switch {
	case strings.HasPrefix(inner, "@"):
		return end + 1, Token{Kind: KindCitationRef, Span: span, Content: inner}, true
	case strings.HasPrefix(inner, "#"):
		return end + 1, Token{Kind: KindSessionRef, Span: span, Content: inner}, true
	case strings.HasPrefix(inner, "p.") || strings.HasPrefix(inner, "p. "):
		return end + 1, Token{Kind: KindPageRef, Span: span, Content: inner}, true
	case strings.HasPrefix(inner, "^"):
		return end + 1, Token{Kind: KindFootnoteRef, Span: span, Content: inner, FootnoteForm: FootnoteLabeled}, true
	case inner == "":
		return end + 1, Token{Kind: KindFootnoteRef, Span: span, Content: inner, FootnoteForm: FootnoteLabeled}, true
	case isAllDigits(inner):
		return end + 1, Token{Kind: KindFootnoteRef, Span: span, Content: inner, FootnoteForm: FootnoteNaked}, true
	default:
		return end + 1, Token{Kind: KindRefMarker, Span: span, Content: inner}, true
	}
}
