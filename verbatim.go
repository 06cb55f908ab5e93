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

// WallType is the indentation boundary of a verbatim block's content
// region (spec.md §4.1). A block is either InFlow, whose content sits
// four columns past the title's own indentation, or Stretched, whose
// content sits at column zero regardless of how deep the title itself
// was nested.
type WallType struct {
	Stretched  bool
	baseIndent int // meaningful only when !Stretched
}

// InFlowWall returns the wall for a verbatim block whose title is
// indented to base columns; its content sits at base+[IndentSize].
func InFlowWall(base int) WallType {
	return WallType{baseIndent: base}
}

// StretchedWall returns the wall for a verbatim block whose content sits
// at column zero.
func StretchedWall() WallType {
	return WallType{Stretched: true}
}

// Column returns the column at which this wall's content begins.
func (w WallType) Column() int {
	if w.Stretched {
		return 0
	}
	return w.baseIndent + IndentSize
}

func (w WallType) String() string {
	if w.Stretched {
		return "stretched"
	}
	return "in-flow"
}

// VerbatimBoundary identifies one verbatim block by line range, produced
// by [RunVerbatimScan] before tokenization can see (and be corrupted by)
// the block's payload.
type VerbatimBoundary struct {
	TitleLine      int // 0-based row of the title line
	TerminatorLine int // 0-based row of the terminator line, or -1 if unterminated
	Title          string
	LabelRaw       string
	Wall           WallType
	TitleIndent    int
	// ContentStart and ContentEnd delimit the content region as a
	// half-open [ContentStart, ContentEnd) row range. Both are -1 for an
	// immediately-terminated (empty) block.
	ContentStart int
	ContentEnd   int
}

// Unterminated reports whether the block never found a matching
// terminator before EOF.
func (b VerbatimBoundary) Unterminated() bool {
	return b.TerminatorLine < 0
}

type verbatimScanState int

const (
	vsScan verbatimScanState = iota
	vsFoundStart
	vsInNormal
	vsInStretched
)

// RunVerbatimScan implements the line-oriented state machine of spec.md
// §4.1. It is pure and side-effect-free: its only output is the ordered
// list of boundaries (plus any [ParseError] for unterminated blocks).
func RunVerbatimScan(text string) ([]VerbatimBoundary, []*ParseError) {
	lines := splitLines(text)
	var boundaries []VerbatimBoundary
	var errs []*ParseError

	state := vsScan
	var titleLine, titleIndent int
	var title string
	var contentStart int

	i := 0
	for i < len(lines) {
		line := lines[i]
		switch state {
		case vsScan:
			if t, indent, ok := matchVerbatimTitle(line); ok {
				titleLine, titleIndent, title = i, indent, t
				state = vsFoundStart
			}
			i++

		case vsFoundStart:
			if isBlankLine(line) {
				i++
				continue
			}
			indent := indentWidth(line)
			if label, ok := matchTerminator(line, titleIndent, indent); ok {
				boundaries = append(boundaries, VerbatimBoundary{
					TitleLine:      titleLine,
					TerminatorLine: i,
					Title:          title,
					LabelRaw:       label,
					Wall:           InFlowWall(titleIndent),
					TitleIndent:    titleIndent,
					ContentStart:   -1,
					ContentEnd:     -1,
				})
				state = vsScan
				i++
				continue
			}
			switch {
			case indent == 0:
				state = vsInStretched
				contentStart = i
				i++
			case indent == titleIndent+IndentSize:
				state = vsInNormal
				contentStart = i
				i++
			default:
				// False alarm: rewind and let Scan re-examine this very line.
				state = vsScan
			}

		case vsInNormal:
			indent := indentWidth(line)
			if label, ok := matchTerminator(line, titleIndent, indent); ok {
				boundaries = append(boundaries, VerbatimBoundary{
					TitleLine:      titleLine,
					TerminatorLine: i,
					Title:          title,
					LabelRaw:       label,
					Wall:           InFlowWall(titleIndent),
					TitleIndent:    titleIndent,
					ContentStart:   contentStart,
					ContentEnd:     i,
				})
				state = vsScan
				i++
				continue
			}
			if !isBlankLine(line) && indent < titleIndent+IndentSize {
				state = vsScan
				continue
			}
			i++

		case vsInStretched:
			indent := indentWidth(line)
			if label, ok := matchTerminator(line, titleIndent, indent); ok {
				boundaries = append(boundaries, VerbatimBoundary{
					TitleLine:      titleLine,
					TerminatorLine: i,
					Title:          title,
					LabelRaw:       label,
					Wall:           StretchedWall(),
					TitleIndent:    titleIndent,
					ContentStart:   contentStart,
					ContentEnd:     i,
				})
				state = vsScan
				i++
				continue
			}
			if !isBlankLine(line) && indent != 0 {
				state = vsScan
				continue
			}
			i++
		}
	}

	if state != vsScan {
		wall := InFlowWall(titleIndent)
		if state == vsInStretched {
			wall = StretchedWall()
		}
		boundaries = append(boundaries, VerbatimBoundary{
			TitleLine:      titleLine,
			TerminatorLine: -1,
			Title:          title,
			Wall:           wall,
			TitleIndent:    titleIndent,
			ContentStart:   contentStart,
			ContentEnd:     len(lines),
		})
		errs = append(errs, &ParseError{
			Kind:    UnterminatedVerbatim,
			Span:    Span{Start: Position{Row: titleLine}, End: Position{Row: len(lines)}},
			Message: "verbatim block starting at line " + strconv.Itoa(titleLine+1) + " was never terminated",
		})
	}

	return boundaries, errs
}

// matchVerbatimTitle reports whether line is shaped like a verbatim
// title: text ending in exactly one ':', never an annotation or
// definition line (spec.md §4.1 "Recognition rules (hard)").
func matchVerbatimTitle(line string) (title string, indent int, ok bool) {
	trimmed := strings.TrimRight(line, " \t\r\n")
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != ':' {
		return "", 0, false
	}
	if strings.HasSuffix(trimmed, "::") {
		return "", 0, false
	}
	withoutColon := strings.TrimSpace(trimmed[:len(trimmed)-1])
	if withoutColon == "" {
		return "", 0, false
	}
	content := strings.TrimLeft(line, " ")
	if strings.HasPrefix(strings.TrimSpace(content), "::") {
		// Annotation-shaped line; never a verbatim start.
		return "", 0, false
	}
	return withoutColon, indentWidth(line), true
}

// matchTerminator reports whether line is a valid verbatim terminator
// "`:: label[:params]`" sitting at exactly titleIndent columns.
func matchTerminator(line string, titleIndent, lineIndent int) (labelRaw string, ok bool) {
	if lineIndent != titleIndent {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "::") {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[2:])
	if rest == "" {
		return "", false
	}
	if !(isIdentifierStart(rest[0])) {
		return "", false
	}
	return rest, true
}

func isIdentifierStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// splitLines splits text on '\n', stripping a trailing '\r' from each
// line so callers don't need to special-case CRLF input. Unlike
// strings.Split, a trailing newline in text does not produce a
// meaningful empty final line for iteration purposes, but it is kept in
// the slice for index stability with [Position.Row].
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// indentWidth returns the column width of line's leading whitespace,
// expanding tabs to the next multiple of [TabWidth].
func indentWidth(line string) int {
	col := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			col++
		case '\t':
			col = (col/TabWidth + 1) * TabWidth
		default:
			return col
		}
	}
	return col
}

