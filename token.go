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

import "fmt"

// ScannerKind tags the flat token union the scanner produces (spec.md
// §3.2). Grounded on the teacher's BlockKind: one small integer enum,
// with a generated-looking String method below rather than a separate
// stringer file, since TXXT has far fewer kinds than CommonMark's block
// set.
type ScannerKind uint8

const (
	KindIndent ScannerKind = 1 + iota
	KindDedent
	KindNewline
	KindBlankLine
	KindWhitespace
	KindEOF

	KindColon
	KindEquals
	KindComma
	KindPeriod
	KindDash
	KindAtSign
	KindLeftBracket
	KindRightBracket
	KindLeftParen
	KindRightParen

	KindBoldDelim
	KindItalicDelim
	KindCodeDelim
	KindMathDelim

	KindTxxtMarker
	KindSequenceMarker

	KindText
	KindIdentifier

	KindRefMarker
	KindCitationRef
	KindPageRef
	KindSessionRef
	KindFootnoteRef

	KindVerbatimBlockStart
	KindVerbatimContentLine
	KindVerbatimBlockEnd
)

var scannerKindNames = map[ScannerKind]string{
	KindIndent:              "Indent",
	KindDedent:               "Dedent",
	KindNewline:              "Newline",
	KindBlankLine:            "BlankLine",
	KindWhitespace:           "Whitespace",
	KindEOF:                  "Eof",
	KindColon:                "Colon",
	KindEquals:               "Equals",
	KindComma:                "Comma",
	KindPeriod:               "Period",
	KindDash:                 "Dash",
	KindAtSign:               "AtSign",
	KindLeftBracket:          "LeftBracket",
	KindRightBracket:         "RightBracket",
	KindLeftParen:            "LeftParen",
	KindRightParen:           "RightParen",
	KindBoldDelim:            "BoldDelim",
	KindItalicDelim:          "ItalicDelim",
	KindCodeDelim:            "CodeDelim",
	KindMathDelim:            "MathDelim",
	KindTxxtMarker:           "TxxtMarker",
	KindSequenceMarker:       "SequenceMarker",
	KindText:                 "Text",
	KindIdentifier:           "Identifier",
	KindRefMarker:            "RefMarker",
	KindCitationRef:          "CitationRef",
	KindPageRef:              "PageRef",
	KindSessionRef:           "SessionRef",
	KindFootnoteRef:          "FootnoteRef",
	KindVerbatimBlockStart:   "VerbatimBlockStart",
	KindVerbatimContentLine:  "VerbatimContentLine",
	KindVerbatimBlockEnd:     "VerbatimBlockEnd",
}

func (k ScannerKind) String() string {
	if name, ok := scannerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ScannerKind(%d)", uint8(k))
}

// FootnoteRefForm distinguishes the naked ("[1]") from the labeled
// ("[^note]") footnote reference shape.
type FootnoteRefForm uint8

const (
	FootnoteNaked FootnoteRefForm = 1 + iota
	FootnoteLabeled
)

// Token is a single scanner token (spec.md §3.2). Field meaning varies
// by Kind, following the teacher's Block struct convention of one
// struct shared by every kind rather than a per-kind type hierarchy.
type Token struct {
	Kind ScannerKind
	Span Span

	// Content carries the body for Text, Identifier, Whitespace,
	// BlankLine, RefMarker, VerbatimContentLine (line text) and
	// VerbatimBlockEnd (labelRaw).
	Content string

	// Marker carries the resolved sequence marker for SequenceMarker
	// tokens.
	Marker sequenceMarker

	// Wall carries the wall type for VerbatimBlockStart tokens, and the
	// indentation for VerbatimContentLine tokens (via Indentation).
	Wall        WallType
	Indentation int

	// FootnoteForm carries the naked/labeled distinction for
	// FootnoteRef tokens.
	FootnoteForm FootnoteRefForm
}
