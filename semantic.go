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

// SemanticKind tags the line-level constructs produced by [RunSemantic]
// (spec.md §3.3).
type SemanticKind uint8

const (
	SemIndent SemanticKind = 1 + iota
	SemDedent
	SemBlankLine
	SemTxxtMarker

	SemLabel
	SemParameters
	SemSequenceMarker
	SemTextSpan
	SemPlainTextLine
	SemSequenceTextLine
	SemIgnoreLine
	SemAnnotation
	SemDefinition
	SemVerbatimBlock
)

func (k SemanticKind) String() string {
	switch k {
	case SemIndent:
		return "Indent"
	case SemDedent:
		return "Dedent"
	case SemBlankLine:
		return "BlankLine"
	case SemTxxtMarker:
		return "TxxtMarker"
	case SemLabel:
		return "Label"
	case SemParameters:
		return "Parameters"
	case SemSequenceMarker:
		return "SequenceMarker"
	case SemTextSpan:
		return "TextSpan"
	case SemPlainTextLine:
		return "PlainTextLine"
	case SemSequenceTextLine:
		return "SequenceTextLine"
	case SemIgnoreLine:
		return "IgnoreLine"
	case SemAnnotation:
		return "Annotation"
	case SemDefinition:
		return "Definition"
	case SemVerbatimBlock:
		return "VerbatimBlock"
	default:
		return fmt.Sprintf("SemanticKind(%d)", uint8(k))
	}
}

// Parameters is a validated key→value parameter list (spec.md §4.4).
// Insertion order is kept alongside the map so first-wins duplicate
// handling and stable re-serialization both stay possible.
type Parameters struct {
	Keys   []string
	Values map[string]string
}

func (p Parameters) Get(key string) (string, bool) {
	if p.Values == nil {
		return "", false
	}
	v, ok := p.Values[key]
	return v, ok
}

// SemanticToken is one promoted line-level construct. As with [Token],
// one struct serves every kind; unused fields are simply zero.
type SemanticToken struct {
	Kind SemanticKind
	Span Span

	Text       string // TextSpan/PlainTextLine/SequenceTextLine/IgnoreLine content, Label text, Definition term
	Marker     sequenceMarker
	Params     Parameters
	HasParams  bool
	Annotation string // Annotation label
	Content    string // Annotation trailing inline content, if any
	HasContent bool

	// VerbatimBlock fields.
	Title string
	Wall  WallType
	Label string

	// raw tokens a VerbatimBlock was built from (spec.md §3.1, "every
	// token... carries either a span or a sequence of the raw tokens it
	// was built from"). Other kinds leave Raw nil and carry only a Span;
	// the inline parser reads the rendered Text, not these tokens.
	Raw []Token
}
