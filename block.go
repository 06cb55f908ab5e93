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

// BlockKind tags the AST's Block family (spec.md §3.4). One struct
// ([Block]) serves every kind, following the teacher's Block type in
// spirit: a small kind enum plus kind-specific fields left zero when
// unused, rather than a type per kind.
type BlockKind uint8

const (
	BlockParagraph BlockKind = 1 + iota
	BlockList
	BlockListItem
	BlockSession
	BlockSessionTitle
	BlockDefinition
	BlockVerbatim
	BlockAnnotation
	BlockBlankLine
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "Paragraph"
	case BlockList:
		return "List"
	case BlockListItem:
		return "ListItem"
	case BlockSession:
		return "Session"
	case BlockSessionTitle:
		return "SessionTitle"
	case BlockDefinition:
		return "Definition"
	case BlockVerbatim:
		return "Verbatim"
	case BlockAnnotation:
		return "Annotation"
	case BlockBlankLine:
		return "BlankLine"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
}

// SessionContainer holds an ordered sequence of blocks that may include
// nested Sessions (spec.md §3.4, invariant 1: the only container that
// may hold a Session).
type SessionContainer struct {
	Blocks []*Block
	// Annotations holds annotations the assembler could not attach to
	// any single sibling block (isolated by blank lines on both sides),
	// per the "nearest enclosing container" proximity rule.
	Annotations []*Block
}

// ContentContainer holds an ordered sequence of blocks that may never
// include a Session: the body of a Definition and a ListItem's nested
// content. Annotations carry inline content only (Block.Inlines); no
// annotation has a block body.
type ContentContainer struct {
	Blocks      []*Block
	Annotations []*Block
}

// IgnoreContainer holds the raw, unparsed lines of a Verbatim block's
// content. The TXXT grammar never applies inside it (invariant 4).
type IgnoreContainer struct {
	Lines []string
}

// Block is one node of the AST's Block family. Fields are grouped by
// the kinds that use them; see [BlockKind] for the discriminant.
type Block struct {
	Kind   BlockKind
	Span   Span
	Params Parameters

	// Annotations attached to this block during assembly (spec.md §4.7,
	// invariant 7). Always nil until the assembler runs.
	Annotations []*Block

	// Paragraph / ListItem / SessionTitle content, and a block-level
	// Annotation's inline trailing content.
	Inlines []*Inline
	// Tokens records the semantic tokens a Paragraph was built from
	// (spec.md §3.4's "tokens" field), useful for diagnostics.
	Tokens []SemanticToken

	// List
	Decoration Numbering
	Items      []*Block // each BlockListItem

	// ListItem
	Marker sequenceMarker
	Nested *ContentContainer

	// Session
	Title       *Block // BlockSessionTitle
	SessionBody *SessionContainer
	Numbering   *Numbering

	// Definition
	Term    []*Inline
	DefBody *ContentContainer

	// Verbatim
	VerbatimTitle []*Inline
	VerbatimBody  *IgnoreContainer
	VerbatimLabel string
	Wall          WallType

	// Annotation
	Label     string
	Namespace string
}
