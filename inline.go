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

// InlineKind tags the AST's Inline family (spec.md §3.4).
type InlineKind uint8

const (
	InlineText InlineKind = 1 + iota
	InlineBold
	InlineItalic
	InlineCode
	InlineMath
	InlineLink
	InlineReference
	InlineCustom
)

func (k InlineKind) String() string {
	switch k {
	case InlineText:
		return "Text"
	case InlineBold:
		return "Bold"
	case InlineItalic:
		return "Italic"
	case InlineCode:
		return "Code"
	case InlineMath:
		return "Math"
	case InlineLink:
		return "Link"
	case InlineReference:
		return "Reference"
	case InlineCustom:
		return "Custom"
	default:
		return fmt.Sprintf("InlineKind(%d)", uint8(k))
	}
}

// ReferenceKind is the target variant a [Reference] classifies to
// (spec.md §4.6).
type ReferenceKind uint8

const (
	RefCitation ReferenceKind = 1 + iota
	RefFootnote
	RefSession
	RefPage
	RefFile
	RefUrl
	RefNotSure
)

func (k ReferenceKind) String() string {
	switch k {
	case RefCitation:
		return "Citation"
	case RefFootnote:
		return "Footnote"
	case RefSession:
		return "Session"
	case RefPage:
		return "Page"
	case RefFile:
		return "File"
	case RefUrl:
		return "Url"
	case RefNotSure:
		return "NotSure"
	default:
		return fmt.Sprintf("ReferenceKind(%d)", uint8(k))
	}
}

// Inline is one node of the AST's Inline family: leaves of block text.
type Inline struct {
	Kind InlineKind
	Span Span

	// Text / Code / Math content, and Custom's raw payload.
	Text string

	// Bold / Italic / Link display content.
	Children []*Inline

	// Link
	LinkTarget string

	// Reference
	RefKind    ReferenceKind
	RefRaw     string
	RefLocator string // citation page locator, e.g. "[@smith2023, p. 45]"

	// FootnoteTarget names the footnote a RefFootnote reference points
	// to (SPEC_FULL.md §4, supplemented feature).
	FootnoteTarget *FootnoteTarget
}

// FootnoteTarget names the footnote a [Reference] of kind [RefFootnote]
// points to. Auto is true for the bare "[^]" form (and for an empty
// "[]"); such a reference has an empty Label, and no stage assigns one.
type FootnoteTarget struct {
	Label string
	Auto  bool
}
