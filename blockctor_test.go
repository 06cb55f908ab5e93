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

import "testing"

// buildBlocks runs the pipeline through RunBlocks for a piece of source
// text, the same way RunAll does, without the assembler stage.
func buildBlocks(t *testing.T, text string) []*Block {
	t.Helper()
	boundaries, errs := RunVerbatimScan(text)
	if len(errs) != 0 {
		t.Fatalf("RunVerbatimScan(%q) errs = %v", text, errs)
	}
	scan := RunScanner(text, boundaries)
	sem := RunSemantic(scan.Tokens)
	return RunBlocks(sem.Tokens)
}

func wantKinds(t *testing.T, blocks []*Block, want ...BlockKind) {
	t.Helper()
	if len(blocks) != len(want) {
		t.Fatalf("blocks = %v, want %d blocks of kind %v", blockKindsOf(blocks), len(want), want)
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("blocks[%d].Kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}
}

func blockKindsOf(blocks []*Block) []BlockKind {
	out := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func soleInlineText(t *testing.T, inlines []*Inline) string {
	t.Helper()
	if len(inlines) != 1 || inlines[0].Kind != InlineText {
		t.Fatalf("inlines = %+v, want a single InlineText", inlines)
	}
	return inlines[0].Text
}

func TestRunBlocksParagraph(t *testing.T) {
	blocks := buildBlocks(t, "hello\n")
	wantKinds(t, blocks, BlockParagraph, BlockBlankLine)
	if got := soleInlineText(t, blocks[0].Inlines); got != "hello" {
		t.Errorf("paragraph text = %q, want %q", got, "hello")
	}
}

// A title line followed by a blank line and an indented child becomes a
// Session rather than a Paragraph, because the blank-line-bracketed shape
// is tried before any lower-precedence block kind. This test uses a
// plain-text title.
func TestRunBlocksSessionTakesPrecedence(t *testing.T) {
	blocks := buildBlocks(t, "Title\n\n    Body\n")
	wantKinds(t, blocks, BlockSession)

	session := blocks[0]
	if got := soleInlineText(t, session.Title.Inlines); got != "Title" {
		t.Errorf("session title = %q, want %q", got, "Title")
	}
	wantKinds(t, session.SessionBody.Blocks, BlockParagraph, BlockBlankLine)
	if got := soleInlineText(t, session.SessionBody.Blocks[0].Inlines); got != "Body" {
		t.Errorf("session body paragraph = %q, want %q", got, "Body")
	}
}

// Without a blank line directly after it, a Definition-shaped line's own
// indent is read immediately by buildDefinition: the Session shape's
// blank-then-indent pattern never matches, so the term resolves as a
// Definition instead.
func TestRunBlocksDefinitionWinsWithoutBlankLine(t *testing.T) {
	blocks := buildBlocks(t, "Term ::\n    detail\n")
	wantKinds(t, blocks, BlockDefinition)

	def := blocks[0]
	if got := soleInlineText(t, def.Term); got != "Term" {
		t.Errorf("definition term = %q, want %q", got, "Term")
	}
	wantKinds(t, def.DefBody.Blocks, BlockParagraph, BlockBlankLine)
	if got := soleInlineText(t, def.DefBody.Blocks[0].Inlines); got != "detail" {
		t.Errorf("definition body paragraph = %q, want %q", got, "detail")
	}
}

func TestRunBlocksList(t *testing.T) {
	blocks := buildBlocks(t, "1. first\n2. second\n")
	wantKinds(t, blocks, BlockList, BlockBlankLine)

	list := blocks[0]
	if len(list.Items) != 2 {
		t.Fatalf("Items = %+v, want 2", list.Items)
	}
	if list.Decoration.Style != Numeric || list.Decoration.Form != Regular {
		t.Errorf("Decoration = %+v, want Numeric/Regular", list.Decoration)
	}
	if got := soleInlineText(t, list.Items[0].Inlines); got != "first" {
		t.Errorf("item[0] text = %q, want %q", got, "first")
	}
	if got := soleInlineText(t, list.Items[1].Inlines); got != "second" {
		t.Errorf("item[1] text = %q, want %q", got, "second")
	}
}

// A single numbered line with a nested indented nested region is not a
// list (lists require at least two items): tryList's speculative
// consumption is rolled back, and the dangling indented region it had
// already read is flattened back into the enclosing container as sibling
// paragraphs rather than being discarded.
func TestRunBlocksOrphanedNestedFlattensToSiblings(t *testing.T) {
	blocks := buildBlocks(t, "1. only\n    nested\n")
	wantKinds(t, blocks, BlockParagraph, BlockParagraph, BlockBlankLine)

	if got := soleInlineText(t, blocks[0].Inlines); got != "1. only" {
		t.Errorf("blocks[0] text = %q, want %q", got, "1. only")
	}
	if got := soleInlineText(t, blocks[1].Inlines); got != "nested" {
		t.Errorf("blocks[1] text = %q, want %q", got, "nested")
	}
}
