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
	"reflect"
	"testing"
)

// S1: a single paragraph.
func TestRunAllSingleParagraph(t *testing.T) {
	doc := RunAll("Hello, world!", "s1.txxt")

	wantKinds(t, doc.Content.Blocks, BlockParagraph)
	if got := soleInlineText(t, doc.Content.Blocks[0].Inlines); got != "Hello, world!" {
		t.Errorf("paragraph text = %q, want %q", got, "Hello, world!")
	}
	if doc.AssemblyInfo.Stats.BlockCount != 1 {
		t.Errorf("BlockCount = %d, want 1", doc.AssemblyInfo.Stats.BlockCount)
	}
	if doc.AssemblyInfo.Stats.MaxDepth != 1 {
		t.Errorf("MaxDepth = %d, want 1", doc.AssemblyInfo.Stats.MaxDepth)
	}
}

// S2: a numbered session with a body paragraph.
func TestRunAllNumberedSession(t *testing.T) {
	doc := RunAll("1. Intro\n\n    Body text.", "s2.txxt")

	wantKinds(t, doc.Content.Blocks, BlockSession)
	session := doc.Content.Blocks[0]
	if session.Numbering == nil {
		t.Fatalf("session.Numbering = nil, want non-nil")
	}
	if session.Numbering.Marker != "1." || session.Numbering.Style != Numeric || session.Numbering.Form != Regular {
		t.Errorf("Numbering = %+v, want {Marker: \"1.\", Style: Numeric, Form: Regular}", session.Numbering)
	}
	if got := soleInlineText(t, session.Title.Inlines); got != "Intro" {
		t.Errorf("title text = %q, want %q", got, "Intro")
	}
	wantKinds(t, session.SessionBody.Blocks, BlockParagraph)
	if got := soleInlineText(t, session.SessionBody.Blocks[0].Inlines); got != "Body text." {
		t.Errorf("body paragraph text = %q, want %q", got, "Body text.")
	}
}

// S3: a flat two-item plain list.
func TestRunAllFlatList(t *testing.T) {
	doc := RunAll("- alpha\n- beta", "s3.txxt")

	wantKinds(t, doc.Content.Blocks, BlockList)
	list := doc.Content.Blocks[0]
	if list.Decoration.Style != Plain || list.Decoration.Form != Regular {
		t.Errorf("Decoration = %+v, want {Style: Plain, Form: Regular}", list.Decoration)
	}
	if len(list.Items) != 2 {
		t.Fatalf("Items = %+v, want 2", list.Items)
	}
	if got := soleInlineText(t, list.Items[0].Inlines); got != "alpha" {
		t.Errorf("item[0] text = %q, want %q", got, "alpha")
	}
	if got := soleInlineText(t, list.Items[1].Inlines); got != "beta" {
		t.Errorf("item[1] text = %q, want %q", got, "beta")
	}
}

// S4: a single "- item" line degrades to a Paragraph, since a List
// requires at least two items.
func TestRunAllDegradedSingleItemList(t *testing.T) {
	doc := RunAll("- only", "s4.txxt")

	wantKinds(t, doc.Content.Blocks, BlockParagraph)
	if got := soleInlineText(t, doc.Content.Blocks[0].Inlines); got != "- only" {
		t.Errorf("paragraph text = %q, want %q", got, "- only")
	}
}

// S5: an in-flow verbatim block. The content is represented as a Lines
// slice (one element per source content line with its wall prefix
// stripped) rather than a single string; the verbatim-opacity invariant
// still holds because joining those lines, each followed by "\n",
// reproduces the original content bytes exactly.
func TestRunAllInFlowVerbatim(t *testing.T) {
	doc := RunAll("Example:\n    print(\"hi\")\n:: python", "s5.txxt")

	wantKinds(t, doc.Content.Blocks, BlockVerbatim)
	v := doc.Content.Blocks[0]
	if got := soleInlineText(t, v.VerbatimTitle); got != "Example" {
		t.Errorf("title = %q, want %q", got, "Example")
	}
	if v.Wall.Stretched {
		t.Errorf("Wall.Stretched = true, want false (in-flow)")
	}
	if v.VerbatimLabel != "python" {
		t.Errorf("VerbatimLabel = %q, want %q", v.VerbatimLabel, "python")
	}
	if len(v.VerbatimBody.Lines) != 1 || v.VerbatimBody.Lines[0] != `print("hi")` {
		t.Errorf("VerbatimBody.Lines = %+v, want [print(\"hi\")]", v.VerbatimBody.Lines)
	}
}

// S6: a leading annotation attaches forward onto the paragraph that
// follows it, and leaves no standalone Annotation block at the top level.
func TestRunAllAnnotationAttachment(t *testing.T) {
	doc := RunAll(":: note :: careful\nThis paragraph.", "s6.txxt")

	wantKinds(t, doc.Content.Blocks, BlockParagraph)
	para := doc.Content.Blocks[0]
	if got := soleInlineText(t, para.Inlines); got != "This paragraph." {
		t.Errorf("paragraph text = %q, want %q", got, "This paragraph.")
	}
	if len(para.Annotations) != 1 {
		t.Fatalf("Annotations = %+v, want one", para.Annotations)
	}
	ann := para.Annotations[0]
	if ann.Label != "note" {
		t.Errorf("annotation label = %q, want %q", ann.Label, "note")
	}
	if got := soleInlineText(t, ann.Inlines); got != "careful" {
		t.Errorf("annotation content = %q, want %q", got, "careful")
	}
	if len(doc.Content.Annotations) != 0 {
		t.Errorf("Content.Annotations = %+v, want none orphaned", doc.Content.Annotations)
	}
}

// Universal law 1: run_all(text) is a pure function of text.
func TestRunAllDeterministic(t *testing.T) {
	const text = "1. Intro\n\n    Body text.\n\n- alpha\n- beta"
	a := RunAll(text, "det.txxt")
	b := RunAll(text, "det.txxt")
	if !reflect.DeepEqual(a.Content, b.Content) {
		t.Errorf("RunAll produced different Content across runs:\n%+v\n%+v", a.Content, b.Content)
	}
	if !reflect.DeepEqual(a.Meta, b.Meta) {
		t.Errorf("RunAll produced different Meta across runs:\n%+v\n%+v", a.Meta, b.Meta)
	}
}
