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

func paragraphBlock(text string) *Block {
	return &Block{Kind: BlockParagraph, Inlines: ParseInlineText(text, Span{})}
}

func annotationBlock(label, content string) *Block {
	return &Block{Kind: BlockAnnotation, Label: label, Inlines: ParseInlineText(content, Span{})}
}

func blankBlock() *Block {
	return &Block{Kind: BlockBlankLine}
}

func TestRunAssemblerAttachesForwardAnnotation(t *testing.T) {
	blocks := []*Block{annotationBlock("note", "hi"), paragraphBlock("body")}
	doc := RunAssembler(blocks, "src.txxt")

	if len(doc.Content.Blocks) != 1 || doc.Content.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("Content.Blocks = %+v, want one Paragraph", doc.Content.Blocks)
	}
	para := doc.Content.Blocks[0]
	if len(para.Annotations) != 1 || para.Annotations[0].Label != "note" {
		t.Errorf("Paragraph.Annotations = %+v, want one note annotation", para.Annotations)
	}
	if len(doc.Content.Annotations) != 0 {
		t.Errorf("Content.Annotations = %+v, want none", doc.Content.Annotations)
	}
}

func TestRunAssemblerAttachesBackwardAnnotation(t *testing.T) {
	blocks := []*Block{paragraphBlock("body"), annotationBlock("note", "hi")}
	doc := RunAssembler(blocks, "src.txxt")

	if len(doc.Content.Blocks) != 1 || doc.Content.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("Content.Blocks = %+v, want one Paragraph", doc.Content.Blocks)
	}
	para := doc.Content.Blocks[0]
	if len(para.Annotations) != 1 || para.Annotations[0].Label != "note" {
		t.Errorf("Paragraph.Annotations = %+v, want one note annotation", para.Annotations)
	}
}

func TestRunAssemblerOrphansIsolatedAnnotation(t *testing.T) {
	blocks := []*Block{blankBlock(), annotationBlock("note", "hi"), blankBlock()}
	doc := RunAssembler(blocks, "src.txxt")

	if len(doc.Content.Blocks) != 2 {
		t.Fatalf("Content.Blocks = %+v, want two blank lines", doc.Content.Blocks)
	}
	if len(doc.Content.Annotations) != 1 || doc.Content.Annotations[0].Label != "note" {
		t.Errorf("Content.Annotations = %+v, want one orphaned note annotation", doc.Content.Annotations)
	}
}

func TestRunAssemblerRecursesIntoSessionBody(t *testing.T) {
	session := &Block{
		Kind: BlockSession,
		SessionBody: &SessionContainer{
			Blocks: []*Block{annotationBlock("note", "hi"), paragraphBlock("body")},
		},
	}
	doc := RunAssembler([]*Block{session}, "src.txxt")

	if len(doc.Content.Blocks) != 1 || doc.Content.Blocks[0] != session {
		t.Fatalf("Content.Blocks = %+v, want the session unchanged", doc.Content.Blocks)
	}
	if len(session.SessionBody.Blocks) != 1 || session.SessionBody.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("SessionBody.Blocks = %+v, want one Paragraph", session.SessionBody.Blocks)
	}
	if len(session.SessionBody.Blocks[0].Annotations) != 1 {
		t.Errorf("paragraph Annotations = %+v, want one annotation attached within the session body", session.SessionBody.Blocks[0].Annotations)
	}
	if len(session.SessionBody.Annotations) != 0 {
		t.Errorf("SessionBody.Annotations = %+v, want none orphaned", session.SessionBody.Annotations)
	}
}

func TestExtractMetaDuplicateTitleLastWins(t *testing.T) {
	docAnnotations := []*Block{annotationBlock("title", "First"), annotationBlock("title", "Second")}
	meta, warnings := extractMeta(docAnnotations)

	if !meta.HasTitle || meta.Title != "Second" {
		t.Errorf("meta.Title = %q, HasTitle = %v, want %q, true", meta.Title, meta.HasTitle, "Second")
	}
	if len(warnings) != 1 || warnings[0].Kind != DuplicateMetadata {
		t.Errorf("warnings = %+v, want one DuplicateMetadata", warnings)
	}
}

func TestExtractMetaAuthorsAndCustom(t *testing.T) {
	docAnnotations := []*Block{
		annotationBlock("authors", "Alice, Bob"),
		annotationBlock("license", "MIT"),
	}
	meta, warnings := extractMeta(docAnnotations)

	if len(warnings) != 0 {
		t.Fatalf("warnings = %+v, want none", warnings)
	}
	if len(meta.Authors) != 2 || meta.Authors[0] != "Alice" || meta.Authors[1] != "Bob" {
		t.Errorf("Authors = %+v, want [Alice Bob]", meta.Authors)
	}
	custom, ok := meta.Custom["license"]
	if !ok || custom.String != "MIT" {
		t.Errorf("Custom[license] = %+v, want MIT", custom)
	}
}

func TestComputeStatsCountsAnnotationOnce(t *testing.T) {
	blocks := []*Block{annotationBlock("note", "hi"), paragraphBlock("body")}
	doc := RunAssembler(blocks, "src.txxt")

	if doc.AssemblyInfo.Stats.AnnotationCount != 1 {
		t.Errorf("AnnotationCount = %d, want 1", doc.AssemblyInfo.Stats.AnnotationCount)
	}
	if doc.AssemblyInfo.Stats.BlockCount != 2 {
		t.Errorf("BlockCount = %d, want 2 (paragraph + annotation)", doc.AssemblyInfo.Stats.BlockCount)
	}
}
