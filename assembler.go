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

// MetaValueKind tags the [MetaValue] sum type (spec.md §4.7).
type MetaValueKind uint8

const (
	MetaString MetaValueKind = 1 + iota
	MetaInlines
	MetaBlocks
	MetaList
)

// MetaValue is the value of one document-level metadata entry.
type MetaValue struct {
	Kind    MetaValueKind
	String  string
	Inlines []*Inline
	Blocks  []*Block
	List    []MetaValue
}

// Meta is the document's extracted metadata (spec.md §4.7, 3c).
type Meta struct {
	Title    string
	HasTitle bool
	Authors  []string
	Date     string
	PubDate  string
	Custom   map[string]MetaValue
}

// ProcessingStats summarizes one assembly pass, computed by a single
// recursive walk (spec.md §4.7, 3a).
type ProcessingStats struct {
	TokenCount      int
	AnnotationCount int
	BlockCount      int
	MaxDepth        int
}

// AssemblyInfo records provenance and diagnostics for a [Document].
type AssemblyInfo struct {
	Version      string
	SourcePath   string
	ProcessedAt  string // ISO-8601; set by the driver, not the core pipeline (spec.md §3.6)
	Stats        ProcessingStats
	Warnings     []Warning
	Errors       []*ParseError
}

// Document is the AST root (spec.md §3.4).
type Document struct {
	Meta         Meta
	Content      *SessionContainer
	AssemblyInfo AssemblyInfo
}

// RunAssembler implements spec.md §4.7: wraps the top-level block list
// in the document's root [SessionContainer], attaches annotations to
// their owning elements, and extracts well-known metadata from
// document-level annotations.
func RunAssembler(nodes []*Block, sourcePath string) *Document {
	remaining, docAnnotations := attachAnnotationsRecursive(nodes, true)

	doc := &Document{
		Content: &SessionContainer{Blocks: remaining, Annotations: docAnnotations},
		AssemblyInfo: AssemblyInfo{
			Version:    Version,
			SourcePath: sourcePath,
		},
	}

	meta, warnings := extractMeta(docAnnotations)
	doc.Meta = meta
	doc.AssemblyInfo.Warnings = append(doc.AssemblyInfo.Warnings, warnings...)
	doc.AssemblyInfo.Stats = computeStats(doc)
	return doc
}

// attachAnnotationsRecursive performs pass 3b over one container's
// block list and recurses into every child container it finds, so that
// nested Session/Definition/ListItem bodies get the same treatment.
// It returns the filtered block list (with BlockAnnotation entries
// removed) and the annotations that could not attach to a sibling.
func attachAnnotationsRecursive(blocks []*Block, isDocumentLevel bool) ([]*Block, []*Block) {
	var remaining []*Block
	var orphaned []*Block

	for i, b := range blocks {
		if b.Kind == BlockAnnotation {
			switch {
			case i+1 < len(blocks) && blocks[i+1].Kind != BlockBlankLine && blocks[i+1].Kind != BlockAnnotation:
				blocks[i+1].Annotations = append(blocks[i+1].Annotations, b)
			case len(remaining) > 0 && remaining[len(remaining)-1].Kind != BlockBlankLine && remaining[len(remaining)-1].Kind != BlockAnnotation:
				remaining[len(remaining)-1].Annotations = append(remaining[len(remaining)-1].Annotations, b)
			default:
				// Isolated by blank lines on both sides, or adjacent only
				// to other annotations/blanks: a document- or
				// container-level annotation (spec.md §4.7, "at the start
				// of the document" and "nearest enclosing container").
				orphaned = append(orphaned, b)
			}
			continue
		}
		recurseIntoChildContainers(b)
		remaining = append(remaining, b)
	}

	return remaining, orphaned
}

// recurseIntoChildContainers applies annotation attachment inside b's
// own nested containers, never across the session boundary b may itself
// introduce (spec.md §4.7, "Annotations never attach across a session
// boundary").
func recurseIntoChildContainers(b *Block) {
	switch b.Kind {
	case BlockSession:
		if b.SessionBody != nil {
			remaining, orphaned := attachAnnotationsRecursive(b.SessionBody.Blocks, false)
			b.SessionBody.Blocks = remaining
			b.SessionBody.Annotations = orphaned
		}
	case BlockDefinition:
		if b.DefBody != nil {
			remaining, orphaned := attachAnnotationsRecursive(b.DefBody.Blocks, false)
			b.DefBody.Blocks = remaining
			b.DefBody.Annotations = orphaned
		}
	case BlockList:
		for _, item := range b.Items {
			recurseIntoChildContainers(item)
		}
	case BlockListItem:
		if b.Nested != nil {
			remaining, orphaned := attachAnnotationsRecursive(b.Nested.Blocks, false)
			b.Nested.Blocks = remaining
			b.Nested.Annotations = orphaned
		}
	}
}

func extractMeta(docAnnotations []*Block) (Meta, []Warning) {
	meta := Meta{Custom: map[string]MetaValue{}}
	var warnings []Warning
	for _, a := range docAnnotations {
		value := annotationMetaValue(a)
		switch a.Label {
		case "title":
			if meta.HasTitle {
				warnings = append(warnings, Warning{
					Kind:    DuplicateMetadata,
					Span:    a.Span,
					Message: "duplicate title annotation; last value wins",
				})
			}
			meta.Title = value.String
			meta.HasTitle = true
		case "author":
			meta.Authors = append(meta.Authors, value.String)
		case "authors":
			meta.Authors = append(meta.Authors, strings.Split(value.String, ",")...)
			for i := range meta.Authors {
				meta.Authors[i] = strings.TrimSpace(meta.Authors[i])
			}
		case "date":
			meta.Date = value.String
		case "pub-date":
			meta.PubDate = value.String
		default:
			meta.Custom[a.Label] = value
		}
	}
	return meta, warnings
}

func annotationMetaValue(a *Block) MetaValue {
	if len(a.Inlines) == 0 {
		return MetaValue{Kind: MetaString, String: ""}
	}
	if len(a.Inlines) == 1 && a.Inlines[0].Kind == InlineText {
		return MetaValue{Kind: MetaString, String: a.Inlines[0].Text}
	}
	return MetaValue{Kind: MetaInlines, Inlines: a.Inlines, String: renderInlineText(&Inline{Children: a.Inlines})}
}

func computeStats(doc *Document) ProcessingStats {
	var stats ProcessingStats
	depth := 0
	Walk(NodeFromBlock(&Block{Kind: BlockSession, SessionBody: doc.Content}), &WalkOptions{
		Pre: func(c *Cursor) bool {
			if b := c.Node().Block(); b != nil {
				stats.BlockCount++
				// An attached annotation is reachable two ways: through its
				// owner's Annotations slice, and as a node in its own right,
				// since blockChildren yields it as one of the owner's
				// children. Walk visits it once, as that node; count it
				// there only, not again on the owner.
				if b.Kind == BlockAnnotation {
					stats.AnnotationCount++
				}
			}
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
			depth++
			return true
		},
		Post: func(c *Cursor) bool {
			depth--
			return true
		},
	})
	// The synthetic root wrapper above is not part of the document and
	// should not count toward BlockCount/MaxDepth.
	stats.BlockCount--
	if stats.MaxDepth > 0 {
		stats.MaxDepth--
	}
	return stats
}
