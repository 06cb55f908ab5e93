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

// Query is a fluent, lazily-evaluated builder over a [Node] tree,
// grounded on original_source/src/ast/query/query_builder.rs and
// traversal.rs. Unlike that Rust builder (which walks eagerly at each
// combinator), this Query collects predicates and evaluates them in a
// single [Walk] when a terminal method (Find, Count, Exists, ...) is
// called, using Go's closures in place of the original's boxed
// trait-object visitor chain.
type Query struct {
	root  Node
	preds []func(Node) bool
	depth *int // set by AtDepth; nil means unrestricted
}

// NewQuery starts a query rooted at root.
func NewQuery(root Node) *Query {
	return &Query{root: root}
}

func (q *Query) clone() *Query {
	next := &Query{root: q.root, depth: q.depth}
	next.preds = append(next.preds, q.preds...)
	return next
}

func (q *Query) with(pred func(Node) bool) *Query {
	next := q.clone()
	next.preds = append(next.preds, pred)
	return next
}

// OfKind restricts results to nodes whose [Node.Kind] equals kind.
func (q *Query) OfKind(kind string) *Query {
	return q.with(func(n Node) bool { return n.Kind() == kind })
}

// Paragraphs restricts results to Paragraph blocks.
func (q *Query) Paragraphs() *Query { return q.OfKind(BlockParagraph.String()) }

// Sessions restricts results to Session blocks.
func (q *Query) Sessions() *Query { return q.OfKind(BlockSession.String()) }

// Lists restricts results to List blocks.
func (q *Query) Lists() *Query { return q.OfKind(BlockList.String()) }

// Definitions restricts results to Definition blocks.
func (q *Query) Definitions() *Query { return q.OfKind(BlockDefinition.String()) }

// VerbatimBlocks restricts results to Verbatim blocks.
func (q *Query) VerbatimBlocks() *Query { return q.OfKind(BlockVerbatim.String()) }

// WithAnnotations restricts results to blocks carrying at least one
// attached annotation (populated by the assembler).
func (q *Query) WithAnnotations() *Query {
	return q.with(func(n Node) bool {
		b := n.Block()
		return b != nil && len(b.Annotations) > 0
	})
}

// WithAnnotationLabel restricts results to blocks carrying an attached
// annotation with the given label.
func (q *Query) WithAnnotationLabel(label string) *Query {
	return q.with(func(n Node) bool {
		b := n.Block()
		if b == nil {
			return false
		}
		for _, a := range b.Annotations {
			if a.Label == label {
				return true
			}
		}
		return false
	})
}

// WithParam restricts results to blocks whose Params contain key.
func (q *Query) WithParam(key string) *Query {
	return q.with(func(n Node) bool {
		b := n.Block()
		if b == nil {
			return false
		}
		_, ok := b.Params.Get(key)
		return ok
	})
}

// TextContains restricts results to blocks or inlines whose rendered
// text contains substr.
func (q *Query) TextContains(substr string) *Query {
	return q.with(func(n Node) bool {
		return strings.Contains(renderNodeText(n), substr)
	})
}

// AtDepth restricts results to nodes exactly depth steps below the
// query's root.
func (q *Query) AtDepth(depth int) *Query {
	next := q.clone()
	d := depth
	next.depth = &d
	return next
}

// Leaves restricts results to nodes with no children.
func (q *Query) Leaves() *Query {
	return q.with(func(n Node) bool { return n.ChildCount() == 0 })
}

// Filter restricts results to nodes satisfying an arbitrary predicate,
// for cases the named combinators above don't cover.
func (q *Query) Filter(pred func(Node) bool) *Query {
	return q.with(pred)
}

// Find evaluates the query and returns every matching node in document
// order.
func (q *Query) Find() []Node {
	var out []Node
	depth := 0
	Walk(q.root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if q.depth == nil || depth == *q.depth {
				if q.matches(c.Node()) {
					out = append(out, c.Node())
				}
			}
			depth++
			return true
		},
		Post: func(c *Cursor) bool {
			depth--
			return true
		},
	})
	return out
}

// FindFirst returns the first matching node, or the zero Node and false
// if none match.
func (q *Query) FindFirst() (Node, bool) {
	var found Node
	ok := false
	depth := 0
	Walk(q.root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if ok {
				return false
			}
			if q.depth == nil || depth == *q.depth {
				if q.matches(c.Node()) {
					found = c.Node()
					ok = true
					return false
				}
			}
			depth++
			return true
		},
		Post: func(c *Cursor) bool {
			depth--
			return true
		},
	})
	return found, ok
}

// Count returns the number of matching nodes.
func (q *Query) Count() int {
	return len(q.Find())
}

// Exists reports whether any node matches.
func (q *Query) Exists() bool {
	_, ok := q.FindFirst()
	return ok
}

func (q *Query) matches(n Node) bool {
	for _, pred := range q.preds {
		if !pred(n) {
			return false
		}
	}
	return true
}

func renderNodeText(n Node) string {
	if b := n.Block(); b != nil {
		var sb strings.Builder
		for _, in := range b.Inlines {
			sb.WriteString(renderInlineText(in))
		}
		return sb.String()
	}
	if in := n.Inline(); in != nil {
		return renderInlineText(in)
	}
	return ""
}

func renderInlineText(in *Inline) string {
	if in.Text != "" || len(in.Children) == 0 {
		return in.Text
	}
	var sb strings.Builder
	for _, c := range in.Children {
		sb.WriteString(renderInlineText(c))
	}
	return sb.String()
}
