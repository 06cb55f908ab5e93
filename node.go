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

// Node is a tagged reference to either a [Block] or an [Inline]: the
// two disjoint families of spec.md §3.4's ElementNode sum type. It
// plays the role of the teacher's Node wrapper, minus the
// unsafe.Pointer packing trick — TXXT's two families are plain typed
// fields rather than CommonMark's single interleaved arena, so a pair
// of pointer fields is sufficient and needs no unsafe conversion.
type Node struct {
	block  *Block
	inline *Inline
}

// NodeFromBlock wraps a Block as a Node.
func NodeFromBlock(b *Block) Node { return Node{block: b} }

// NodeFromInline wraps an Inline as a Node.
func NodeFromInline(n *Inline) Node { return Node{inline: n} }

// IsBlock reports whether n wraps a Block.
func (n Node) IsBlock() bool { return n.block != nil }

// IsInline reports whether n wraps an Inline.
func (n Node) IsInline() bool { return n.inline != nil }

// Block returns the wrapped Block, or nil if n wraps an Inline.
func (n Node) Block() *Block { return n.block }

// Inline returns the wrapped Inline, or nil if n wraps a Block.
func (n Node) Inline() *Inline { return n.inline }

// Span returns the wrapped node's span, or [NullSpan] for a zero Node.
func (n Node) Span() Span {
	switch {
	case n.block != nil:
		return n.block.Span
	case n.inline != nil:
		return n.inline.Span
	default:
		return NullSpan()
	}
}

// Kind returns a human-readable kind name for diagnostics and [Query]
// predicates, dispatching to the wrapped value's own kind type.
func (n Node) Kind() string {
	switch {
	case n.block != nil:
		return n.block.Kind.String()
	case n.inline != nil:
		return n.inline.Kind.String()
	default:
		return "<nil>"
	}
}

// ChildCount returns the number of direct children n has, across
// whichever container or slice field its kind uses.
func (n Node) ChildCount() int {
	return len(n.children())
}

// Child returns n's i'th direct child.
func (n Node) Child(i int) Node {
	return n.children()[i]
}

// children enumerates n's direct descendants in document order. This
// is the one place that needs to know every kind-specific child field,
// mirroring the teacher's Block.Child dispatch.
func (n Node) children() []Node {
	switch {
	case n.block != nil:
		return blockChildren(n.block)
	case n.inline != nil:
		out := make([]Node, len(n.inline.Children))
		for i, c := range n.inline.Children {
			out[i] = NodeFromInline(c)
		}
		return out
	default:
		return nil
	}
}

func blockChildren(b *Block) []Node {
	var out []Node
	appendInlines := func(inlines []*Inline) {
		for _, in := range inlines {
			out = append(out, NodeFromInline(in))
		}
	}
	appendBlocks := func(blocks []*Block) {
		for _, blk := range blocks {
			out = append(out, NodeFromBlock(blk))
		}
	}

	switch b.Kind {
	case BlockParagraph, BlockSessionTitle, BlockAnnotation:
		appendInlines(b.Inlines)
	case BlockListItem:
		appendInlines(b.Inlines)
		if b.Nested != nil {
			appendBlocks(b.Nested.Blocks)
		}
	case BlockList:
		appendBlocks(b.Items)
	case BlockSession:
		if b.Title != nil {
			out = append(out, NodeFromBlock(b.Title))
		}
		if b.SessionBody != nil {
			appendBlocks(b.SessionBody.Blocks)
		}
	case BlockDefinition:
		appendInlines(b.Term)
		if b.DefBody != nil {
			appendBlocks(b.DefBody.Blocks)
		}
	case BlockVerbatim:
		appendInlines(b.VerbatimTitle)
		// IgnoreContainer lines are raw text, not further AST nodes.
	case BlockBlankLine:
		// leaf
	}
	for _, a := range b.Annotations {
		out = append(out, NodeFromBlock(a))
	}
	return out
}
