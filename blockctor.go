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

// RunBlocks implements spec.md §4.5: recursive descent with precedence
// dispatch over the semantic token stream, producing the document's
// top-level block list. Grounded on the teacher's blockStarts/cursor
// pattern, adapted from a table of matcher functions to an explicit
// precedence chain since TXXT has far fewer block kinds than CommonMark.
func RunBlocks(sem []SemanticToken) []*Block {
	p := &blockParser{toks: sem}
	return p.parseContainer(true)
}

type blockParser struct {
	toks []SemanticToken
	pos  int
}

func (p *blockParser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *blockParser) peek() *SemanticToken {
	if p.atEnd() {
		return nil
	}
	return &p.toks[p.pos]
}

func (p *blockParser) save() int        { return p.pos }
func (p *blockParser) restore(mark int) { p.pos = mark }

// parseContainer consumes blocks until EOF or an unmatched Dedent
// (which belongs to the Indent that opened this container, consumed by
// the caller). allowSession gates whether a Session may be constructed
// here (invariant 1: only a SessionContainer may hold one).
func (p *blockParser) parseContainer(allowSession bool) []*Block {
	var blocks []*Block
	precededByBlankOrStart := true
	for {
		t := p.peek()
		if t == nil || t.Kind == SemDedent {
			break
		}
		if t.Kind == SemIndent {
			// An indent with nothing at this level expecting it; skip
			// defensively rather than stalling the parse.
			p.pos++
			continue
		}
		next := p.tryBlock(allowSession, precededByBlankOrStart)
		blocks = append(blocks, next...)
		if len(next) > 0 {
			precededByBlankOrStart = next[len(next)-1].Kind == BlockBlankLine
		}
	}
	return blocks
}

// tryBlock dispatches the precedence chain of spec.md §4.5 at the
// current position, returning the one or more sibling blocks produced.
// More than one block is returned only when a degraded List/Session
// candidate had already consumed a trailing indented region that must
// be flattened back into the enclosing container.
func (p *blockParser) tryBlock(allowSession, precededByBlank bool) []*Block {
	t := *p.peek()

	switch t.Kind {
	case SemBlankLine:
		p.pos++
		return []*Block{{Kind: BlockBlankLine, Span: t.Span}}
	case SemVerbatimBlock:
		p.pos++
		return []*Block{buildVerbatim(t)}
	case SemAnnotation:
		p.pos++
		return []*Block{buildAnnotation(t)}
	}

	// Session title candidates (PlainTextLine, SequenceTextLine,
	// Definition) are tried before their own lower-precedence block
	// kinds, since the blank-line-bracketed Session shape can never be
	// produced by Definition's or List's own body-reading rules. A
	// Plain ("-") marker is never a session title (spec.md §4.5,
	// "a '- Title' is a list, not a section heading").
	sessionEligible := t.Kind != SemSequenceTextLine || t.Marker.style != Plain
	if allowSession && precededByBlank && sessionEligible {
		if b, ok := p.trySession(); ok {
			return []*Block{b}
		}
	}

	if t.Kind == SemDefinition {
		return []*Block{p.buildDefinition()}
	}

	if t.Kind == SemSequenceTextLine {
		if b, ok := p.tryList(); ok {
			return []*Block{b}
		}
	}

	return p.buildParagraphWithOrphanNested(allowSession)
}

func (p *blockParser) trySession() (*Block, bool) {
	mark := p.save()
	t := *p.peek()
	if t.Kind != SemPlainTextLine && t.Kind != SemSequenceTextLine && t.Kind != SemDefinition {
		return nil, false
	}
	p.pos++

	if p.peek() == nil || p.peek().Kind != SemBlankLine {
		p.restore(mark)
		return nil, false
	}
	p.pos++

	if p.peek() == nil || p.peek().Kind != SemIndent {
		p.restore(mark)
		return nil, false
	}
	p.pos++

	children := p.parseContainer(true)
	if len(children) == 0 {
		p.restore(mark)
		return nil, false
	}

	if p.peek() == nil || p.peek().Kind != SemDedent {
		p.restore(mark)
		return nil, false
	}
	p.pos++

	title, numbering := buildSessionTitle(t)
	body := &SessionContainer{Blocks: children}
	return &Block{
		Kind:        BlockSession,
		Span:        unionAll(t.Span, containerSpan(children)),
		Title:       title,
		SessionBody: body,
		Numbering:   numbering,
	}, true
}

func buildSessionTitle(tok SemanticToken) (*Block, *Numbering) {
	var numbering *Numbering
	if tok.Kind == SemSequenceTextLine {
		numbering = &Numbering{Style: tok.Marker.style, Form: tok.Marker.form, Marker: tok.Marker.text}
	}
	title := &Block{Kind: BlockSessionTitle, Span: tok.Span, Inlines: ParseInlineText(tok.Text, tok.Span)}
	return title, numbering
}

func (p *blockParser) tryList() (*Block, bool) {
	mark := p.save()
	var items []*Block
	for {
		t := p.peek()
		if t == nil || t.Kind != SemSequenceTextLine {
			break
		}
		itemTok := *t
		p.pos++

		var nested *ContentContainer
		if p.peek() != nil && p.peek().Kind == SemIndent {
			p.pos++
			children := p.parseContainer(false)
			if p.peek() != nil && p.peek().Kind == SemDedent {
				p.pos++
			}
			nested = &ContentContainer{Blocks: children}
		}

		items = append(items, &Block{
			Kind:    BlockListItem,
			Span:    itemTok.Span,
			Marker:  itemTok.Marker,
			Inlines: ParseInlineText(itemTok.Text, itemTok.Span),
			Nested:  nested,
		})

		if p.peek() != nil && p.peek().Kind == SemBlankLine {
			break
		}
	}

	if len(items) < 2 {
		p.restore(mark)
		return nil, false
	}

	first := items[0].Marker
	return &Block{
		Kind:       BlockList,
		Span:       containerSpan(items),
		Decoration: Numbering{Style: first.style, Form: first.form, Marker: first.text},
		Items:      items,
	}, true
}

func (p *blockParser) buildDefinition() *Block {
	tok := *p.peek()
	p.pos++

	span := tok.Span
	var body *ContentContainer
	if p.peek() != nil && p.peek().Kind == SemIndent {
		p.pos++
		children := p.parseContainer(false)
		if p.peek() != nil && p.peek().Kind == SemDedent {
			p.pos++
		}
		body = &ContentContainer{Blocks: children}
		if len(children) > 0 {
			span = unionAll(span, containerSpan(children))
		}
	} else {
		body = &ContentContainer{}
	}

	return &Block{
		Kind:    BlockDefinition,
		Span:    span,
		Term:    ParseInlineText(tok.Text, tok.Span),
		Params:  tok.Params,
		DefBody: body,
	}
}

func buildAnnotation(tok SemanticToken) *Block {
	label := tok.Annotation
	namespace := ""
	if idx := strings.LastIndexByte(label, '.'); idx >= 0 {
		namespace, label = label[:idx], label[idx+1:]
	}
	var inlines []*Inline
	if tok.HasContent {
		inlines = ParseInlineText(tok.Content, tok.Span)
	}
	return &Block{
		Kind:      BlockAnnotation,
		Span:      tok.Span,
		Label:     label,
		Namespace: namespace,
		Params:    tok.Params,
		Inlines:   inlines,
	}
}

func buildVerbatim(tok SemanticToken) *Block {
	var lines []string
	if tok.Text != "" {
		// tok.Text keeps the trailing '\n' of its last line (joinVerbatimContent),
		// so trim it before splitting or Split would manufacture one extra,
		// phantom empty line.
		lines = strings.Split(strings.TrimSuffix(tok.Text, "\n"), "\n")
	}
	return &Block{
		Kind:          BlockVerbatim,
		Span:          tok.Span,
		VerbatimTitle: ParseInlineText(tok.Title, tok.Span),
		VerbatimBody:  &IgnoreContainer{Lines: lines},
		VerbatimLabel: tok.Label,
		Wall:          tok.Wall,
		Params:        tok.Params,
	}
}

// buildParagraphWithOrphanNested is both the ordinary Paragraph
// producer and the degradation target for a failed Session or List
// candidate. If the single leaf token that degraded to a paragraph was
// itself immediately followed by an indented region (a would-be
// session body, or a would-be list item's nested content), that region
// is parsed and flattened into the enclosing container rather than
// left dangling.
func (p *blockParser) buildParagraphWithOrphanNested(allowSession bool) []*Block {
	t := *p.peek()
	p.pos++
	text := t.Text
	if t.Kind == SemSequenceTextLine {
		// The marker itself was stripped off during semantic promotion;
		// a degraded sequence line must read back as the original line,
		// marker included (spec.md §8 S4: "- only" degrades to a
		// Paragraph whose content is "- only", not "only").
		text = t.Marker.text + " " + t.Text
	}
	para := &Block{Kind: BlockParagraph, Span: t.Span, Inlines: ParseInlineText(text, t.Span), Tokens: []SemanticToken{t}}
	blocks := []*Block{para}

	if p.peek() != nil && p.peek().Kind == SemBlankLine && peekAhead(p, 1) != nil && peekAhead(p, 1).Kind == SemIndent {
		p.pos++ // the blank line belongs to the orphaned session shape
		p.pos++ // the indent
		blocks = append(blocks, p.parseContainer(allowSession)...)
		if p.peek() != nil && p.peek().Kind == SemDedent {
			p.pos++
		}
		return blocks
	}

	if p.peek() != nil && p.peek().Kind == SemIndent {
		p.pos++
		blocks = append(blocks, p.parseContainer(allowSession)...)
		if p.peek() != nil && p.peek().Kind == SemDedent {
			p.pos++
		}
	}
	return blocks
}

func peekAhead(p *blockParser, n int) *SemanticToken {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return nil
	}
	return &p.toks[idx]
}

func containerSpan(blocks []*Block) Span {
	spans := make([]Span, len(blocks))
	for i, b := range blocks {
		spans[i] = b.Span
	}
	return unionAll(spans...)
}
