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

// SemanticResult bundles a promotion run's tokens with its warnings.
type SemanticResult struct {
	Tokens   []SemanticToken
	Warnings []Warning
}

// RunSemantic implements spec.md §4.4: a single left-to-right pass that
// groups scanner tokens into line-level semantic constructs.
func RunSemantic(tokens []Token) SemanticResult {
	var result SemanticResult
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case KindIndent:
			result.Tokens = append(result.Tokens, SemanticToken{Kind: SemIndent, Span: t.Span})
			i++
		case KindDedent:
			result.Tokens = append(result.Tokens, SemanticToken{Kind: SemDedent, Span: t.Span})
			i++
		case KindBlankLine:
			result.Tokens = append(result.Tokens, SemanticToken{Kind: SemBlankLine, Span: t.Span, Text: t.Content})
			i++
		case KindEOF:
			i++
		case KindVerbatimBlockStart:
			tok, next := promoteVerbatimBlock(tokens, i)
			result.Tokens = append(result.Tokens, tok)
			i = next
		case KindVerbatimContentLine:
			result.Tokens = append(result.Tokens, SemanticToken{Kind: SemIgnoreLine, Span: t.Span, Text: t.Content})
			i++
		default:
			j := i
			for j < len(tokens) && tokens[j].Kind != KindNewline && tokens[j].Kind != KindEOF {
				j++
			}
			lineTokens := tokens[i:j]
			span := t.Span
			if j > i {
				span = unionAll(t.Span, tokens[j-1].Span)
			}
			tok, warn := promoteLine(lineTokens, span)
			result.Tokens = append(result.Tokens, tok)
			if warn != nil {
				result.Warnings = append(result.Warnings, *warn)
			}
			if j < len(tokens) && tokens[j].Kind == KindNewline {
				j++
			}
			i = j
		}
	}
	return result
}

func promoteVerbatimBlock(tokens []Token, start int) (SemanticToken, int) {
	startTok := tokens[start]
	j := start + 1
	var contentLines []Token
	for j < len(tokens) && tokens[j].Kind == KindVerbatimContentLine {
		contentLines = append(contentLines, tokens[j])
		j++
	}
	var labelRaw string
	endSpan := startTok.Span
	if len(contentLines) > 0 {
		endSpan = contentLines[len(contentLines)-1].Span
	}
	if j < len(tokens) && tokens[j].Kind == KindVerbatimBlockEnd {
		labelRaw = tokens[j].Content
		endSpan = tokens[j].Span
		j++
	}
	label, params, hasParams := parseVerbatimLabel(labelRaw)
	return SemanticToken{
		Kind:      SemVerbatimBlock,
		Span:      unionAll(startTok.Span, endSpan),
		Title:     startTok.Content,
		Wall:      startTok.Wall,
		Text:      joinVerbatimContent(contentLines, startTok.Wall),
		Label:     label,
		Params:    params,
		HasParams: hasParams,
		Raw:       tokens[start:j],
	}, j
}

// joinVerbatimContent reproduces the byte-exact source substring from
// the first content line through the newline that precedes the
// terminator line (spec.md §3.5 invariant 4): every content line,
// including the last, keeps its trailing '\n', since the terminator
// line starts only after that newline.
func joinVerbatimContent(lines []Token, wall WallType) string {
	var sb strings.Builder
	for _, t := range lines {
		sb.WriteString(stripWallPrefix(t.Content, wall.Column()))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func stripWallPrefix(line string, col int) string {
	off := byteOffsetForColumn(line, col)
	if off > len(line) {
		off = len(line)
	}
	return line[off:]
}

func parseVerbatimLabel(raw string) (label string, params Parameters, hasParams bool) {
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return strings.TrimSpace(raw), Parameters{}, false
	}
	label = strings.TrimSpace(raw[:idx])
	params, _ = parseParameters(raw[idx+1:], Span{})
	return label, params, true
}

// promoteLine classifies one logical line's tokens per spec.md §4.4.
func promoteLine(tokens []Token, span Span) (SemanticToken, *Warning) {
	first := 0
	for first < len(tokens) && tokens[first].Kind == KindWhitespace {
		first++
	}
	if first >= len(tokens) {
		return SemanticToken{Kind: SemPlainTextLine, Span: span}, nil
	}

	if tokens[first].Kind == KindTxxtMarker {
		return promoteAnnotation(tokens, first, span)
	}

	last := len(tokens) - 1
	for last >= first && tokens[last].Kind == KindWhitespace {
		last--
	}
	if last >= first && tokens[last].Kind == KindTxxtMarker {
		return promoteDefinition(tokens, first, last, span)
	}

	if tokens[first].Kind == KindSequenceMarker {
		content := strings.TrimSpace(renderTokens(tokens[first+1:]))
		return SemanticToken{Kind: SemSequenceTextLine, Span: span, Marker: tokens[first].Marker, Text: content}, nil
	}

	return SemanticToken{Kind: SemPlainTextLine, Span: span, Text: renderTokens(tokens)}, nil
}

func promoteAnnotation(tokens []Token, first int, span Span) (SemanticToken, *Warning) {
	j := first + 1
	for j < len(tokens) && tokens[j].Kind != KindTxxtMarker {
		j++
	}
	if j >= len(tokens) {
		return SemanticToken{Kind: SemPlainTextLine, Span: span, Text: renderTokens(tokens)},
			&Warning{Kind: MalformedAnnotationHeader, Span: span, Message: "annotation missing closing `::`"}
	}
	labelRaw := strings.TrimSpace(renderTokens(tokens[first+1 : j]))
	label, params, hasParams := parseVerbatimLabel(labelRaw)
	if label == "" {
		return SemanticToken{Kind: SemPlainTextLine, Span: span, Text: renderTokens(tokens)},
			&Warning{Kind: MalformedAnnotationHeader, Span: span, Message: "annotation has no label"}
	}
	if idx := strings.IndexByte(labelRaw, ':'); idx >= 0 {
		if _, warn := parseParameters(labelRaw[idx+1:], span); warn != nil {
			return SemanticToken{Kind: SemPlainTextLine, Span: span, Text: renderTokens(tokens)}, warn
		}
	}
	rest := strings.TrimSpace(renderTokens(tokens[j+1:]))
	return SemanticToken{
		Kind:       SemAnnotation,
		Span:       span,
		Annotation: label,
		Params:     params,
		HasParams:  hasParams,
		Content:    rest,
		HasContent: rest != "",
	}, nil
}

func promoteDefinition(tokens []Token, first, last int, span Span) (SemanticToken, *Warning) {
	body := tokens[first:last]
	colonIdx := -1
	for i := len(body) - 1; i >= 0; i-- {
		if body[i].Kind == KindColon {
			colonIdx = i
			break
		}
	}
	if colonIdx < 0 {
		term := strings.TrimSpace(renderTokens(body))
		return SemanticToken{Kind: SemDefinition, Span: span, Text: term}, nil
	}
	term := strings.TrimSpace(renderTokens(body[:colonIdx]))
	paramsRaw := renderTokens(body[colonIdx+1:])
	params, warn := parseParameters(paramsRaw, span)
	if warn != nil {
		return SemanticToken{Kind: SemPlainTextLine, Span: span, Text: renderTokens(tokens)}, warn
	}
	return SemanticToken{Kind: SemDefinition, Span: span, Text: term, Params: params, HasParams: true}, nil
}

// parseParameters parses a comma-separated "key[=value]" list (spec.md
// §4.4). A bare key is recorded as "true". Grounded on
// _examples/original_source/src/tokenizer/parameters.rs, translated
// from the Rust char-iterator style into a byte-index cursor to match
// the rest of this package.
func parseParameters(raw string, span Span) (Parameters, *Warning) {
	params := Parameters{Values: map[string]string{}}
	i := 0
	for i < len(raw) {
		for i < len(raw) && raw[i] == ' ' {
			i++
		}
		if i >= len(raw) {
			break
		}
		if !isIdentifierStart(raw[i]) {
			return params, &Warning{Kind: MalformedParameters, Span: span, Message: "expected parameter key"}
		}
		keyStart := i
		for i < len(raw) && isParamKeyByte(raw[i]) {
			i++
		}
		key := strings.TrimSuffix(raw[keyStart:i], ".")

		var val string
		hasVal := false
		if i < len(raw) && raw[i] == '=' {
			i++
			hasVal = true
			if i < len(raw) && raw[i] == '"' {
				i++
				var sb strings.Builder
				closed := false
				for i < len(raw) {
					c := raw[i]
					if c == '\\' && i+1 < len(raw) {
						i++
						switch raw[i] {
						case '"':
							sb.WriteByte('"')
						case '\\':
							sb.WriteByte('\\')
						case 'n':
							sb.WriteByte('\n')
						case 't':
							sb.WriteByte('\t')
						case 'r':
							sb.WriteByte('\r')
						default:
							sb.WriteByte('\\')
							sb.WriteByte(raw[i])
						}
						i++
						continue
					}
					if c == '"' {
						i++
						closed = true
						break
					}
					sb.WriteByte(c)
					i++
				}
				if !closed {
					return params, &Warning{Kind: MalformedParameters, Span: span, Message: "unterminated quoted value"}
				}
				val = sb.String()
			} else {
				valStart := i
				for i < len(raw) && raw[i] != ',' {
					i++
				}
				val = strings.TrimSpace(raw[valStart:i])
			}
		}
		if !hasVal {
			val = "true"
		}
		if _, exists := params.Values[key]; !exists {
			params.Keys = append(params.Keys, key)
			params.Values[key] = val
		}

		for i < len(raw) && raw[i] == ' ' {
			i++
		}
		if i < len(raw) {
			if raw[i] != ',' {
				return params, &Warning{Kind: MalformedParameters, Span: span, Message: "expected ',' between parameters"}
			}
			i++
		}
	}
	return params, nil
}

func isParamKeyByte(b byte) bool {
	return isIdentifierStart(b) || (b >= '0' && b <= '9') || b == '_' || b == '-' || b == '.'
}

// renderTokens reconstructs the literal text a run of scanner tokens
// was lexed from, used when a semantic construct needs the raw text of
// a span it has already classified (term text, annotation labels,
// plain-text line bodies).
func renderTokens(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(tokenLiteral(t))
	}
	return sb.String()
}

func tokenLiteral(t Token) string {
	switch t.Kind {
	case KindWhitespace, KindText, KindIdentifier:
		return t.Content
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindComma:
		return ","
	case KindPeriod:
		return "."
	case KindDash:
		return "-"
	case KindAtSign:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindBoldDelim:
		return "*"
	case KindItalicDelim:
		return "_"
	case KindCodeDelim:
		return "`"
	case KindMathDelim:
		return "#"
	case KindTxxtMarker:
		return "::"
	case KindSequenceMarker:
		return t.Marker.text
	case KindRefMarker, KindCitationRef, KindPageRef, KindSessionRef, KindFootnoteRef:
		return "[" + t.Content + "]"
	default:
		return ""
	}
}
