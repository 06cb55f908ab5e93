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

// knownFileExtensions grounds the Url-vs-File bare-target rule recorded
// in SPEC_FULL.md §5: a bare reference target with no "://" is a File
// when it contains a path separator or ends in one of these, else
// NotSure.
var knownFileExtensions = map[string]bool{
	".md": true, ".txt": true, ".rst": true, ".go": true, ".py": true,
	".rs": true, ".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true, ".pdf": true,
	".html": true, ".css": true, ".js": true, ".ts": true,
}

// classifyReference builds a [Reference] [Inline] from the raw text
// inside a "[...]" bracket pair, per spec.md §4.6's match order.
func classifyReference(raw string, span Span) *Inline {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "@"):
		return classifyCitation(trimmed, span)
	case strings.HasPrefix(trimmed, "#"):
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefSession, RefRaw: trimmed, Text: trimmed}
	case strings.HasPrefix(trimmed, "p.") || strings.HasPrefix(trimmed, "p "):
		locator := strings.TrimSpace(strings.TrimPrefix(trimmed, "p."))
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefPage, RefRaw: trimmed, Text: locator}
	case strings.HasPrefix(trimmed, "^"):
		label := strings.TrimPrefix(trimmed, "^")
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefFootnote, RefRaw: trimmed, Text: label, FootnoteTarget: &FootnoteTarget{Label: label, Auto: label == ""}}
	case trimmed == "":
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefFootnote, RefRaw: trimmed, FootnoteTarget: &FootnoteTarget{Auto: true}}
	case isAllDigits(trimmed):
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefFootnote, RefRaw: trimmed, Text: trimmed, FootnoteTarget: &FootnoteTarget{Label: trimmed}}
	case strings.Contains(trimmed, "://"):
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefUrl, RefRaw: trimmed, Text: trimmed}
	case looksLikeFilePath(trimmed):
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefFile, RefRaw: trimmed, Text: trimmed}
	default:
		return &Inline{Kind: InlineReference, Span: span, RefKind: RefNotSure, RefRaw: trimmed, Text: trimmed}
	}
}

// classifyCitation parses "@key[, p. N]; @key2..." into its first key
// and an optional locator. Only the first citation key is modeled on
// the Inline itself; spec.md does not require multi-key citations to
// produce multiple Inline nodes, since the bracket group is one
// Reference node with the raw text preserved in RefRaw.
func classifyCitation(trimmed string, span Span) *Inline {
	body := strings.TrimPrefix(trimmed, "@")
	if idx := strings.IndexByte(body, ';'); idx >= 0 {
		body = body[:idx]
	}
	key := strings.TrimSpace(body)
	locator := ""
	if idx := strings.IndexByte(body, ','); idx >= 0 {
		key = strings.TrimSpace(body[:idx])
		locator = strings.TrimSpace(body[idx+1:])
	}
	return &Inline{Kind: InlineReference, Span: span, RefKind: RefCitation, RefRaw: trimmed, Text: key, RefLocator: locator}
}

// looksLikeFilePath implements the File half of the Url-vs-File rule:
// a "/" anywhere in the target, or a recognized file extension.
func looksLikeFilePath(s string) bool {
	if strings.Contains(s, "/") {
		return true
	}
	idx := strings.LastIndexByte(s, '.')
	if idx < 0 || idx == len(s)-1 {
		return false
	}
	return knownFileExtensions[strings.ToLower(s[idx:])]
}
