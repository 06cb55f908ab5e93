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

// ErrorKind enumerates the one hard-failure condition in the pipeline:
// an unterminated verbatim block. Every other stage degrades locally
// instead of failing (spec.md §7).
type ErrorKind uint8

const (
	// UnterminatedVerbatim is reported when a verbatim block's title line
	// is never followed by a matching terminator before EOF. The region
	// from the title line onward is still parsed as plain TXXT text.
	UnterminatedVerbatim ErrorKind = 1 + iota
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedVerbatim:
		return "UnterminatedVerbatim"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError is the sole error type the core pipeline returns. It is
// always recoverable: the stage that produced it still returns usable
// output for the remainder of the document.
type ParseError struct {
	Kind    ErrorKind
	Span    Span
	Message string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil ParseError>"
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.Message)
}

// WarningKind enumerates recoverable conditions that do not interrupt
// parsing but are worth surfacing to a caller (spec.md §7).
type WarningKind uint8

const (
	// NonMultipleIndent is reported when an indentation level is not a
	// multiple of [IndentSize]. The scanner still computes Indent/Dedent
	// using the observed width.
	NonMultipleIndent WarningKind = 1 + iota
	// MalformedParameters is reported when the `key[=value]` parameter
	// list of a definition or annotation line cannot be parsed (e.g. an
	// unterminated quoted value). The offending line is demoted to a
	// PlainTextLine. A malformed list in a verbatim block's label is not
	// reported; the parameters parsed before the fault are kept.
	MalformedParameters
	// MalformedAnnotationHeader is reported when a line shaped like
	// `:: label ... ::` fails to parse as a well-formed annotation header.
	MalformedAnnotationHeader
	// DuplicateMetadata is reported when a singleton metadata field (such
	// as title) is set more than once; the last value wins.
	DuplicateMetadata
)

func (k WarningKind) String() string {
	switch k {
	case NonMultipleIndent:
		return "NonMultipleIndent"
	case MalformedParameters:
		return "MalformedParameters"
	case MalformedAnnotationHeader:
		return "MalformedAnnotationHeader"
	case DuplicateMetadata:
		return "DuplicateMetadata"
	default:
		return fmt.Sprintf("WarningKind(%d)", uint8(k))
	}
}

// Warning is a recoverable condition collected in a side channel rather
// than returned as an error (spec.md §7, §9 "Warnings are values").
type Warning struct {
	Kind    WarningKind
	Span    Span
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s: %s", w.Kind, w.Span, w.Message)
}
