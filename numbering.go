// Copyright 2024 Ross Light
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

// NumberingStyle is the lexical family a [SequenceMarker] belongs to.
// Grounded on _examples/original_source/src/semantic/elements/numbering.rs,
// which performs the same syntax-level-to-AST-level conversion.
type NumberingStyle uint8

const (
	Numeric NumberingStyle = 1 + iota
	Alphabetic
	Roman
	// Plain is the bare "-" list marker. Sessions never accept Plain
	// (spec.md §4.5, "Plain is not allowed for sessions"); only lists do.
	Plain
)

func (s NumberingStyle) String() string {
	switch s {
	case Numeric:
		return "numeric"
	case Alphabetic:
		return "alphabetic"
	case Roman:
		return "roman"
	case Plain:
		return "plain"
	default:
		return fmt.Sprintf("NumberingStyle(%d)", uint8(s))
	}
}

// NumberingForm distinguishes a single-level marker ("1.") from a
// dot-joined hierarchical one ("1.3.b."). The semantic-token layer uses
// spec.md's own wording (Regular/Extended); at the AST layer the same
// values print as "short"/"full", following the original implementation's
// convert_numbering_form naming.
type NumberingForm uint8

const (
	Regular NumberingForm = 1 + iota
	Extended
)

func (f NumberingForm) String() string {
	switch f {
	case Regular:
		return "short"
	case Extended:
		return "full"
	default:
		return fmt.Sprintf("NumberingForm(%d)", uint8(f))
	}
}

// Numbering is the resolved numbering of a [List] or a [Session] title,
// carried from the [SequenceMarker] semantic token that introduced it.
type Numbering struct {
	Style NumberingStyle
	Form  NumberingForm
	// Marker is the raw marker text, e.g. "1.", "iv.", "1.3.b.".
	Marker string
}

// allowPlainNumbering reports whether style is legal for the given numbering
// context; only lists may use Plain.
func allowPlainNumbering(style NumberingStyle, isSession bool) bool {
	if style != Plain {
		return true
	}
	return !isSession
}
