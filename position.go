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

// Position is a zero-based row/column location in source text.
// Column is measured in bytes within the row, except that a line's
// leading indentation is measured with tabs expanded to [TabWidth]
// columns (see [RunScanner]); for non-ASCII text it therefore differs
// from a character count.
type Position struct {
	Row    int
	Column int
}

// Before reports whether p comes strictly before other in reading order.
func (p Position) Before(other Position) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Column < other.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Span is a half-open range of [Position] values; End is exclusive.
type Span struct {
	Start Position
	End   Position
}

// NullSpan returns a [Span] that does not correspond to any source range.
func NullSpan() Span {
	return Span{
		Start: Position{Row: -1, Column: -1},
		End:   Position{Row: -1, Column: -1},
	}
}

// IsValid reports whether s refers to an actual source range.
func (s Span) IsValid() bool {
	return s.Start.Row >= 0 && s.End.Row >= 0
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// union returns the smallest [Span] that contains both a and b.
// If either span is invalid, the other is returned unchanged.
func union(a, b Span) Span {
	switch {
	case !a.IsValid():
		return b
	case !b.IsValid():
		return a
	}
	result := a
	if b.Start.Before(result.Start) {
		result.Start = b.Start
	}
	if result.End.Before(b.End) {
		result.End = b.End
	}
	return result
}

// unionAll folds [union] over a sequence of spans, starting from
// [NullSpan]. It is the standard way a composite node computes its own
// span from its children's spans (spec.md §3.1: "Spans compose").
func unionAll(spans ...Span) Span {
	result := NullSpan()
	for _, s := range spans {
		result = union(result, s)
	}
	return result
}
