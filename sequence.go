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

// sequenceMarker is the result of a successful [parseSequenceMarker].
// Grounded on parseListMarker in the teacher's blocks.go, generalized from
// a single delimiter byte to TXXT's dotted and parenthesized forms.
type sequenceMarker struct {
	style NumberingStyle
	form  NumberingForm
	text  string // the marker text, not including the trailing space
	end   int     // byte offset immediately after the marker, before the required space
}

// parseSequenceMarker attempts to parse a list/section marker at the
// beginning of line. line must already have leading indentation stripped.
// It reports end < 0 if line does not begin with a marker.
//
// Forms recognized: "-", "1.", "1)", "a.", "a)", "iv.", "iv)", and
// dot-joined extended forms like "1.3.b." (extended forms always close
// with '.', never ')').
func parseSequenceMarker(line string) sequenceMarker {
	if len(line) == 0 {
		return sequenceMarker{end: -1}
	}
	if line[0] == '-' {
		if len(line) == 1 || line[1] == ' ' || line[1] == '\t' {
			return sequenceMarker{style: Plain, form: Regular, text: "-", end: 1}
		}
		return sequenceMarker{end: -1}
	}

	var components []string
	i := 0
	for {
		start := i
		for i < len(line) && isSequenceComponentByte(line[i]) {
			i++
		}
		if i == start {
			return sequenceMarker{end: -1}
		}
		components = append(components, line[start:i])
		if i >= len(line) {
			return sequenceMarker{end: -1}
		}
		if line[i] == '.' {
			i++
			if i < len(line) && isSequenceComponentByte(line[i]) {
				// Another component follows: extended form.
				continue
			}
			// Terminal '.': must be followed by whitespace or EOL.
			if i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '\n' && line[i] != '\r' {
				return sequenceMarker{end: -1}
			}
			style, ok := classifySequenceComponent(components[0])
			if !ok {
				return sequenceMarker{end: -1}
			}
			form := Regular
			if len(components) > 1 {
				form = Extended
			}
			return sequenceMarker{style: style, form: form, text: line[:i], end: i}
		}
		if line[i] == ')' {
			if len(components) > 1 {
				// Extended form never uses ')'.
				return sequenceMarker{end: -1}
			}
			i++
			if i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '\n' && line[i] != '\r' {
				return sequenceMarker{end: -1}
			}
			style, ok := classifySequenceComponent(components[0])
			if !ok {
				return sequenceMarker{end: -1}
			}
			return sequenceMarker{style: style, form: Regular, text: line[:i], end: i}
		}
		return sequenceMarker{end: -1}
	}
}

func isSequenceComponentByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// classifySequenceComponent decides the style of a single dot-component.
// Digits-only is always Numeric. A single letter is Alphabetic unless it
// also reads as a (non-empty) Roman numeral, in which case Roman wins —
// this matches the spec's ordering ("iv." is Roman, not Alphabetic).
func classifySequenceComponent(s string) (NumberingStyle, bool) {
	if s == "" {
		return 0, false
	}
	if isAllDigits(s) {
		return Numeric, true
	}
	if isRomanNumeral(s) {
		return Roman, true
	}
	if len(s) == 1 && ((s[0] >= 'a' && s[0] <= 'z') || (s[0] >= 'A' && s[0] <= 'Z')) {
		return Alphabetic, true
	}
	return 0, false
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isRomanNumeral reports whether s is composed entirely of roman-numeral
// letters and decodes to a positive value under the standard subtractive
// rules. A single letter that is also a valid alphabetic marker (like "i"
// or "v") is still classified Roman here; disambiguating single letters
// that could be either is left to the caller via classifySequenceComponent
// trying Roman before falling back to Alphabetic.
func isRomanNumeral(s string) bool {
	upper := strings.ToUpper(s)
	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	total := 0
	prev := 0
	for i := len(upper) - 1; i >= 0; i-- {
		v, ok := values[upper[i]]
		if !ok {
			return false
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total > 0
}
