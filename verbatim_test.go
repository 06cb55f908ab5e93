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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRunVerbatimScan(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []VerbatimBoundary
		wantErr bool
	}{
		{
			name: "in-flow",
			text: "example:\n    one\n    two\n:: label\n",
			want: []VerbatimBoundary{
				{
					TitleLine: 0, TerminatorLine: 3,
					Title: "example", Wall: InFlowWall(0), TitleIndent: 0,
					ContentStart: 1, ContentEnd: 3, LabelRaw: "label",
				},
			},
		},
		{
			name: "stretched",
			text: "example:\n0\n1\n:: end\n",
			want: []VerbatimBoundary{
				{
					TitleLine: 0, TerminatorLine: 3,
					Title: "example", Wall: StretchedWall(), TitleIndent: 0,
					ContentStart: 1, ContentEnd: 3, LabelRaw: "end",
				},
			},
		},
		{
			name: "immediately terminated",
			text: "example:\n:: end\n",
			want: []VerbatimBoundary{
				{
					TitleLine: 0, TerminatorLine: 1,
					Title: "example", Wall: InFlowWall(0), TitleIndent: 0,
					ContentStart: -1, ContentEnd: -1, LabelRaw: "end",
				},
			},
		},
		{
			name: "annotation line is never a verbatim title",
			text: ":: meta: x\nbody\n",
			want: nil,
		},
		{
			name: "unterminated",
			text: "example:\n    one\n",
			want: []VerbatimBoundary{
				{
					TitleLine: 0, TerminatorLine: -1,
					Title: "example", Wall: InFlowWall(0), TitleIndent: 0,
					ContentStart: 1, ContentEnd: 3, LabelRaw: "",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := RunVerbatimScan(tt.text)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty(), cmp.AllowUnexported(WallType{})); diff != "" {
				t.Errorf("RunVerbatimScan(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("RunVerbatimScan(%q) errs = %v, wantErr = %v", tt.text, errs, tt.wantErr)
			}
		})
	}
}

func TestWallTypeColumn(t *testing.T) {
	tests := []struct {
		name string
		wall WallType
		want int
	}{
		{"in-flow base 0", InFlowWall(0), 4},
		{"in-flow base 4", InFlowWall(4), 8},
		{"stretched", StretchedWall(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wall.Column(); got != tt.want {
				t.Errorf("Column() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndentWidth(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"    x", 4},
		{"\tx", 4},
		{"x", 0},
		{"  \tx", 4},
	}
	for _, tt := range tests {
		if got := indentWidth(tt.line); got != tt.want {
			t.Errorf("indentWidth(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
