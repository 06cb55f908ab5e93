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

import "testing"

func TestIndentTrackerStep(t *testing.T) {
	tr := newIndentTracker()

	events, warn := tr.step(4)
	if warn != nil {
		t.Fatalf("step(4) warn = %v, want nil", warn)
	}
	if len(events) != 1 || events[0].kind != indentPush || events[0].column != 4 {
		t.Fatalf("step(4) events = %+v, want one push to 4", events)
	}

	events, warn = tr.step(8)
	if warn != nil {
		t.Fatalf("step(8) warn = %v, want nil", warn)
	}
	if len(events) != 1 || events[0].kind != indentPush {
		t.Fatalf("step(8) events = %+v, want one push", events)
	}

	events, warn = tr.step(0)
	if warn != nil {
		t.Fatalf("step(0) warn = %v, want nil", warn)
	}
	if len(events) != 2 {
		t.Fatalf("step(0) events = %+v, want two pops", events)
	}
	for _, ev := range events {
		if ev.kind != indentPop {
			t.Errorf("step(0) event %+v, want pop", ev)
		}
	}
}

func TestIndentTrackerJaggedRedent(t *testing.T) {
	tr := newIndentTracker()
	tr.step(4)
	events, warn := tr.step(2)
	if warn == nil {
		t.Fatal("step(2) after step(4) should warn about a jagged redent")
	}
	if len(events) != 2 {
		t.Fatalf("step(2) events = %+v, want pop-then-push", events)
	}
	if events[0].kind != indentPop || events[1].kind != indentPush {
		t.Errorf("step(2) events = %+v, want [pop, push]", events)
	}
	if tr.current() != 2 {
		t.Errorf("current() = %d, want 2", tr.current())
	}
}

func TestIndentTrackerFinalize(t *testing.T) {
	tr := newIndentTracker()
	tr.step(4)
	tr.step(8)
	events := tr.finalize()
	if len(events) != 2 {
		t.Fatalf("finalize() = %+v, want two pops", events)
	}
	if tr.current() != 0 {
		t.Errorf("current() after finalize = %d, want 0", tr.current())
	}
}
