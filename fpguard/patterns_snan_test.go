// Copyright 2026 go-fpguard Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build snantrap

package fpguard

import (
	"testing"
)

// Scenarios for the signaling-NaN pattern table.

func TestSnanTableValues(t *testing.T) {
	mx := PatternFor(KindMXCSR)
	if mx.Mask != 0xFF80 || mx.A != 0x1900 || mx.B != 0x1900 {
		t.Errorf("MXCSR pattern = {mask 0x%04X, A 0x%04X, B 0x%04X}, want {0xFF80, 0x1900, 0x1900}",
			mx.Mask, mx.A, mx.B)
	}
	cw := PatternFor(KindX87CW)
	if cw.Mask != 0x1F3F || cw.A != 0x0032 || cw.B != 0x003F {
		t.Errorf("FPUCW pattern = {mask 0x%04X, A 0x%04X, B 0x%04X}, want {0x1F3F, 0x0032, 0x003F}",
			cw.Mask, cw.A, cw.B)
	}
}

func TestSnanAccepts(t *testing.T) {
	mx := PatternFor(KindMXCSR)
	if !mx.Accepts(0x1900) {
		t.Error("MXCSR Accepts(0x1900) = false, want true")
	}
	// The fully masked quiet-NaN modes are not sync-safe here.
	if mx.Accepts(0x1F80) {
		t.Error("MXCSR Accepts(0x1F80) = true, want false in snantrap build")
	}
	cw := PatternFor(KindX87CW)
	if !cw.Accepts(0x0032) || !cw.Accepts(0x003F) {
		t.Error("FPUCW should accept 0x0032 and 0x003F")
	}
	if cw.Accepts(0x003A) {
		t.Error("FPUCW Accepts(0x003A) = true, want false in snantrap build")
	}
}

func TestSnanVerifyRearmsExceptions(t *testing.T) {
	fs, rl := withGuard(t, Env{MXCSR: 0x1F80, X87CW: 0x003A})

	Verify("SimFrame")

	if len(rl.lines) != 2 {
		t.Fatalf("%d warnings emitted, want 2: %q", len(rl.lines), rl.lines)
	}
	if fs.resets != 1 {
		t.Errorf("resets = %d, want 1", fs.resets)
	}
	want := ExcInvalid | ExcDivByZero | ExcOverflow
	if fs.raised != want {
		t.Errorf("raised = 0x%02X, want 0x%02X", uint8(fs.raised), uint8(want))
	}

	// Corrected state passes and does not re-arm again.
	Verify("SimFrame")
	if len(rl.lines) != 2 || fs.resets != 1 {
		t.Errorf("second Verify not a no-op: warnings=%d resets=%d", len(rl.lines), fs.resets)
	}
}
