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

//go:build amd64 && !noasm

package asm

import (
	"runtime"
	"testing"
)

// Control registers are per-thread state; every test pins its goroutine
// and restores what it touched.

func TestMXCSRRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig := ReadMXCSR()
	defer WriteMXCSR(orig)

	// Flip the rounding-control bits (13:14); harmless with all
	// exceptions still masked.
	want := orig ^ 0x6000
	WriteMXCSR(want)
	if got := ReadMXCSR(); got != want {
		t.Errorf("ReadMXCSR() = 0x%04X, want 0x%04X", got, want)
	}

	WriteMXCSR(orig)
	if got := ReadMXCSR(); got != orig {
		t.Errorf("ReadMXCSR() after restore = 0x%04X, want 0x%04X", got, orig)
	}
}

func TestX87CWRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig := ReadX87CW()
	defer WriteX87CW(orig)

	// Flip the rounding-control bits (10:11).
	want := orig ^ 0x0C00
	WriteX87CW(want)
	if got := ReadX87CW(); got != want {
		t.Errorf("ReadX87CW() = 0x%04X, want 0x%04X", got, want)
	}

	WriteX87CW(orig)
	if got := ReadX87CW(); got != orig {
		t.Errorf("ReadX87CW() after restore = 0x%04X, want 0x%04X", got, orig)
	}
}

func TestRaiseMXCSRSetsFlags(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig := ReadMXCSR()
	defer WriteMXCSR(orig)

	// All exceptions masked so the raised flag cannot trap.
	WriteMXCSR(0x1F80)
	RaiseMXCSR(0x01)
	if got := ReadMXCSR(); got&0x01 == 0 {
		t.Errorf("MXCSR = 0x%04X, invalid-operation flag not set", got)
	}
}

func TestRaiseX87SetsStatusFlags(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var orig [x87EnvSize]byte
	fnstenv(&orig[0])
	// FNSTENV masks all exceptions as a side effect; reloading the image
	// puts the control word back.
	fldenv(&orig[0])
	defer fldenv(&orig[0])

	RaiseX87(0x01)

	var after [x87EnvSize]byte
	fnstenv(&after[0])
	if after[x87StatusOffset]&0x01 == 0 {
		t.Errorf("x87 status = 0x%02X, invalid-operation flag not set", after[x87StatusOffset])
	}
}
