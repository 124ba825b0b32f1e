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

// Package asm provides the amd64 floating-point control-register
// primitives behind the fpguard package. All operations act on the
// calling thread's registers only.
package asm

// Implemented in fpenv_amd64.s.

// stmxcsr reads the MXCSR control and status register.
func stmxcsr(addr *uint32)

// ldmxcsr writes to the MXCSR control and status register.
func ldmxcsr(addr *uint32)

// fnstcw stores the x87 control word.
func fnstcw(addr *uint16)

// fldcw loads the x87 control word.
func fldcw(addr *uint16)

// fnstenv stores the 28-byte x87 environment image.
func fnstenv(addr *byte)

// fldenv loads the 28-byte x87 environment image.
func fldenv(addr *byte)

// Layout of the FNSTENV image in 64-bit mode: control word at offset 0,
// status word at offset 4.
const (
	x87EnvSize      = 28
	x87StatusOffset = 4
)

// ReadMXCSR returns the current MXCSR register.
func ReadMXCSR() uint32 {
	var v uint32
	stmxcsr(&v)
	return v
}

// WriteMXCSR replaces the MXCSR register.
func WriteMXCSR(v uint32) {
	ldmxcsr(&v)
}

// ReadX87CW returns the current x87 control word.
func ReadX87CW() uint16 {
	var v uint16
	fnstcw(&v)
	return v
}

// WriteX87CW replaces the x87 control word.
func WriteX87CW(v uint16) {
	fldcw(&v)
}

// RaiseMXCSR sets the given exception flag bits (low six bits) in MXCSR.
// With the corresponding mask bits clear, the next SSE operation traps.
func RaiseMXCSR(flags uint32) {
	v := ReadMXCSR() | (flags & 0x3F)
	ldmxcsr(&v)
}

// RaiseX87 sets the given exception flag bits (low six bits) in the x87
// status word through an FNSTENV/FLDENV round trip, the same path
// feraiseexcept takes. The pending exception fires on the next x87
// instruction if unmasked.
func RaiseX87(flags uint16) {
	var env [x87EnvSize]byte
	fnstenv(&env[0])
	env[x87StatusOffset] |= byte(flags & 0x3F)
	fldenv(&env[0])
}
