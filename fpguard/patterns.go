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

//go:generate go run github.com/ajroetker/go-fpguard/cmd/fpgen -out .

package fpguard

// RegisterKind identifies one of the control registers the guard models.
type RegisterKind uint8

const (
	// KindMXCSR is the SSE vector-unit control/status register.
	KindMXCSR RegisterKind = iota
	// KindX87CW is the legacy x87 extended-precision control word.
	KindX87CW

	numKinds
)

// String returns the register's conventional name as used in diagnostics.
func (k RegisterKind) String() string {
	switch k {
	case KindMXCSR:
		return "MXCSR"
	case KindX87CW:
		return "FPUCW"
	}
	return "unknown"
}

// Pattern describes the accepted configurations for one register kind: a
// reserved-bit mask and the two control words considered sync-safe. Both
// values are equally valid.
type Pattern struct {
	Kind RegisterKind
	Mask uint16
	A    uint16
	B    uint16
}

// Accepts reports whether v matches either accepted configuration once
// the bits outside Mask are discarded.
func (p Pattern) Accepts(v uint16) bool {
	m := v & p.Mask
	return m == p.A || m == p.B
}

// patternTable holds the build-selected accepted patterns; the constants
// come from patterns_std.go or patterns_snan.go.
var patternTable = [numKinds]Pattern{
	KindMXCSR: {Kind: KindMXCSR, Mask: mxcsrMask, A: mxcsrA, B: mxcsrB},
	KindX87CW: {Kind: KindX87CW, Mask: x87Mask, A: x87A, B: x87B},
}

// PatternFor returns the accepted pattern for k under the active table.
func PatternFor(k RegisterKind) Pattern {
	return patternTable[k]
}

// Env is a snapshot of the calling thread's floating-point control
// state. Only the registers named by Kinds carry meaning; the guard
// never inspects the others.
type Env struct {
	MXCSR uint16
	X87CW uint16
}

// Value returns the snapshot's control word for the given register kind.
func (e Env) Value(k RegisterKind) uint16 {
	if k == KindX87CW {
		return e.X87CW
	}
	return e.MXCSR
}
