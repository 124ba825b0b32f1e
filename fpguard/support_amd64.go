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

package fpguard

import "github.com/ajroetker/go-fpguard/fpguard/asm"

// hwSupport backs the guard with the calling thread's real amd64 control
// registers.
type hwSupport struct{}

func (hwSupport) ReadEnv() Env {
	return Env{
		MXCSR: uint16(asm.ReadMXCSR()),
		X87CW: asm.ReadX87CW(),
	}
}

// SetSinglePrecision overwrites the whole environment, rounding and
// exception masks included, not just the mismatched register.
func (hwSupport) SetSinglePrecision() {
	asm.WriteMXCSR(uint32(canonicalMXCSR))
	asm.WriteX87CW(canonicalX87CW)
}

func (hwSupport) RaiseExceptions(e Exceptions) {
	asm.RaiseMXCSR(uint32(e))
	asm.RaiseX87(uint16(e))
}
