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

//go:build !amd64 || noasm

// Package asm provides the amd64 floating-point control-register
// primitives behind the fpguard package.
package asm

// Stub implementations for builds without a supported register model.
// These should never be called - the fpguard package is a no-op there.

// ReadMXCSR stub for non-amd64 platforms.
func ReadMXCSR() uint32 {
	panic("fpguard/asm: MXCSR not available")
}

// WriteMXCSR stub for non-amd64 platforms.
func WriteMXCSR(v uint32) {
	panic("fpguard/asm: MXCSR not available")
}

// ReadX87CW stub for non-amd64 platforms.
func ReadX87CW() uint16 {
	panic("fpguard/asm: x87 control word not available")
}

// WriteX87CW stub for non-amd64 platforms.
func WriteX87CW(v uint16) {
	panic("fpguard/asm: x87 control word not available")
}

// RaiseMXCSR stub for non-amd64 platforms.
func RaiseMXCSR(flags uint32) {
	panic("fpguard/asm: MXCSR not available")
}

// RaiseX87 stub for non-amd64 platforms.
func RaiseX87(flags uint16) {
	panic("fpguard/asm: x87 status word not available")
}
