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

// Package fpguard verifies that the calling thread's hardware
// floating-point control registers are in one of a small set of
// sync-safe configurations, and forcibly corrects them if not.
//
// Distributed lockstep simulations require every participant to produce
// bit-identical floating-point results. A stray change to rounding mode,
// precision control, or the exception masks (commonly left behind by
// drivers, audio libraries, or foreign code called over FFI) silently
// desyncs the simulation. Verify is meant to be called at the top of
// every simulation step, on every thread that does simulation math:
//
//	fpguard.Verify("SimFrame")
//
// A mismatch is not an error. It is reported at warning level and the
// whole floating-point environment is reset to the canonical
// single-precision mode, so the next check on the same thread passes.
//
// # Register layouts
//
// Two register kinds are modeled. The MXCSR vector-unit control/status
// register (low 16 bits):
//
//	         FZ RC RC PM UM OM ZM DM IM Rsvd PE UE OE ZE DE IE
//	         15 14 13 12 11 10  9  8  7   6   5  4  3  2  1  0
//	SimFrame  0  0  0  1  1  1  0  1  0   0   0  0  0  0  0  0  = 0x1D00
//	Default   0  0  0  1  1  1  1  1  1   0   0  0  0  0  0  0  = 0x1F80
//	Mask      1  1  1  1  1  1  1  1  1   0   0  0  0  0  0  0  = 0xFF80
//
// And the x87 control word:
//
//	         Rsvd Rsvd Rsvd  X RC RC PC PC Rsvd Rsvd PM UM OM ZM DM IM
//	          15   14   13  12 11 10  9  8   7    6   5  4  3  2  1  0
//	SimFrame   0    0    0   0  0  0  0  0   0    0   1  1  1  0  1  0  = 0x003A
//	Default    0    0    0   0  0  0  0  0   0    0   1  1  1  1  1  1  = 0x003F
//	Mask       0    0    0   1  1  1  1  1   0    0   1  1  1  1  1  1  = 0x1F3F
//
// FZ is flush-to-zero, RC rounding control, PC precision control, and
// the PM..IM bits mask the precision, underflow, overflow, divide-by-
// zero, denormal and invalid exceptions. The comparison masks discard
// reserved bits and, for MXCSR, the sticky exception flags (PE..IE),
// which carry no determinism signal. Source: Intel SDM Vol. 1.
//
// Both accepted values of a kind are equally valid; they differ only in
// which exceptions stay masked at different call sites of the wider
// simulation. Builds with the snantrap tag use an alternate table in
// which the invalid, divide-by-zero and overflow exceptions are
// unmasked, and the corrector re-arms those conditions after a reset so
// that signaling NaNs trap instead of propagating.
//
// # Register models
//
// The set of register kinds present is fixed at build time: both kinds
// on amd64 by default, MXCSR only under the fpguard_sseonly tag, the x87
// control word only under fpguard_x87only. On other platforms (or with
// the noasm tag) the capability is absent entirely and Verify is a
// no-op; there is no runtime fallback.
//
// # Threads
//
// Control registers are per-thread state. A check on one thread says
// nothing about any other, and Go moves goroutines between threads
// freely, so simulation goroutines are expected to pin themselves with
// runtime.LockOSThread before relying on the guard.
package fpguard
