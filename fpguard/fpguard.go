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

package fpguard

import "runtime"

// Exceptions is a set of floating-point exception conditions. The bit
// positions match the exception flag bits shared by the low byte of the
// MXCSR and x87 status registers.
type Exceptions uint8

const (
	ExcInvalid   Exceptions = 1 << 0
	ExcDenormal  Exceptions = 1 << 1
	ExcDivByZero Exceptions = 1 << 2
	ExcOverflow  Exceptions = 1 << 3
	ExcUnderflow Exceptions = 1 << 4
	ExcPrecision Exceptions = 1 << 5
)

// Support supplies the hardware floating-point primitives the guard is
// built on. The build-selected default reads and writes the real control
// registers of the calling thread.
type Support interface {
	// ReadEnv captures the calling thread's control state.
	ReadEnv() Env
	// SetSinglePrecision resets the whole floating-point environment to
	// the canonical single-precision mode.
	SetSinglePrecision()
	// RaiseExceptions raises the given exception conditions so that the
	// next floating-point operation traps rather than propagating
	// special values.
	RaiseExceptions(Exceptions)
}

// activeKinds and support are fixed by the build-selected model files
// (model_*.go) and never change afterwards.
var (
	activeKinds []RegisterKind
	support     Support
)

// Kinds returns the register kinds present in this build. An empty
// result means the guard is absent and Verify is a no-op.
func Kinds() []RegisterKind {
	out := make([]RegisterKind, len(activeKinds))
	copy(out, activeKinds)
	return out
}

// Snapshot captures the calling thread's current control state. ok is
// false when the build carries no register model.
func Snapshot() (env Env, ok bool) {
	if support == nil {
		return Env{}, false
	}
	return support.ReadEnv(), true
}

// Verify checks the calling thread's floating-point control registers
// against the accepted sync-safe configurations. Every mismatched
// register kind is reported at warning level with the observed and
// accepted values; any mismatch then triggers a single reset of the full
// environment to the canonical single-precision mode. In snantrap builds
// the invalid, divide-by-zero and overflow conditions are re-armed after
// the reset.
//
// context is free text identifying the call site, e.g. "SimFrame". The
// call cannot fail: a clean state is left untouched, a dirty state is
// corrected.
func Verify(context string) {
	if support == nil || len(activeKinds) == 0 {
		return
	}
	env := support.ReadEnv()
	mismatched := false
	for _, k := range activeKinds {
		p := PatternFor(k)
		if p.Accepts(env.Value(k)) {
			continue
		}
		mismatched = true
		report(k, env.Value(k), p, context)
	}
	if !mismatched {
		return
	}
	support.SetSinglePrecision()
	if snanTrapEnabled {
		support.RaiseExceptions(ExcInvalid | ExcDivByZero | ExcOverflow)
	}
}

// report emits one warning for a mismatched register kind.
func report(k RegisterKind, got uint16, p Pattern, context string) {
	logger.Warnf("[%s] sync warning: %s 0x%04X instead of 0x%04X or 0x%04X (%q)",
		callerName(), k, got, p.A, p.B, context)
}

// callerName resolves the function that invoked Verify.
func callerName() string {
	// report <- Verify <- caller
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "fpguard"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "fpguard"
	}
	return fn.Name()
}
