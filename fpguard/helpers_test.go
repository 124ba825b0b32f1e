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

import (
	"fmt"
	"testing"
)

// fakeSupport stands in for the hardware primitives so Verify scenarios
// run on any platform and under any initial register state.
type fakeSupport struct {
	env    Env
	resets int
	raised Exceptions
}

func (f *fakeSupport) ReadEnv() Env { return f.env }

func (f *fakeSupport) SetSinglePrecision() {
	f.env = Env{MXCSR: canonicalMXCSR, X87CW: canonicalX87CW}
	f.resets++
}

func (f *fakeSupport) RaiseExceptions(e Exceptions) { f.raised |= e }

// recordLogger captures formatted warnings.
type recordLogger struct {
	lines []string
}

func (l *recordLogger) Warnf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// withGuard installs a fake support and logger for the duration of a
// test, with both register kinds present.
func withGuard(t *testing.T, env Env) (*fakeSupport, *recordLogger) {
	t.Helper()
	fs := &fakeSupport{env: env}
	rl := &recordLogger{}
	prevKinds, prevSupport, prevLogger := activeKinds, support, logger
	activeKinds = []RegisterKind{KindMXCSR, KindX87CW}
	support = fs
	logger = rl
	t.Cleanup(func() {
		activeKinds, support, logger = prevKinds, prevSupport, prevLogger
	})
	return fs, rl
}
