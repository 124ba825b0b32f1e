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

//go:build amd64 && !noasm && fpguard_x87only && !fpguard_sseonly

package fpguard

// Legacy-only register model: only the x87 control word is checked.
// Correction still resets the full environment.

func init() {
	if NoGuardEnv() {
		return
	}
	activeKinds = []RegisterKind{KindX87CW}
	support = hwSupport{}
}
