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

import "github.com/sirupsen/logrus"

// Logger receives mismatch reports. The guard only ever logs at warning
// level and never depends on the outcome: reporting is fire-and-forget.
type Logger interface {
	Warnf(format string, args ...any)
}

var logger Logger = logrus.StandardLogger()

// SetLogger replaces the reporting collaborator. Passing nil restores
// the default logrus standard logger. Configure before the first Verify;
// the guard does not synchronize logger swaps against concurrent checks.
func SetLogger(l Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}
