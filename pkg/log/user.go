// Copyright 2025 walteh LLC
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

package log

import (
	"github.com/pterm/pterm"
)

// 🔍 Validation prints the final verdict of a run for humans
func (l *Logger) Validation(valid bool, description string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case valid:
		pterm.Success.WithWriter(l.diag).Println(description)
		l.zlog.Info().Msg(description)
	case err != nil:
		pterm.Error.WithWriter(l.diag).Println(description)
		pterm.Error.WithWriter(l.diag).Println(err)
		l.zlog.Error().Err(err).Msg(description)
	default:
		pterm.Warning.WithWriter(l.diag).Println(description)
		l.zlog.Warn().Msg(description)
	}
}
