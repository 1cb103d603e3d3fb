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

package status

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📄 FileResult is the outcome for one candidate file
type FileResult struct {
	Path         string     // Path as produced by the walk
	Status       FileStatus // Final status
	Replacements int        // Number of replacements written
	Err          error      // Set when Status is StatusFailed
}

// 📈 Report collects the results of a run in walk order
type Report struct {
	Results []FileResult
}

// Add appends a result
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

func (r *Report) filter(s FileStatus) []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.Status == s {
			out = append(out, res)
		}
	}
	return out
}

// Updated returns the files that were rewritten
func (r *Report) Updated() []FileResult { return r.filter(StatusUpdated) }

// Unchanged returns the candidates left untouched
func (r *Report) Unchanged() []FileResult { return r.filter(StatusUnchanged) }

// Failed returns the candidates that could not be processed
func (r *Report) Failed() []FileResult { return r.filter(StatusFailed) }

// Err returns an aggregate error naming every failed entry, or nil
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	lines := make([]string, 0, len(failed))
	for _, f := range failed {
		lines = append(lines, fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
	return errors.Errorf("%d of %d entries failed:\n  %s", len(failed), len(r.Results), strings.Join(lines, "\n  "))
}
