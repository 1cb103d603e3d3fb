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

package operation

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/replacerc/pkg/log"
	"github.com/walteh/replacerc/pkg/status"
	"github.com/walteh/replacerc/pkg/text"
	"github.com/walteh/replacerc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run implements Operator.Run
func (o *operator) Run(ctx context.Context) (*status.Report, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", o.root).Msg("rewriting candidate files")

	if err := walk.CheckRoot(o.root); err != nil {
		return nil, errors.Errorf("checking root: %w", err)
	}

	out := o.logger
	if out == nil {
		out = log.FromContext(ctx)
	}

	report := &status.Report{}

	for path, err := range walk.Candidates(ctx, o.root, o.matcher) {
		if ctx.Err() != nil {
			break
		}

		var res status.FileResult
		if err != nil {
			res = status.FileResult{Path: path, Status: status.StatusFailed, Err: err}
			out.LogFileOperation(ctx, log.FileOperation{Path: path, Status: res.Status, Err: err})
		} else {
			res = o.processFile(ctx, out, path)
		}
		report.Add(res)
	}

	out.Summary(report)

	if ctx.Err() != nil {
		return report, errors.Errorf("run interrupted: %w", ctx.Err())
	}

	if err := report.Err(); err != nil {
		return report, err
	}

	return report, nil
}

// 📄 processFile reads, transforms and conditionally rewrites a single file
func (o *operator) processFile(ctx context.Context, out *log.Logger, path string) status.FileResult {
	res := status.FileResult{Path: path}

	fail := func(err error) status.FileResult {
		res.Status = status.StatusFailed
		res.Err = err
		out.LogFileOperation(ctx, log.FileOperation{Path: path, Status: res.Status, Err: err})
		return res
	}

	content, err := o.files.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}

	result, err := o.replacer.ReplaceText(ctx, bytes.NewReader(content), o.rules)
	if err != nil {
		return fail(errors.Errorf("replacing text: %w", err))
	}

	if !result.WasModified {
		res.Status = status.StatusUnchanged
		out.LogFileOperation(ctx, log.FileOperation{Path: path, Status: res.Status})
		return res
	}

	if err := o.files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		return fail(err)
	}

	res.Status = status.StatusUpdated
	res.Replacements = result.ReplacementCount

	op := log.FileOperation{
		Path:         path,
		Status:       res.Status,
		Replacements: res.Replacements,
	}
	if out.Zerolog().GetLevel() <= zerolog.DebugLevel {
		op.Diff = text.Diff(string(result.OriginalContent), string(result.ModifiedContent))
	}
	out.LogFileOperation(ctx, op)

	return res
}
