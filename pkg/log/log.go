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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/replacerc/pkg/status"
)

// 🎯 FileOperation represents what happened to one file
type FileOperation struct {
	Path         string            // File path
	Status       status.FileStatus // Outcome
	Replacements int               // Number of replacements made
	Diff         string            // Patch of the change, debug only
	Err          error             // Failure cause
}

// 🎯 Logger pairs console notifications with structured logging
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer // per-file notifications
	diag    io.Writer // verdicts and failures
	mu      sync.Mutex
}

// 🏭 New creates a new logger.
// Notifications for rewritten files go to console, everything else to diag.
func New(console, diag io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		diag:    diag,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileOperation reports a file outcome.
// Only updated and failed files reach the console.
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch op.Status {
	case status.StatusUpdated:
		fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgBlue).Sprint("Updated"), op.Path)

		ev := l.zlog.Info().
			Str("file", op.Path).
			Str("status", op.Status.String()).
			Int("replacements", op.Replacements)
		if op.Diff != "" && l.zlog.GetLevel() <= zerolog.DebugLevel {
			ev = ev.Str("diff", op.Diff)
		}
		ev.Msg("file updated")
	case status.StatusFailed:
		fmt.Fprintf(l.diag, "%s %s: %v\n", color.New(color.FgRed).Sprint("Failed"), op.Path, op.Err)

		l.zlog.Error().
			Err(op.Err).
			Str("file", op.Path).
			Str("status", op.Status.String()).
			Msg("file failed")
	default:
		l.zlog.Debug().
			Str("file", op.Path).
			Str("status", op.Status.String()).
			Msg("file unchanged")
	}
}

// 📝 Header logs the start of a run
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Info().Msg(msg)
}

// 📝 Summary logs the totals of a finished run
func (l *Logger) Summary(report *status.Report) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Info().
		Int("candidates", len(report.Results)).
		Int("updated", len(report.Updated())).
		Int("unchanged", len(report.Unchanged())).
		Int("failed", len(report.Failed())).
		Msg("run complete")
}

// Zerolog returns the structured logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}
