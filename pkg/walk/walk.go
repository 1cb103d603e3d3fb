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

// Package walk enumerates candidate files below a root directory.
package walk

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrRootNotFound is returned when the walk root is missing or not a directory
var ErrRootNotFound = errors.Base("root directory not found")

// errStopped ends a walk the consumer no longer wants
var errStopped = errors.Base("walk stopped by consumer")

// 🔍 Matcher decides which file names are candidates
type Matcher struct {
	patterns []string
}

// 🏭 NewSuffixMatcher builds a matcher that accepts names ending in any of suffixes
func NewSuffixMatcher(suffixes []string) (*Matcher, error) {
	if len(suffixes) == 0 {
		return nil, errors.Errorf("at least one suffix is required")
	}

	m := &Matcher{patterns: make([]string, 0, len(suffixes))}
	for _, suffix := range suffixes {
		pattern := "*" + escape(suffix)
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid suffix %q", suffix)
		}
		m.patterns = append(m.patterns, pattern)
	}
	return m, nil
}

// 🎯 Match reports whether the base name of path is a candidate
func (m *Matcher) Match(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range m.patterns {
		// patterns are validated in NewSuffixMatcher
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// escape quotes glob metacharacters so a suffix is matched literally
func escape(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

// ✅ CheckRoot verifies root exists and is a directory
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("%w: %s: %v", ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}
	return nil
}

// 📂 Candidates lazily yields every regular file below root accepted by m.
//
// Paths come out in lexical walk order. A walk error for one entry is yielded
// with that entry's path and the walk continues. Symlinks below root are never
// followed, a symlinked root is. Each call starts a fresh walk.
func Candidates(ctx context.Context, root string, m *Matcher) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := zerolog.Ctx(ctx)

		// the trailing separator makes WalkDir resolve a symlinked root
		start := root
		if !strings.HasSuffix(start, string(filepath.Separator)) {
			start += string(filepath.Separator)
		}

		err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if err != nil {
				if path == start {
					return err
				}
				if !yield(path, errors.Errorf("walking %s: %w", path, err)) {
					return errStopped
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !d.Type().IsRegular() {
				logger.Debug().Str("path", path).Str("type", d.Type().String()).Msg("skipping non-regular file")
				return nil
			}

			if !m.Match(path) {
				return nil
			}

			if !yield(path, nil) {
				return errStopped
			}
			return nil
		})

		switch {
		case err == nil, errors.Is(err, errStopped):
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			yield("", errors.Errorf("walking %s: %w", root, err))
		default:
			yield(root, errors.Errorf("walking %s: %w", root, err))
		}
	}
}
