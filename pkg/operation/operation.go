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
	"context"

	"github.com/walteh/replacerc/pkg/config"
	"github.com/walteh/replacerc/pkg/log"
	"github.com/walteh/replacerc/pkg/status"
	"github.com/walteh/replacerc/pkg/text"
	"github.com/walteh/replacerc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for replacerc operations
type Operator interface {
	// Run rewrites every candidate below the configured root.
	// The report is returned even when some files failed.
	Run(ctx context.Context) (*status.Report, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config holds root, suffixes and replacements
	Config *config.Config
	// Files reads and writes candidates, defaults to the local disk
	Files status.FileManager
	// Replacer applies the replacements, defaults to SimpleTextReplacer
	Replacer text.TextReplacer
	// Logger reports every file outcome, defaults to log.FromContext at Run
	Logger *log.Logger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		opts.Files = status.NewDiskManager()
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	rules := make([]text.ReplacementRule, 0, len(opts.Config.Replacements))
	for _, r := range opts.Config.Replacements {
		rules = append(rules, text.ReplacementRule{FromText: r.Old, ToText: r.New})
	}
	if err := opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	matcher, err := walk.NewSuffixMatcher(opts.Config.Suffixes)
	if err != nil {
		return nil, errors.Errorf("building matcher: %w", err)
	}

	return &operator{
		root:     opts.Config.Root,
		matcher:  matcher,
		rules:    rules,
		files:    opts.Files,
		replacer: opts.Replacer,
		logger:   opts.Logger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	root     string
	matcher  *walk.Matcher
	rules    []text.ReplacementRule
	files    status.FileManager
	replacer text.TextReplacer
	logger   *log.Logger
}
