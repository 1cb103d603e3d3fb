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

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/replacerc/pkg/config"
	"github.com/walteh/replacerc/pkg/log"
	"github.com/walteh/replacerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// handler holds the flags and outputs of a single invocation
type handler struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer

	// loadConfig defaults to config.Default
	loadConfig func() (*config.Config, error)
}

// newRootCmd creates the replacerc command tree
func newRootCmd(h *handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replacerc",
		Short: "Rewrite demo image paths in TypeScript sources",
		Long: `replacerc walks ./src, rewrites every .ts and .tsx file that references
/images/demo/ to use https://img.cartepostale.cool/demo/ instead, and
prints one line per file it changed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.run(cmd)
		},
	}

	addRootFlags(cmd, h)
	cmd.SetOut(h.stdout)
	cmd.SetErr(h.stderr)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, h *handler) {
	cmd.PersistentFlags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the structured logger based on flags
func (h *handler) setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(h.stderr).Level(level).With().Timestamp().Logger()
}

func (h *handler) run(cmd *cobra.Command) error {
	zlog := h.setupLogging()
	ctx := zlog.WithContext(cmd.Context())

	logger := log.New(h.stdout, h.stderr, zlog)
	ctx = log.NewContext(ctx, logger)

	load := h.loadConfig
	if load == nil {
		load = config.Default
	}

	cfg, err := load()
	if err != nil {
		err = errors.Errorf("loading config: %w", err)
		logger.Validation(false, "Failed to initialize", err)
		return err
	}

	logger.Header("replacerc " + cfg.String())

	op, err := operation.New(operation.Options{
		Config: cfg,
	})
	if err != nil {
		err = errors.Errorf("creating operation: %w", err)
		logger.Validation(false, "Failed to initialize", err)
		return err
	}

	report, err := op.Run(ctx)
	if err != nil {
		logger.Validation(false, "Run failed", err)
		return err
	}

	logger.Validation(true, fmt.Sprintf("%d of %d files updated", len(report.Updated()), len(report.Results)), nil)

	return nil
}
