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
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/cmd/recolor/commands"
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/fileio"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/operation"
)

// rootOpts holds the flags shared by the root command
type rootOpts struct {
	configFile  string
	paletteName string
	debug       bool
}

// newRootCmd builds the recolor command tree writing to the given streams
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "recolor [path]",
		Short: "Swap a color palette inside a static HTML file",
		Long: `recolor rewrites one file in place, replacing literal color values
(hex and rgba prefixes) according to an ordered replacement table.

The file is replaced atomically; a run that matches nothing still succeeds.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), opts.debug, stdout, stderr)

			cfg, err := opts.loadConfig(ctx, cmd, args)
			if err != nil {
				return err
			}

			rules, err := cfg.Rules()
			if err != nil {
				return errors.Errorf("building rules: %w", err)
			}

			log.FromContext(ctx).Header("recoloring " + cfg.Target)

			_, err = operation.Run(ctx, operation.Options{
				Target:  cfg.Target,
				Rules:   rules,
				Message: cfg.Message,
				Files:   fileio.New(""),
			})
			if err != nil {
				return errors.Errorf("recoloring %s: %w", cfg.Target, err)
			}
			return nil
		},
	}

	addRootFlags(cmd, opts)

	cmd.AddCommand(
		commands.NewPalettesCmd(stdout),
		commands.NewVersionCmd(stdout),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "config file path (.yaml, .hcl or .json)")
	cmd.Flags().StringVarP(&opts.paletteName, "palette", "p", "", "built-in palette to apply")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

// loadConfig merges the config file, flags and positional path
func (o *rootOpts) loadConfig(ctx context.Context, cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(ctx, o.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("palette") {
		cfg.Palette = o.paletteName
		cfg.Replacements = nil
		cfg.Message = ""
	}
	if len(args) == 1 {
		cfg.Target = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("resolved configuration")
	return cfg, nil
}

// setupLogging attaches a zerolog logger on stderr and the console logger on stdout
func setupLogging(ctx context.Context, debug bool, stdout, stderr io.Writer) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return log.NewContext(ctx, log.New(stdout, zlog))
}
