// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the records dashboard commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/records-dashboard/internal/client"
	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/utils"
)

// BuildInfo is stamped into the binary with -ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// openApp is replaced in tests to share storage between invocations.
var openApp = client.NewApp

// cliState carries state shared by the commands of one invocation.
type cliState struct {
	flagCfg *config.StructuredConfig
	cfg     *config.ClientConfig
	logger  *logger.Logger
}

// NewRootCommand builds the command tree.
//
// Configuration is loaded once, before any subcommand runs. A missing
// endpoint or key aborts the invocation with a [*config.ConfigurationError].
func NewRootCommand(log *logger.Logger, build BuildInfo) *cobra.Command {
	if log == nil {
		log = logger.Nop()
	}
	rt := &cliState{logger: log}

	rootCmd := &cobra.Command{
		Use:           "records-dashboard",
		Short:         "Dashboard of incomplete backend records",
		Long:          "records-dashboard counts rows that still miss required data on the backend and shows them as review banners.",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(rt.flagCfg)
			if err != nil {
				return err
			}
			rt.cfg = cfg
			cmd.SetContext(rt.commandLogger(cmd).WithContext(cmd.Context()))
			return nil
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("records-dashboard %s (built %s, commit %s)\n", build.Version, build.Date, build.Commit))

	rt.flagCfg = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newDashboardCommand(rt),
		newPendingCommand(rt),
		newSessionCommand(rt),
	)

	return rootCmd
}

// Execute runs the command tree with args taken from os.Args.
func Execute(ctx context.Context, log *logger.Logger, build BuildInfo) error {
	return NewRootCommand(log, build).ExecuteContext(ctx)
}

// commandLogger returns a child logger tagging every entry of this
// invocation with the command path and a run id.
func (rt *cliState) commandLogger(cmd *cobra.Command) *logger.Logger {
	l := rt.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", cmd.CommandPath()).Str("run_id", utils.NewRequestID())
	})
	return l
}

func (rt *cliState) withApp(ctx context.Context, fn func(app *client.App) error) error {
	app, err := openApp(ctx, rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			rt.logger.Err(closeErr).Str("func", "cliState.withApp").Msg("failed to close app")
		}
	}()

	return fn(app)
}
