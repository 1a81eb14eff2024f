// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/records-dashboard/internal/client"
	"github.com/MKhiriev/records-dashboard/internal/tui"
	"github.com/MKhiriev/records-dashboard/models"
)

func newPendingCommand(rt *cliState) *cobra.Command {
	var (
		asJSON bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Print pending record banners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withApp(cmd.Context(), func(app *client.App) error {
				dashboard, err := app.Dashboard()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				pending, err := dashboard.Pending(cmd.Context())
				if err != nil {
					return err
				}
				if err = printPending(out, pending, asJSON); err != nil {
					return err
				}
				if !watch {
					return nil
				}

				return watchPending(cmd.Context(), app, out, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print counts as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reprint counts every refresh interval until interrupted")

	return cmd
}

func watchPending(ctx context.Context, app *client.App, out io.Writer, asJSON bool) error {
	job := app.Services.RefreshJob
	job.Start(ctx, app.Config.Dashboard.RefreshInterval, func(pending []models.PendingRecords, err error) {
		if err != nil {
			fmt.Fprintf(out, "refresh failed: %v\n", err)
			return
		}
		if err = printPending(out, pending, asJSON); err != nil {
			fmt.Fprintf(out, "print failed: %v\n", err)
		}
	})
	defer job.Stop()

	<-ctx.Done()
	return nil
}

func printPending(out io.Writer, pending []models.PendingRecords, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(pending)
	}

	_, err := fmt.Fprintln(out, tui.RenderPending(pending))
	return err
}
