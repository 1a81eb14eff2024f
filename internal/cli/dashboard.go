// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/records-dashboard/internal/client"
	"github.com/MKhiriev/records-dashboard/models"
)

func newDashboardCommand(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withApp(cmd.Context(), func(app *client.App) error {
				var reviewed []models.RecordSource
				err := app.RunDashboard(cmd.Context(), func(src models.RecordSource) {
					if !slices.Contains(reviewed, src) {
						reviewed = append(reviewed, src)
					}
				})
				if err != nil {
					return err
				}

				for _, src := range reviewed {
					fmt.Fprintf(cmd.OutOrStdout(), "review %s: %s\n", src.Noun, app.ReviewURL(src))
				}
				return nil
			})
		},
	}
}
