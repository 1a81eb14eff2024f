// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/records-dashboard/internal/client"
	"github.com/MKhiriev/records-dashboard/models"
)

func newSessionCommand(rt *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored session token",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <token>",
			Short: "Store a session token; later requests are authenticated with it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.withApp(cmd.Context(), func(app *client.App) error {
					session, err := app.Services.Session.Login(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					printSession(cmd.OutOrStdout(), session)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Describe the stored session token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return rt.withApp(cmd.Context(), func(app *client.App) error {
					session, err := app.Services.Session.Describe(cmd.Context())
					if err != nil {
						return err
					}
					printSession(cmd.OutOrStdout(), session)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored session token; later requests are anonymous",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return rt.withApp(cmd.Context(), func(app *client.App) error {
					if err := app.Services.Session.Logout(cmd.Context()); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "session cleared")
					return nil
				})
			},
		},
	)

	return cmd
}

func printSession(out io.Writer, session models.Session) {
	if !session.Present {
		fmt.Fprintln(out, "session: anonymous")
		return
	}

	fmt.Fprintf(out, "session: %s\n", session.MaskedToken())
	if session.Claims == nil {
		return
	}
	if session.Claims.Subject != "" {
		fmt.Fprintf(out, "subject: %s\n", session.Claims.Subject)
	}
	if !session.Claims.ExpiresAt.IsZero() {
		state := "valid"
		if session.Claims.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(out, "expires: %s (%s)\n", session.Claims.ExpiresAt.Format(time.RFC3339), state)
	}
}
