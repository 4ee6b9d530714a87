package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/session"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			claims := a.sess.Claims()
			if a.sess.State() != session.Authenticated {
				// Flag/env token sessions have no stored claims; ask the API.
				p, err := a.cli.Profile(cmd.Context())
				if err != nil {
					return err
				}
				claims = session.UnverifiedClaims{
					AdminID:  p.ID,
					FullName: p.FullName,
					Email:    p.Email,
					IsSuper:  p.IsSuper,
					IsAdmin:  p.IsAdmin,
					IsAccess: p.IsAccess,
				}
			}
			format, _ := cmd.Root().PersistentFlags().GetString("output")
			if format == "json" {
				b, err := json.MarshalIndent(claims, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"Field", "Value"})
			tw.Append([]string{"id", claims.AdminID})
			tw.Append([]string{"name", claims.FullName})
			tw.Append([]string{"email", claims.Email})
			tw.Append([]string{"super", strconv.FormatBool(claims.IsSuper)})
			tw.Append([]string{"admin", strconv.FormatBool(claims.IsAdmin)})
			tw.Append([]string{"access", strconv.FormatBool(claims.IsAccess)})
			tw.Render()
			return nil
		},
	}
}
