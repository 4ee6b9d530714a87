package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/sdk/client"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "View or update the admin profile"}
	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileUpdateCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			p, err := a.cli.Profile(cmd.Context())
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func newProfileUpdateCmd() *cobra.Command {
	var fullName, picture string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			var up *client.Upload
			if picture != "" {
				up, err = imageUpload("profilePicture", picture)
				if err != nil {
					return err
				}
			}
			p, err := a.cli.UpdateProfile(cmd.Context(), fullName, up)
			if err != nil {
				return err
			}
			a.notifier.Successf("profile updated for %s", p.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&picture, "picture", "", "path of a profile picture to resize and upload")
	return cmd
}
