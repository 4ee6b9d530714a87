package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Admin API and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "email: ")
				fmt.Fscanln(cmd.InOrStdin(), &email)
			}
			if password == "" {
				password, err = promptSecret("password: ")
				if err != nil {
					return err
				}
			}
			if err := a.sess.Login(cmd.Context(), a.cli, email, password); err != nil {
				return err
			}
			claims := a.sess.Claims()
			a.notifier.Successf("logged in as %s", claims.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			a.sess.Logout()
			a.notifier.Infof("logged out")
			return nil
		},
	}
}

// promptSecret reads a password without echo when stdin is a terminal.
func promptSecret(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	var s string
	fmt.Fscanln(os.Stdin, &s)
	return s, nil
}
