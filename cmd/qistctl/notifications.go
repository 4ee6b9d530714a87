package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "notifications", Short: "Manage admin notifications"}
	cmd.AddCommand(newNotificationsListCmd())
	cmd.AddCommand(newNotificationsReadCmd())
	cmd.AddCommand(newNotificationsReadAllCmd())
	cmd.AddCommand(newNotificationsUnreadCountCmd())
	return cmd
}

func newNotificationsListCmd() *cobra.Command {
	var (
		page, limit int
		status      string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			def, err := a.screenDef("notifications")
			if err != nil {
				return err
			}
			res, err := a.cli.ListNotifications(cmd.Context(), status, page, limit)
			if err != nil {
				return err
			}
			return a.printPage(def, toRows(res.Data), res.Pagination)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size (10|20|50|100)")
	cmd.Flags().StringVar(&status, "status", "all", "filter (all|read|unread)")
	return cmd
}

func newNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.cli.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.notifier.Successf("notification %s marked read", args[0])
			return nil
		},
	}
}

func newNotificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.cli.MarkAllNotificationsRead(cmd.Context()); err != nil {
				return err
			}
			a.notifier.Successf("all notifications marked read")
			return nil
		},
	}
}

func newNotificationsUnreadCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unread-count",
		Short: "Print the number of unread notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			n, err := a.cli.UnreadNotificationCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
