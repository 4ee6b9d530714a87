package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/listctl"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Manage orders"}
	cmd.AddCommand(newOrdersListCmd())
	cmd.AddCommand(newOrdersGetCmd())
	cmd.AddCommand(newOrdersSetStatusCmd())
	cmd.AddCommand(newOrdersBulkCancelCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var (
		page, limit         int
		search, status, ord string
		sortBy              string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			def, err := a.screenDef("orders")
			if err != nil {
				return err
			}
			q := sdk.ListQuery{Page: page, Limit: limit, Search: search, Sort: sortBy, Order: ord}
			if sortBy == "" {
				q.Sort = def.DefaultSort
			}
			if status != "" {
				q.Extra = url.Values{"status": {status}}
			}
			ctl := listctl.New(listctl.Config[row]{
				Fetch:    fetcher(a.cli.ListOrders),
				RowID:    rowID,
				Notifier: a.notifier,
				Logger:   a.logger,
				Query:    q,
			})
			if err := ctl.Refresh(cmd.Context()); err != nil {
				return err
			}
			return a.printPage(def, ctl.Data(), ctl.Pagination())
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size (10|20|50|100)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field")
	cmd.Flags().StringVar(&ord, "order", "asc", "sort order (asc|desc)")
	cmd.Flags().StringVar(&status, "status", "", "filter by order status")
	return cmd
}

func newOrdersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			o, err := a.cli.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(o, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func newOrdersSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			id, status := args[0], args[1]
			switch status {
			case sdk.OrderPending, sdk.OrderConfirmed, sdk.OrderShipped, sdk.OrderDelivered, sdk.OrderCancelled:
			default:
				return fmt.Errorf("unknown status: %s", status)
			}
			o, err := a.cli.SetOrderStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			a.notifier.Successf("order %s is now %s", o.Number, o.Status)
			return nil
		},
	}
}

func newOrdersBulkCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-cancel <id>...",
		Short: "Cancel several orders at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctl := listctl.New(listctl.Config[row]{
				Fetch: fetcher(a.cli.ListOrders),
				RowID: rowID,
				Bulk: map[string]listctl.BulkFunc{
					"cancel": func(ctx context.Context, ids []string) error {
						return a.cli.BulkCancelOrders(ctx, ids)
					},
				},
				Confirm:  a.confirmer(),
				Notifier: a.notifier,
				Logger:   a.logger,
			})
			for _, id := range args {
				ctl.ToggleRow(id, true)
			}
			return ctl.BulkAction(cmd.Context(), "cancel")
		},
	}
}
