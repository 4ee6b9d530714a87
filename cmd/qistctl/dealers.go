package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/listctl"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func newDealersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "dealers", Short: "Manage dealer registrations"}
	cmd.AddCommand(newDealersListCmd())
	cmd.AddCommand(newDealersGetCmd())
	cmd.AddCommand(newDealersApproveCmd())
	cmd.AddCommand(newDealersBulkApproveCmd())
	cmd.AddCommand(newDealersAgreementCmd())
	return cmd
}

func newDealersListCmd() *cobra.Command {
	var (
		page, limit int
		search, ord string
		sortBy      string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dealers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			def, err := a.screenDef("dealers")
			if err != nil {
				return err
			}
			q := sdk.ListQuery{Page: page, Limit: limit, Search: search, Sort: sortBy, Order: ord}
			if sortBy == "" {
				q.Sort = def.DefaultSort
			}
			ctl := listctl.New(listctl.Config[row]{
				Fetch:    fetcher(a.cli.ListDealers),
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
	return cmd
}

func newDealersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one dealer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			d, err := a.cli.GetDealer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func newDealersApproveCmd() *cobra.Command {
	var revoke bool
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve or revoke a dealer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			id := args[0]
			ctl := listctl.New(listctl.Config[row]{
				Fetch:    fetcher(a.cli.ListDealers),
				RowID:    rowID,
				Notifier: a.notifier,
				Logger:   a.logger,
				Query:    sdk.ListQuery{Page: 1, Limit: 100},
			})
			if err := ctl.Refresh(cmd.Context()); err != nil {
				return err
			}
			var d sdk.Dealer
			call := func(ctx context.Context) error {
				var err error
				d, err = a.cli.SetDealerApproval(ctx, id, !revoke)
				return err
			}
			// Flip the loaded row first; Optimistic rolls it back if the
			// call fails. Dealers beyond the loaded page go straight out.
			err = ctl.Optimistic(cmd.Context(), id, func(r *row) {
				(*r)["isApproved"] = strconv.FormatBool(!revoke)
			}, call)
			if errors.Is(err, listctl.ErrRowNotVisible) {
				err = call(cmd.Context())
			}
			if err != nil {
				return err
			}
			if d.IsApproved {
				a.notifier.Successf("dealer %s approved", d.ShopName)
			} else {
				a.notifier.Successf("dealer %s approval revoked", d.ShopName)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "revoke the approval instead")
	return cmd
}

func newDealersBulkApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-approve <id>...",
		Short: "Approve several dealers at once",
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
				Fetch: fetcher(a.cli.ListDealers),
				RowID: rowID,
				Bulk: map[string]listctl.BulkFunc{
					"approve": func(ctx context.Context, ids []string) error {
						return a.cli.BulkApproveDealers(ctx, ids)
					},
				},
				Confirm:  a.confirmer(),
				Notifier: a.notifier,
				Logger:   a.logger,
			})
			for _, id := range args {
				ctl.ToggleRow(id, true)
			}
			return ctl.BulkAction(cmd.Context(), "approve")
		},
	}
}

func newDealersAgreementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agreement <id> <file>",
		Short: "Upload a dealer agreement image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			up, err := imageUpload("agreement", args[1])
			if err != nil {
				return err
			}
			d, err := a.cli.UploadDealerAgreement(cmd.Context(), args[0], *up)
			if err != nil {
				return err
			}
			a.notifier.Successf("agreement stored for %s", d.ShopName)
			return nil
		},
	}
}
