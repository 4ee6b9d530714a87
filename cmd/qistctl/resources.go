package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/formspec"
	"github.com/clubpro-dev/qistadmin/internal/listctl"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
	"github.com/clubpro-dev/qistadmin/sdk/client"
)

// row is the rendering-friendly shape every resource is flattened to for
// the table view and the list controller.
type row = map[string]string

// binding wires one resource family to the SDK.
type binding struct {
	resource string
	fetch    func(a *appCtx) listctl.Fetcher[row]
	bulk     func(a *appCtx) map[string]listctl.BulkFunc
	// get loads the current record so update starts from its values instead
	// of an empty form. Nil means update submits only what --set provides.
	get func(a *appCtx) func(ctx context.Context, id string) (row, error)
	// submit handles create (id == "") and update. Nil disables both.
	submit func(a *appCtx, ctx context.Context, id string, values map[string]string, image string) error
	del    func(a *appCtx, ctx context.Context, id string) error
	// options loads choices for a select field; parent carries the value of
	// the field it depends on, when any.
	options func(a *appCtx, ctx context.Context, field, parent string) ([]sdk.Option, error)
}

func newResourceCmds() []*cobra.Command {
	out := make([]*cobra.Command, 0, len(bindings))
	for _, b := range bindings {
		cmd := newResourceCmd(b)
		if b.resource == "customers" {
			cmd.AddCommand(newCustomersSetBlockedCmd())
		}
		out = append(out, cmd)
	}
	return out
}

func newCustomersSetBlockedCmd() *cobra.Command {
	var unblock bool
	cmd := &cobra.Command{
		Use:   "set-blocked <id>",
		Short: "Block or unblock a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			c, err := a.cli.SetCustomerBlocked(cmd.Context(), args[0], !unblock)
			if err != nil {
				return err
			}
			if c.IsBlocked {
				a.notifier.Successf("customer %s blocked", c.FullName)
			} else {
				a.notifier.Successf("customer %s unblocked", c.FullName)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unblock, "unblock", false, "unblock instead")
	return cmd
}

func newResourceCmd(b binding) *cobra.Command {
	cmd := &cobra.Command{Use: b.resource, Short: "Manage " + b.resource}
	cmd.AddCommand(newListCmd(b))
	if b.submit != nil {
		cmd.AddCommand(newSubmitCmd(b, false))
		cmd.AddCommand(newSubmitCmd(b, true))
	}
	if b.del != nil {
		cmd.AddCommand(newDeleteCmd(b))
	}
	if b.bulk != nil {
		for _, kind := range bulkKinds(b) {
			cmd.AddCommand(newBulkCmd(b, kind))
		}
	}
	return cmd
}

func bulkKinds(b binding) []string {
	kinds := make([]string, 0)
	for k := range b.bulk(nil) {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newListCmd(b binding) *cobra.Command {
	var (
		page, limit         int
		search, sortBy, ord string
		filters             []string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + b.resource,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			def, err := a.screenDef(b.resource)
			if err != nil {
				return err
			}
			q := sdk.ListQuery{Page: page, Limit: limit, Search: search, Sort: sortBy, Order: ord}
			if sortBy == "" {
				q.Sort = def.DefaultSort
			}
			for _, f := range filters {
				k, v, ok := strings.Cut(f, "=")
				if !ok {
					return fmt.Errorf("bad --filter %q, want key=value", f)
				}
				if q.Extra == nil {
					q.Extra = url.Values{}
				}
				q.Extra.Set(k, v)
			}
			ctl := listctl.New(listctl.Config[row]{
				Fetch:    b.fetch(a),
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
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "screen filter key=value (repeatable)")
	return cmd
}

func newSubmitCmd(b binding, update bool) *cobra.Command {
	var (
		sets  []string
		image string
	)
	use, short := "create", "Create a "+strings.TrimSuffix(b.resource, "s")
	if update {
		use, short = "update <id>", "Update a "+strings.TrimSuffix(b.resource, "s")
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  submitArgs(update),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			def, err := a.screenDef(b.resource)
			if err != nil {
				return err
			}
			id := ""
			if update {
				id = args[0]
			}
			var defaults row
			if update && b.get != nil {
				defaults, err = b.get(a)(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			form, err := buildForm(a, cmd.Context(), b, def.Fields, defaults, sets)
			if err != nil {
				return err
			}
			err = form.Submit(cmd.Context(), func(ctx context.Context, values map[string]string) error {
				return b.submit(a, ctx, id, values, image)
			})
			if err != nil {
				for name, msg := range form.Errors() {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", name, msg)
				}
				return err
			}
			a.notifier.Successf("%s saved", strings.TrimSuffix(b.resource, "s"))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as name=value (repeatable)")
	cmd.Flags().StringVar(&image, "image", "", "path of an image to resize and upload")
	return cmd
}

func submitArgs(update bool) cobra.PositionalArgs {
	if update {
		return cobra.ExactArgs(1)
	}
	return cobra.NoArgs
}

// buildForm seeds the form from the current record (on update), populates
// select options, then applies the --set pairs in field declaration order so
// parents land before their dependents.
func buildForm(a *appCtx, ctx context.Context, b binding, fields []formspec.Field, defaults row, sets []string) (*formspec.Form, error) {
	overrides := map[string]string{}
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("bad --set %q, want name=value", s)
		}
		overrides[k] = v
	}
	values := map[string]string{}
	for k, v := range defaults {
		values[k] = v
	}
	for k, v := range overrides {
		values[k] = v
	}
	// The definition's field slice is shared; work on a copy so option
	// population does not leak between invocations.
	fields = append([]formspec.Field(nil), fields...)
	if b.options != nil {
		for i, f := range fields {
			sel, ok := f.(formspec.Select)
			if !ok || len(sel.Options) > 0 {
				continue
			}
			opts, err := b.options(a, ctx, sel.FieldName, values[sel.DependsOn])
			if err != nil {
				return nil, err
			}
			sel.Options = opts
			fields[i] = sel
		}
	}
	seed := make(map[string]any, len(defaults))
	for k, v := range defaults {
		seed[k] = v
	}
	form := formspec.New(fields, seed)
	if b.options != nil {
		for _, f := range fields {
			sel, ok := f.(formspec.Select)
			if !ok || sel.DependsOn == "" {
				continue
			}
			name := sel.FieldName
			form.SetLoader(name, func(ctx context.Context, parent string) ([]sdk.Option, error) {
				return b.options(a, ctx, name, parent)
			})
		}
	}
	for _, f := range fields {
		if v, ok := overrides[f.Name()]; ok {
			if err := form.Set(ctx, f.Name(), v); err != nil {
				return nil, err
			}
		}
	}
	return form, nil
}

func newDeleteCmd(b binding) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one " + strings.TrimSuffix(b.resource, "s"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppCtx(cmd)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if !a.confirmer().Confirm("delete " + args[0] + "?") {
				return nil
			}
			if err := b.del(a, cmd.Context(), args[0]); err != nil {
				return err
			}
			a.notifier.Successf("deleted %s", args[0])
			return nil
		},
	}
}

func newBulkCmd(b binding, kind string) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-" + kind + " <id>...",
		Short: "Bulk " + kind + " " + b.resource,
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
				Fetch:    b.fetch(a),
				RowID:    rowID,
				Bulk:     b.bulk(a),
				Confirm:  a.confirmer(),
				Notifier: a.notifier,
				Logger:   a.logger,
			})
			for _, id := range args {
				ctl.ToggleRow(id, true)
			}
			return ctl.BulkAction(cmd.Context(), kind)
		},
	}
}

func rowID(r row) string { return r["id"] }

// toRows flattens typed records through their JSON form so the table
// renderer and controller share one shape with the wire format.
func toRows[T any](items []T) []row {
	out := make([]row, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			continue
		}
		r := row{}
		for k, v := range m {
			r[k] = stringify(v)
		}
		out = append(out, r)
	}
	return out
}

// toRow flattens a single record the same way toRows does a page.
func toRow[T any](v T) row {
	rs := toRows([]T{v})
	if len(rs) == 0 {
		return row{}
	}
	return rs[0]
}

func getter[T any](get func(ctx context.Context, id string) (T, error)) func(ctx context.Context, id string) (row, error) {
	return func(ctx context.Context, id string) (row, error) {
		v, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return toRow(v), nil
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(x)
	}
}

func adaptPage[T any](res sdk.PageResult[T]) sdk.PageResult[row] {
	return sdk.PageResult[row]{Data: toRows(res.Data), Pagination: res.Pagination}
}

func fetcher[T any](list func(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[T], error)) listctl.Fetcher[row] {
	return func(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[row], error) {
		res, err := list(ctx, q)
		if err != nil {
			return sdk.PageResult[row]{}, err
		}
		return adaptPage(res), nil
	}
}

func parseBoolValue(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

var bindings = []binding{
	{
		resource: "brands",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetBrand)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListBrands)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteBrands(ctx, ids)
				},
			}
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, image string) error {
			in := client.BrandInput{Name: values["name"], IsActive: parseBoolValue(values["isActive"])}
			if image != "" {
				up, err := imageUpload("logo", image)
				if err != nil {
					return err
				}
				in.Logo = up
			}
			var err error
			if id == "" {
				_, err = a.cli.CreateBrand(ctx, in)
			} else {
				_, err = a.cli.UpdateBrand(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteBrand(ctx, id) },
	},
	{
		resource: "models",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetModel)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListModels)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteModels(ctx, ids)
				},
			}
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			in := client.ModelInput{Name: values["name"], BrandID: values["brandId"], IsActive: parseBoolValue(values["isActive"])}
			var err error
			if id == "" {
				_, err = a.cli.CreateModel(ctx, in)
			} else {
				_, err = a.cli.UpdateModel(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteModel(ctx, id) },
		options: func(a *appCtx, ctx context.Context, field, _ string) ([]sdk.Option, error) {
			if field != "brandId" {
				return nil, nil
			}
			return brandOptions(a, ctx)
		},
	},
	{
		resource: "product-types",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetProductType)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListProductTypes)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteProductTypes(ctx, ids)
				},
			}
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			in := client.ProductTypeInput{
				Name:     values["name"],
				Category: values["category"],
				ParentID: values["parentId"],
				IsActive: parseBoolValue(values["isActive"]),
			}
			var err error
			if id == "" {
				_, err = a.cli.CreateProductType(ctx, in)
			} else {
				_, err = a.cli.UpdateProductType(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteProductType(ctx, id) },
		options: func(a *appCtx, ctx context.Context, field, parent string) ([]sdk.Option, error) {
			switch field {
			case "category":
				return []sdk.Option{
					{Value: "electronics", Label: "Electronics"},
					{Value: "appliances", Label: "Appliances"},
					{Value: "accessories", Label: "Accessories"},
				}, nil
			case "parentId":
				return a.cli.ProductTypeOptions(ctx, parent)
			}
			return nil, nil
		},
	},
	{
		resource: "products",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetProduct)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListProducts)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteProducts(ctx, ids)
				},
			}
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, image string) error {
			price, _ := strconv.ParseFloat(values["price"], 64)
			in := client.ProductInput{
				Name:          values["name"],
				Description:   values["description"],
				BrandID:       values["brandId"],
				ModelID:       values["modelId"],
				ProductTypeID: values["productTypeId"],
				Price:         price,
				IsActive:      parseBoolValue(values["isActive"]),
			}
			if image != "" {
				up, err := imageUpload("images", image)
				if err != nil {
					return err
				}
				in.Images = []client.Upload{*up}
			}
			var err error
			if id == "" {
				_, err = a.cli.CreateProduct(ctx, in)
			} else {
				_, err = a.cli.UpdateProduct(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteProduct(ctx, id) },
		options: func(a *appCtx, ctx context.Context, field, parent string) ([]sdk.Option, error) {
			switch field {
			case "brandId":
				return brandOptions(a, ctx)
			case "modelId":
				return modelOptions(a, ctx, parent)
			case "productTypeId":
				return a.cli.ProductTypeOptions(ctx, "")
			}
			return nil, nil
		},
	},
	{
		resource: "customers",
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListCustomers)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteCustomers(ctx, ids)
				},
			}
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteCustomer(ctx, id) },
	},
	{
		resource: "pages",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetPage)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListPages)
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			in := client.PageInput{
				Title:    values["title"],
				Slug:     values["slug"],
				Body:     values["body"],
				IsActive: parseBoolValue(values["isActive"]),
			}
			var err error
			if id == "" {
				_, err = a.cli.CreatePage(ctx, in)
			} else {
				_, err = a.cli.UpdatePage(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeletePage(ctx, id) },
	},
	{
		resource: "faqs",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetFAQ)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListFAQs)
		},
		bulk: func(a *appCtx) map[string]listctl.BulkFunc {
			return map[string]listctl.BulkFunc{
				"delete": func(ctx context.Context, ids []string) error {
					return a.cli.BulkDeleteFAQs(ctx, ids)
				},
			}
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			pos, _ := strconv.Atoi(values["position"])
			in := client.FAQInput{
				Question: values["question"],
				Answer:   values["answer"],
				Position: pos,
				IsActive: parseBoolValue(values["isActive"]),
			}
			var err error
			if id == "" {
				_, err = a.cli.CreateFAQ(ctx, in)
			} else {
				_, err = a.cli.UpdateFAQ(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteFAQ(ctx, id) },
	},
	{
		resource: "pixels",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetPixel)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListPixels)
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			in := client.PixelInput{
				Provider: values["provider"],
				PixelID:  values["pixelId"],
				IsActive: parseBoolValue(values["isActive"]),
			}
			var err error
			if id == "" {
				_, err = a.cli.CreatePixel(ctx, in)
			} else {
				_, err = a.cli.UpdatePixel(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeletePixel(ctx, id) },
	},
	{
		resource: "visit-us",
		get: func(a *appCtx) func(ctx context.Context, id string) (row, error) {
			return getter(a.cli.GetVisitUs)
		},
		fetch: func(a *appCtx) listctl.Fetcher[row] {
			return fetcher(a.cli.ListVisitUs)
		},
		submit: func(a *appCtx, ctx context.Context, id string, values map[string]string, _ string) error {
			in := client.VisitUsInput{
				Name:     values["name"],
				Address:  values["address"],
				MapURL:   values["mapUrl"],
				Phone:    values["phone"],
				IsActive: parseBoolValue(values["isActive"]),
			}
			var err error
			if id == "" {
				_, err = a.cli.CreateVisitUs(ctx, in)
			} else {
				_, err = a.cli.UpdateVisitUs(ctx, id, in)
			}
			return err
		},
		del: func(a *appCtx, ctx context.Context, id string) error { return a.cli.DeleteVisitUs(ctx, id) },
	},
}

func brandOptions(a *appCtx, ctx context.Context) ([]sdk.Option, error) {
	res, err := a.cli.ListBrands(ctx, sdk.ListQuery{Page: 1, Limit: 100, Sort: "name"})
	if err != nil {
		return nil, err
	}
	opts := make([]sdk.Option, 0, len(res.Data))
	for _, b := range res.Data {
		opts = append(opts, sdk.Option{Value: b.ID, Label: b.Name})
	}
	return opts, nil
}

func modelOptions(a *appCtx, ctx context.Context, brandID string) ([]sdk.Option, error) {
	q := sdk.ListQuery{Page: 1, Limit: 100, Sort: "name"}
	if brandID != "" {
		q.Extra = url.Values{"brandId": {brandID}}
	}
	res, err := a.cli.ListModels(ctx, q)
	if err != nil {
		return nil, err
	}
	opts := make([]sdk.Option, 0, len(res.Data))
	for _, m := range res.Data {
		opts = append(opts, sdk.Option{Value: m.ID, Label: m.Name})
	}
	return opts, nil
}
