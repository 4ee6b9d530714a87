// Package screens declares every admin list screen once: its columns,
// filters, form fields and bulk actions. The console and the tests both
// consume these definitions, so there is exactly one description of each
// screen instead of a copy per page.
package screens

import (
	"github.com/clubpro-dev/qistadmin/internal/formspec"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// Column maps a record attribute to a table column.
type Column struct {
	Key   string
	Label string
}

// Filter is a screen-specific list filter rendered next to the search box.
type Filter struct {
	Key     string
	Label   string
	Options []sdk.Option
}

// Definition describes one admin screen.
type Definition struct {
	Resource    string
	Title       string
	Columns     []Column
	Filters     []Filter
	Fields      []formspec.Field
	BulkActions []string
	DefaultSort string
}

// activeOptions are shared by every screen exposing an isActive filter.
var activeOptions = []sdk.Option{
	{Value: "true", Label: "Active"},
	{Value: "false", Label: "Inactive"},
}

var defs = []Definition{
	{
		Resource: "brands",
		Title:    "Brands",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "isActive", Label: "Active"},
			{Key: "createdAt", Label: "Created"},
		},
		Filters: []Filter{{Key: "isActive", Label: "Status", Options: activeOptions}},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "name", FieldLabel: "Name", Required: true, MaxLen: 100},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "name",
	},
	{
		Resource: "models",
		Title:    "Models",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "brandName", Label: "Brand"},
			{Key: "isActive", Label: "Active"},
		},
		Filters: []Filter{
			{Key: "brandId", Label: "Brand"},
			{Key: "isActive", Label: "Status", Options: activeOptions},
		},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "name", FieldLabel: "Name", Required: true, MaxLen: 100},
			formspec.Select{FieldName: "brandId", FieldLabel: "Brand", Required: true},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "name",
	},
	{
		Resource: "product-types",
		Title:    "Product Types",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "category", Label: "Category"},
			{Key: "isActive", Label: "Active"},
		},
		Filters: []Filter{{Key: "category", Label: "Category"}},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "name", FieldLabel: "Name", Required: true, MaxLen: 100},
			formspec.Select{FieldName: "category", FieldLabel: "Category", Required: true},
			formspec.Select{FieldName: "parentId", FieldLabel: "Subcategory of", DependsOn: "category"},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "name",
	},
	{
		Resource: "products",
		Title:    "Products",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "price", Label: "Price"},
			{Key: "isActive", Label: "Active"},
		},
		Filters: []Filter{
			{Key: "brandId", Label: "Brand"},
			{Key: "productTypeId", Label: "Type"},
		},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "name", FieldLabel: "Name", Required: true, MaxLen: 200},
			formspec.Textarea{FieldName: "description", FieldLabel: "Description", MaxLen: 5000, Rows: 6},
			formspec.Select{FieldName: "brandId", FieldLabel: "Brand", Required: true},
			formspec.Select{FieldName: "modelId", FieldLabel: "Model", DependsOn: "brandId"},
			formspec.Select{FieldName: "productTypeId", FieldLabel: "Type", Required: true},
			formspec.Text{FieldName: "price", FieldLabel: "Price", Required: true},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "name",
	},
	{
		Resource: "orders",
		Title:    "Orders",
		Columns: []Column{
			{Key: "number", Label: "Order"},
			{Key: "customerName", Label: "Customer"},
			{Key: "status", Label: "Status"},
			{Key: "total", Label: "Total"},
			{Key: "createdAt", Label: "Placed"},
		},
		Filters: []Filter{{Key: "status", Label: "Status", Options: []sdk.Option{
			{Value: sdk.OrderPending, Label: "Pending"},
			{Value: sdk.OrderConfirmed, Label: "Confirmed"},
			{Value: sdk.OrderShipped, Label: "Shipped"},
			{Value: sdk.OrderDelivered, Label: "Delivered"},
			{Value: sdk.OrderCancelled, Label: "Cancelled"},
		}}},
		BulkActions: []string{"cancel"},
		DefaultSort: "createdAt",
	},
	{
		Resource: "dealers",
		Title:    "Dealer Registrations",
		Columns: []Column{
			{Key: "shopName", Label: "Shop"},
			{Key: "ownerName", Label: "Owner"},
			{Key: "phone", Label: "Phone"},
			{Key: "isApproved", Label: "Approved"},
		},
		Filters: []Filter{{Key: "isApproved", Label: "Approval", Options: []sdk.Option{
			{Value: "true", Label: "Approved"},
			{Value: "false", Label: "Pending"},
		}}},
		BulkActions: []string{"approve"},
		DefaultSort: "createdAt",
	},
	{
		Resource: "customers",
		Title:    "Customers",
		Columns: []Column{
			{Key: "fullName", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "phone", Label: "Phone"},
			{Key: "isBlocked", Label: "Blocked"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "fullName",
	},
	{
		Resource: "pages",
		Title:    "Content Pages",
		Columns: []Column{
			{Key: "title", Label: "Title"},
			{Key: "slug", Label: "Slug"},
			{Key: "isActive", Label: "Active"},
		},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "title", FieldLabel: "Title", Required: true, MaxLen: 200},
			formspec.Text{FieldName: "slug", FieldLabel: "Slug", Required: true, MaxLen: 100},
			formspec.Textarea{FieldName: "body", FieldLabel: "Body", Required: true, Rows: 12},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		DefaultSort: "title",
	},
	{
		Resource: "faqs",
		Title:    "FAQs",
		Columns: []Column{
			{Key: "question", Label: "Question"},
			{Key: "position", Label: "Position"},
			{Key: "isActive", Label: "Active"},
		},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "question", FieldLabel: "Question", Required: true, MaxLen: 300},
			formspec.Textarea{FieldName: "answer", FieldLabel: "Answer", Required: true, Rows: 6},
			formspec.Text{FieldName: "position", FieldLabel: "Position"},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		BulkActions: []string{"delete"},
		DefaultSort: "position",
	},
	{
		Resource: "pixels",
		Title:    "Tracking Pixels",
		Columns: []Column{
			{Key: "provider", Label: "Provider"},
			{Key: "pixelId", Label: "Pixel ID"},
			{Key: "isActive", Label: "Active"},
		},
		Fields: []formspec.Field{
			formspec.Select{FieldName: "provider", FieldLabel: "Provider", Required: true, Options: []sdk.Option{
				{Value: "facebook", Label: "Facebook"},
				{Value: "tiktok", Label: "TikTok"},
				{Value: "google", Label: "Google"},
			}},
			formspec.Text{FieldName: "pixelId", FieldLabel: "Pixel ID", Required: true, MaxLen: 64},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		DefaultSort: "provider",
	},
	{
		Resource: "visit-us",
		Title:    "Visit Us Locations",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "address", Label: "Address"},
			{Key: "phone", Label: "Phone"},
			{Key: "isActive", Label: "Active"},
		},
		Fields: []formspec.Field{
			formspec.Text{FieldName: "name", FieldLabel: "Name", Required: true, MaxLen: 100},
			formspec.Textarea{FieldName: "address", FieldLabel: "Address", Required: true, Rows: 3},
			formspec.Text{FieldName: "mapUrl", FieldLabel: "Map URL"},
			formspec.Text{FieldName: "phone", FieldLabel: "Phone", MaxLen: 32},
			formspec.Switch{FieldName: "isActive", FieldLabel: "Active"},
		},
		DefaultSort: "name",
	},
	{
		Resource: "notifications",
		Title:    "Notifications",
		Columns: []Column{
			{Key: "title", Label: "Title"},
			{Key: "kind", Label: "Kind"},
			{Key: "read", Label: "Read"},
			{Key: "createdAt", Label: "When"},
		},
		Filters: []Filter{{Key: "status", Label: "Status", Options: []sdk.Option{
			{Value: "unread", Label: "Unread"},
			{Value: "read", Label: "Read"},
		}}},
		DefaultSort: "createdAt",
	},
}

// All returns every screen definition in display order.
func All() []Definition { return defs }

// Get looks a screen up by resource name.
func Get(resource string) (Definition, bool) {
	for _, d := range defs {
		if d.Resource == resource {
			return d, true
		}
	}
	return Definition{}, false
}
