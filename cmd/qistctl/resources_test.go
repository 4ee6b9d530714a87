package main

import (
	"context"
	"testing"
	"time"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func TestToRows(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := toRows([]sdk.Brand{{
		ID:        "b1",
		Name:      "Acme",
		IsActive:  true,
		CreatedAt: created,
	}})
	if len(rows) != 1 {
		t.Fatalf("rows=%d", len(rows))
	}
	r := rows[0]
	if r["id"] != "b1" || r["name"] != "Acme" {
		t.Fatalf("row=%v", r)
	}
	if r["isActive"] != "true" {
		t.Fatalf("isActive=%q", r["isActive"])
	}
	if r["createdAt"] != "2026-08-01T12:00:00Z" {
		t.Fatalf("createdAt=%q", r["createdAt"])
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{float64(3), "3"},
		{float64(19.5), "19.5"},
		{[]any{"a", "b"}, "a,b"},
	}
	for _, c := range cases {
		if got := stringify(c.in); got != c.want {
			t.Fatalf("stringify(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestFetcherAdapts(t *testing.T) {
	f := fetcher(func(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Brand], error) {
		return sdk.PageResult[sdk.Brand]{
			Data:       []sdk.Brand{{ID: "b1", Name: "Acme"}},
			Pagination: sdk.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, Limit: 10},
		}, nil
	})
	res, err := f(context.Background(), sdk.ListQuery{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if res.Data[0]["name"] != "Acme" {
		t.Fatalf("data=%v", res.Data)
	}
	if res.Pagination.TotalItems != 1 {
		t.Fatalf("pagination=%+v", res.Pagination)
	}
}
