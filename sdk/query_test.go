package sdk

import (
	"net/url"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	q := ListQuery{}.Normalize()
	if q.Page != 1 {
		t.Fatalf("page=%d", q.Page)
	}
	if q.Limit != 10 {
		t.Fatalf("limit=%d", q.Limit)
	}
	if q.Order != "" {
		t.Fatalf("order=%q without sort", q.Order)
	}
}

func TestNormalizeSnapsLimit(t *testing.T) {
	cases := map[int]int{
		-5:  10,
		0:   10,
		9:   10,
		10:  10,
		19:  10,
		20:  20,
		49:  20,
		50:  50,
		99:  50,
		100: 100,
		999: 100,
	}
	for in, want := range cases {
		if got := (ListQuery{Limit: in}).Normalize().Limit; got != want {
			t.Fatalf("limit %d: got %d want %d", in, got, want)
		}
	}
}

func TestNormalizeOrder(t *testing.T) {
	q := ListQuery{Sort: "name", Order: "sideways"}.Normalize()
	if q.Order != "asc" {
		t.Fatalf("order=%q", q.Order)
	}
	q = ListQuery{Sort: "name", Order: "desc"}.Normalize()
	if q.Order != "desc" {
		t.Fatalf("order=%q", q.Order)
	}
}

func TestValues(t *testing.T) {
	q := ListQuery{
		Page:   3,
		Limit:  20,
		Search: "apple",
		Sort:   "name",
		Order:  "desc",
		Extra:  url.Values{"status": {"pending"}},
	}
	v := q.Values()
	if v.Get("page") != "3" || v.Get("limit") != "20" {
		t.Fatalf("page/limit: %v", v)
	}
	if v.Get("search") != "apple" {
		t.Fatalf("search: %v", v)
	}
	if v.Get("sort") != "name" || v.Get("order") != "desc" {
		t.Fatalf("sort/order: %v", v)
	}
	if v.Get("status") != "pending" {
		t.Fatalf("extra: %v", v)
	}
}

func TestValuesOmitsEmpty(t *testing.T) {
	v := ListQuery{Page: 1, Limit: 10}.Values()
	if _, ok := v["search"]; ok {
		t.Fatalf("search present: %v", v)
	}
	if _, ok := v["sort"]; ok {
		t.Fatalf("sort present: %v", v)
	}
	if _, ok := v["order"]; ok {
		t.Fatalf("order present: %v", v)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{25, 20, 2},
		{25, 50, 1},
		{250, 100, 3},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := PageCount(c.total, c.limit); got != c.want {
			t.Fatalf("PageCount(%d,%d)=%d want %d", c.total, c.limit, got, c.want)
		}
	}
}
