package sdk

import (
	"net/url"
	"strconv"
)

// Limits allowed for list requests. Values outside the set are snapped down
// to the nearest allowed value.
var Limits = []int{10, 20, 50, 100}

// ListQuery is the request half of the pagination contract shared by every
// list endpoint: page, limit, free-text search, sort field and direction,
// plus screen-specific extra filters.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  string
	Extra  url.Values
}

// Normalize returns a copy with defaults applied: page floors at 1, limit
// snaps to the allowed set, order defaults to asc when a sort is set.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	q.Limit = snapLimit(q.Limit)
	if q.Sort != "" && q.Order != "asc" && q.Order != "desc" {
		q.Order = "asc"
	}
	return q
}

// Values encodes the query as URL parameters. Extra filters are appended
// after the standard five.
func (q ListQuery) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
		v.Set("order", q.Order)
	}
	for k, vals := range q.Extra {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	return v
}

func snapLimit(n int) int {
	best := Limits[0]
	for _, l := range Limits {
		if l <= n {
			best = l
		}
	}
	return best
}

// Pagination is the envelope metadata returned by every list endpoint.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	Limit       int `json:"limit"`
}

// PageResult is the response envelope: one page of records plus pagination
// metadata. len(Data) never exceeds Pagination.Limit.
type PageResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PageCount returns ceil(totalItems/limit), the number of pages a
// well-formed envelope must report. A total of zero still yields one page so
// the empty state has somewhere to live.
func PageCount(totalItems, limit int) int {
	if limit <= 0 {
		return 1
	}
	n := (totalItems + limit - 1) / limit
	if n < 1 {
		n = 1
	}
	return n
}
