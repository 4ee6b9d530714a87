package sandbox

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// listParams is the parsed half of the pagination contract.
type listParams struct {
	page   int
	limit  int
	search string
	sort   string
	order  string
	extra  url.Values
}

func parseListParams(r *http.Request) listParams {
	q := r.URL.Query()
	p := listParams{
		page:   atoiDefault(q.Get("page"), 1),
		limit:  atoiDefault(q.Get("limit"), 10),
		search: q.Get("search"),
		sort:   q.Get("sort"),
		order:  q.Get("order"),
		extra:  q,
	}
	if p.page < 1 {
		p.page = 1
	}
	if p.limit < 1 {
		p.limit = 10
	}
	if p.order != "desc" {
		p.order = "asc"
	}
	return p
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// store is an in-memory collection with the search/sort/filter behavior the
// real backend exhibits. fields maps attribute names to string accessors
// used for sorting and filtering; searchKeys name the fields matched by the
// free-text search.
type store[T any] struct {
	mu         sync.Mutex
	items      []T
	id         func(T) string
	fields     map[string]func(T) string
	searchKeys []string
	filterKeys []string
}

func (st *store[T]) list(p listParams) sdk.PageResult[T] {
	st.mu.Lock()
	defer st.mu.Unlock()

	rows := make([]T, 0, len(st.items))
	for _, it := range st.items {
		if !st.matches(it, p) {
			continue
		}
		rows = append(rows, it)
	}
	if p.sort != "" {
		if get, ok := st.fields[p.sort]; ok {
			sort.SliceStable(rows, func(i, j int) bool {
				if p.order == "desc" {
					return get(rows[i]) > get(rows[j])
				}
				return get(rows[i]) < get(rows[j])
			})
		}
	}

	total := len(rows)
	totalPages := sdk.PageCount(total, p.limit)
	start := (p.page - 1) * p.limit
	if start > total {
		start = total
	}
	end := start + p.limit
	if end > total {
		end = total
	}
	page := make([]T, end-start)
	copy(page, rows[start:end])
	return sdk.PageResult[T]{
		Data: page,
		Pagination: sdk.Pagination{
			CurrentPage: p.page,
			TotalPages:  totalPages,
			TotalItems:  total,
			Limit:       p.limit,
		},
	}
}

func (st *store[T]) matches(it T, p listParams) bool {
	if p.search != "" {
		found := false
		needle := strings.ToLower(p.search)
		for _, key := range st.searchKeys {
			if get, ok := st.fields[key]; ok && strings.Contains(strings.ToLower(get(it)), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, key := range st.filterKeys {
		want := p.extra.Get(key)
		if want == "" {
			continue
		}
		get, ok := st.fields[key]
		if ok && get(it) != want {
			return false
		}
	}
	return true
}

func (st *store[T]) get(id string) (T, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, it := range st.items {
		if st.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (st *store[T]) insert(it T) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.items = append(st.items, it)
}

func (st *store[T]) update(id string, mut func(*T)) (T, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.items {
		if st.id(st.items[i]) == id {
			mut(&st.items[i])
			return st.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (st *store[T]) remove(ids ...string) int {
	set := map[string]struct{}{}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	kept := st.items[:0]
	removed := 0
	for _, it := range st.items {
		if _, gone := set[st.id(it)]; gone {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	st.items = kept
	return removed
}

func (st *store[T]) count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.items)
}
