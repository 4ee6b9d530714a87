// Package listctl implements the paginated list contract shared by every
// admin screen: one controller holds the query, the current page, and the
// bulk-action selection for a single resource list.
package listctl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/clubpro-dev/qistadmin/internal/toast"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// ErrRowNotVisible is returned by Optimistic when the target row is not on
// the loaded page, so there is no local state to mutate.
var ErrRowNotVisible = errors.New("row not on current page")

// Fetcher loads one page of records for the controller's resource.
type Fetcher[T any] func(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[T], error)

// BulkFunc applies one bulk action to the given row ids.
type BulkFunc func(ctx context.Context, ids []string) error

// Confirmer gates destructive actions. Returning false cancels the action
// before any network call fires.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Config wires a controller to its resource.
type Config[T any] struct {
	Fetch    Fetcher[T]
	RowID    func(T) string
	Bulk     map[string]BulkFunc
	Confirm  Confirmer
	Notifier toast.Notifier
	Logger   *zap.SugaredLogger
	Limit    int
	// Query seeds the initial list query; zero means page 1 with the
	// default limit.
	Query sdk.ListQuery
}

// Controller owns the list state of one screen. Methods are safe for
// concurrent use; overlapping fetches are sequenced so a stale response
// never overwrites a fresher one.
type Controller[T any] struct {
	mu       sync.Mutex
	cfg      Config[T]
	query    sdk.ListQuery
	page     sdk.PageResult[T]
	loaded   bool
	selected map[string]struct{}
	seq      uint64
}

// New returns a controller positioned on page 1 with nothing loaded yet.
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.Notifier == nil {
		cfg.Notifier = toast.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.Confirm == nil {
		cfg.Confirm = ConfirmFunc(func(string) bool { return true })
	}
	q := cfg.Query
	if q.Page == 0 && q.Limit == 0 {
		q = sdk.ListQuery{Page: 1, Limit: cfg.Limit}
	}
	return &Controller[T]{cfg: cfg, query: q.Normalize(), selected: map[string]struct{}{}}
}

// Query returns the current list query.
func (c *Controller[T]) Query() sdk.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Data returns the rows of the current page.
func (c *Controller[T]) Data() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.page.Data))
	copy(out, c.page.Data)
	return out
}

// Pagination returns the envelope metadata of the current page.
func (c *Controller[T]) Pagination() sdk.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Pagination
}

// Empty reports whether a load completed and found no records. Screens
// render this as a distinct "no records" state, not an empty table.
func (c *Controller[T]) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded && len(c.page.Data) == 0
}

// Refresh fetches the current query. On failure the previous page stays in
// place and a toast is emitted; the initial load failure leaves the empty
// state. A response is applied only when it belongs to the latest issued
// fetch, so two rapid query changes cannot leave the older result on screen.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	q := c.query
	c.mu.Unlock()

	res, err := c.cfg.Fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq != c.seq {
		// A newer fetch was issued while this one was in flight.
		return nil
	}
	if err != nil {
		c.cfg.Logger.Warnw("list fetch failed", "page", q.Page, "err", err)
		c.notifyErr(err)
		return err
	}
	c.page = res
	c.loaded = true
	return nil
}

// SetSearch replaces the search filter, resets to page 1 and refetches.
func (c *Controller[T]) SetSearch(ctx context.Context, search string) error {
	c.reset(func(q *sdk.ListQuery) { q.Search = search })
	return c.Refresh(ctx)
}

// SetSort replaces the sort field and direction, resets to page 1 and
// refetches.
func (c *Controller[T]) SetSort(ctx context.Context, sort, order string) error {
	c.reset(func(q *sdk.ListQuery) { q.Sort = sort; q.Order = order })
	return c.Refresh(ctx)
}

// SetLimit replaces the page size, resets to page 1 and refetches.
func (c *Controller[T]) SetLimit(ctx context.Context, limit int) error {
	c.reset(func(q *sdk.ListQuery) { q.Limit = limit })
	return c.Refresh(ctx)
}

// SetFilter replaces one screen-specific filter, resets to page 1 and
// refetches. An empty value removes the filter.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) error {
	c.reset(func(q *sdk.ListQuery) {
		if q.Extra == nil {
			q.Extra = map[string][]string{}
		}
		if value == "" {
			delete(q.Extra, key)
		} else {
			q.Extra.Set(key, value)
		}
	})
	return c.Refresh(ctx)
}

func (c *Controller[T]) reset(mut func(*sdk.ListQuery)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mut(&c.query)
	c.query.Page = 1
	c.query = c.query.Normalize()
}

// SetPage moves to page n and refetches. Out-of-range pages are a pure
// no-op: no state change and no fetch.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 || n > c.page.Pagination.TotalPages {
		c.mu.Unlock()
		return nil
	}
	c.query.Page = n
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ToggleSelectAll selects exactly the ids on the current page, or clears the
// selection entirely. It is never a cross-page selection.
func (c *Controller[T]) ToggleSelectAll(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = map[string]struct{}{}
	if !checked {
		return
	}
	for _, row := range c.page.Data {
		c.selected[c.cfg.RowID(row)] = struct{}{}
	}
}

// ToggleRow adds or removes a single id from the selection.
func (c *Controller[T]) ToggleRow(id string, checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if checked {
		c.selected[id] = struct{}{}
	} else {
		delete(c.selected, id)
	}
}

// Selected returns the selected ids in sorted order.
func (c *Controller[T]) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BulkAction runs the named action against the current selection. An empty
// selection is rejected before any network call; a declined confirmation is
// a true no-op. Success clears the selection and refetches; failure keeps
// the selection so the user can retry.
func (c *Controller[T]) BulkAction(ctx context.Context, kind string) error {
	fn, ok := c.cfg.Bulk[kind]
	if !ok {
		return errors.New("unknown bulk action: " + kind)
	}
	ids := c.Selected()
	if len(ids) == 0 {
		c.cfg.Notifier.Errorf("nothing selected")
		return sdk.ErrNothingSelected
	}
	if !c.cfg.Confirm.Confirm(confirmPrompt(kind, len(ids))) {
		return nil
	}
	if err := fn(ctx, ids); err != nil {
		c.cfg.Logger.Warnw("bulk action failed", "action", kind, "count", len(ids), "err", err)
		c.notifyErr(err)
		return err
	}
	c.mu.Lock()
	c.selected = map[string]struct{}{}
	c.mu.Unlock()
	c.cfg.Notifier.Successf("%s applied to %d records", kind, len(ids))
	return c.Refresh(ctx)
}

// Optimistic applies mut to the row with the given id immediately, then runs
// the server call. On failure the row is restored to its prior state and an
// error toast is emitted; the error is returned either way.
func (c *Controller[T]) Optimistic(ctx context.Context, id string, mut func(*T), call func(context.Context) error) error {
	c.mu.Lock()
	idx := -1
	for i := range c.page.Data {
		if c.cfg.RowID(c.page.Data[i]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("row %s: %w", id, ErrRowNotVisible)
	}
	prev := c.page.Data[idx]
	mut(&c.page.Data[idx])
	c.mu.Unlock()

	if err := call(ctx); err != nil {
		c.mu.Lock()
		if idx < len(c.page.Data) && c.cfg.RowID(c.page.Data[idx]) == id {
			c.page.Data[idx] = prev
		}
		c.mu.Unlock()
		c.notifyErr(err)
		return err
	}
	return nil
}

func (c *Controller[T]) notifyErr(err error) {
	var apiErr *sdk.APIError
	switch {
	case errors.Is(err, sdk.ErrUnauthorized):
		c.cfg.Notifier.Errorf("please log in")
	case errors.As(err, &apiErr):
		c.cfg.Notifier.Errorf("%s", apiErr.UserMessage())
	default:
		c.cfg.Notifier.Errorf("something went wrong, please try again")
	}
}

func confirmPrompt(kind string, n int) string {
	if n == 1 {
		return "apply " + kind + " to 1 record?"
	}
	return fmt.Sprintf("apply %s to %d records?", kind, n)
}
