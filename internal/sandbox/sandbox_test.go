package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clubpro-dev/qistadmin/internal/listctl"
	"github.com/clubpro-dev/qistadmin/internal/session"
	"github.com/clubpro-dev/qistadmin/internal/toast"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
	"github.com/clubpro-dev/qistadmin/sdk/client"
)

// newEnv boots a seeded sandbox and a client logged in through the real
// login flow.
func newEnv(t *testing.T) (*Server, *client.Client) {
	t.Helper()
	srv := New("test-secret")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	sess := session.New(session.Config{Store: &session.MemStore{}})
	sess.Restore()
	cli := client.New(ts.URL, client.WithTokenSource(sess))
	if err := sess.Login(context.Background(), cli, DemoEmail, DemoPassword); err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, cli
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := New("test-secret")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	cli := client.New(ts.URL)
	_, err := cli.Login(context.Background(), DemoEmail, "wrong")
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.Status != 401 || apiErr.Message != "invalid email or password" {
		t.Fatalf("err=%+v", apiErr)
	}

	// A session login attempt with the same credentials stays Anonymous
	// and persists nothing.
	store := &session.MemStore{}
	sess := session.New(session.Config{Store: store})
	sess.Restore()
	if err := sess.Login(context.Background(), cli, DemoEmail, "wrong"); err == nil {
		t.Fatalf("expected login failure")
	}
	if sess.State() != session.Anonymous {
		t.Fatalf("state=%v", sess.State())
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("token persisted: %q", tok)
	}
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	srv := New("test-secret")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	cli := client.New(ts.URL)
	_, err := cli.ListBrands(context.Background(), sdk.ListQuery{})
	if !errors.Is(err, sdk.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestLoginTokenCarriesAdminClaims(t *testing.T) {
	srv := New("test-secret")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	cli := client.New(ts.URL)
	res, err := cli.Login(context.Background(), DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := session.DecodeUnverified(res.Token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Email != DemoEmail || claims.FullName != "Demo Admin" || !claims.IsSuper {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestBrandPaginationSortingAndSearch(t *testing.T) {
	srv, cli := newEnv(t)
	ctx := context.Background()

	// Top the seed data up to 25 brands.
	for i := srv.brands.count(); i < 25; i++ {
		if _, err := cli.CreateBrand(ctx, client.BrandInput{Name: fmt.Sprintf("Brand %02d", i), IsActive: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	res, err := cli.ListBrands(ctx, sdk.ListQuery{Page: 1, Limit: 10, Sort: "name"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Data) != 10 {
		t.Fatalf("rows=%d", len(res.Data))
	}
	pg := res.Pagination
	if pg.CurrentPage != 1 || pg.TotalPages != 3 || pg.TotalItems != 25 || pg.Limit != 10 {
		t.Fatalf("pagination=%+v", pg)
	}
	for i := 1; i < len(res.Data); i++ {
		if res.Data[i-1].Name > res.Data[i].Name {
			t.Fatalf("not sorted: %q > %q", res.Data[i-1].Name, res.Data[i].Name)
		}
	}

	last, err := cli.ListBrands(ctx, sdk.ListQuery{Page: 3, Limit: 10, Sort: "name"})
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if len(last.Data) != 5 {
		t.Fatalf("last page rows=%d", len(last.Data))
	}

	desc, err := cli.ListBrands(ctx, sdk.ListQuery{Page: 1, Limit: 10, Sort: "name", Order: "desc"})
	if err != nil {
		t.Fatalf("list desc: %v", err)
	}
	if desc.Data[0].Name < desc.Data[1].Name {
		t.Fatalf("desc not sorted: %q < %q", desc.Data[0].Name, desc.Data[1].Name)
	}

	found, err := cli.ListBrands(ctx, sdk.ListQuery{Search: "sams"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if found.Pagination.TotalItems != 1 || found.Data[0].Name != "Samsung" {
		t.Fatalf("search result=%+v", found.Data)
	}
}

func TestBrandCRUDAndValidation(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	_, err := cli.CreateBrand(ctx, client.BrandInput{})
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 422 {
		t.Fatalf("want 422, got %v", err)
	}
	if apiErr.Fields["name"] != "name is required" {
		t.Fatalf("fields=%v", apiErr.Fields)
	}

	b, err := cli.CreateBrand(ctx, client.BrandInput{Name: "Nokia", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == "" || b.Name != "Nokia" {
		t.Fatalf("brand=%+v", b)
	}

	b2, err := cli.UpdateBrand(ctx, b.ID, client.BrandInput{Name: "HMD", IsActive: false})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b2.Name != "HMD" || b2.IsActive {
		t.Fatalf("updated=%+v", b2)
	}

	logo := client.Upload{Field: "logo", FileName: "nokia.jpg", Reader: strings.NewReader("img")}
	b3, err := cli.UpdateBrand(ctx, b.ID, client.BrandInput{Name: "HMD", Logo: &logo})
	if err != nil {
		t.Fatalf("logo update: %v", err)
	}
	if b3.LogoURL != "/uploads/nokia.jpg" {
		t.Fatalf("logo=%q", b3.LogoURL)
	}

	if err := cli.DeleteBrand(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := cli.DeleteBrand(ctx, b.ID); err == nil {
		t.Fatalf("double delete should 404")
	}
}

func TestBulkDeleteDrivenByController(t *testing.T) {
	srv, cli := newEnv(t)
	ctx := context.Background()
	before := srv.brands.count()

	rec := &toast.Recorder{}
	ctl := listctl.New(listctl.Config[sdk.Brand]{
		Fetch: cli.ListBrands,
		RowID: func(b sdk.Brand) string { return b.ID },
		Bulk: map[string]listctl.BulkFunc{
			"delete": cli.BulkDeleteBrands,
		},
		Notifier: rec,
	})
	if err := ctl.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	for _, b := range ctl.Data()[:3] {
		ctl.ToggleRow(b.ID, true)
	}
	if err := ctl.BulkAction(ctx, "delete"); err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if got := srv.brands.count(); got != before-3 {
		t.Fatalf("count=%d want %d", got, before-3)
	}
	if got := len(ctl.Selected()); got != 0 {
		t.Fatalf("selection kept: %d", got)
	}
	// The success refetch already happened; the page reflects the deletion.
	if got := ctl.Pagination().TotalItems; got != before-3 {
		t.Fatalf("total=%d", got)
	}
	if last := rec.Last(); last.Level != "success" {
		t.Fatalf("toast=%+v", last)
	}
}

func TestModelValidationAgainstBrands(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	_, err := cli.CreateModel(ctx, client.ModelInput{Name: "Pixel 9", BrandID: "nope"})
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) || apiErr.Fields["brandId"] != "brand does not exist" {
		t.Fatalf("err=%v", err)
	}

	brands, err := cli.ListBrands(ctx, sdk.ListQuery{Limit: 10})
	if err != nil {
		t.Fatalf("brands: %v", err)
	}
	m, err := cli.CreateModel(ctx, client.ModelInput{Name: "Pixel 9", BrandID: brands.Data[0].ID, IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.BrandName != brands.Data[0].Name {
		t.Fatalf("brandName=%q", m.BrandName)
	}
}

func TestProductTypeOptionsFilterByCategory(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	if _, err := cli.CreateProductType(ctx, client.ProductTypeInput{Name: "Washing Machines", Category: "appliances"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	opts, err := cli.ProductTypeOptions(ctx, "appliances")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts) != 1 || opts[0].Label != "Washing Machines" {
		t.Fatalf("opts=%v", opts)
	}
	all, err := cli.ProductTypeOptions(ctx, "")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all=%v", all)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	orders, err := cli.ListOrders(ctx, sdk.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	id := orders.Data[0].ID

	o, err := cli.SetOrderStatus(ctx, id, sdk.OrderConfirmed)
	if err != nil {
		t.Fatalf("set-status: %v", err)
	}
	if o.Status != sdk.OrderConfirmed {
		t.Fatalf("status=%q", o.Status)
	}

	_, err = cli.SetOrderStatus(ctx, id, "misplaced")
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 422 {
		t.Fatalf("want 422, got %v", err)
	}

	if err := cli.BulkCancelOrders(ctx, []string{id}); err != nil {
		t.Fatalf("bulk-cancel: %v", err)
	}
	got, err := cli.GetOrder(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != sdk.OrderCancelled {
		t.Fatalf("status=%q", got.Status)
	}
}

func TestOrderStatusFilter(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	q := sdk.ListQuery{}
	q.Extra = map[string][]string{"status": {sdk.OrderPending}}
	res, err := cli.ListOrders(ctx, q)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Pagination.TotalItems != 1 {
		t.Fatalf("total=%d", res.Pagination.TotalItems)
	}
	q.Extra = map[string][]string{"status": {sdk.OrderShipped}}
	res, err = cli.ListOrders(ctx, q)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Pagination.TotalItems != 0 {
		t.Fatalf("total=%d", res.Pagination.TotalItems)
	}
}

func TestDealerApprovalOptimisticRollback(t *testing.T) {
	srv, cli := newEnv(t)
	ctx := context.Background()

	ctl := listctl.New(listctl.Config[sdk.Dealer]{
		Fetch:    cli.ListDealers,
		RowID:    func(d sdk.Dealer) string { return d.ID },
		Notifier: &toast.Recorder{},
	})
	if err := ctl.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	dealer := ctl.Data()[0]
	if dealer.IsApproved {
		t.Fatalf("seed dealer already approved")
	}

	// Server call against a missing id fails; the optimistic flip must be
	// rolled back.
	err := ctl.Optimistic(ctx, dealer.ID,
		func(d *sdk.Dealer) { d.IsApproved = true },
		func(ctx context.Context) error {
			_, err := cli.SetDealerApproval(ctx, "missing", true)
			return err
		})
	if err == nil {
		t.Fatalf("expected error")
	}
	if ctl.Data()[0].IsApproved {
		t.Fatalf("rollback missed")
	}

	// The real call sticks on both sides.
	err = ctl.Optimistic(ctx, dealer.ID,
		func(d *sdk.Dealer) { d.IsApproved = true },
		func(ctx context.Context) error {
			_, err := cli.SetDealerApproval(ctx, dealer.ID, true)
			return err
		})
	if err != nil {
		t.Fatalf("optimistic: %v", err)
	}
	stored, ok := srv.dealers.get(dealer.ID)
	if !ok || !stored.IsApproved {
		t.Fatalf("server state=%+v", stored)
	}
}

func TestDealerAgreementUpload(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	dealers, err := cli.ListDealers(ctx, sdk.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	id := dealers.Data[0].ID
	d, err := cli.UploadDealerAgreement(ctx, id, client.Upload{
		Field:    "agreement",
		FileName: "agreement.jpg",
		Reader:   strings.NewReader("img"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if d.AgreementURL != "/uploads/agreement.jpg" {
		t.Fatalf("agreement=%q", d.AgreementURL)
	}
}

func TestCustomerBlockAndDelete(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	customers, err := cli.ListCustomers(ctx, sdk.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	id := customers.Data[0].ID

	c, err := cli.SetCustomerBlocked(ctx, id, true)
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	if !c.IsBlocked {
		t.Fatalf("customer=%+v", c)
	}
	c, err = cli.SetCustomerBlocked(ctx, id, false)
	if err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if c.IsBlocked {
		t.Fatalf("customer=%+v", c)
	}

	if err := cli.DeleteCustomer(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := cli.GetCustomer(ctx, id); err == nil {
		t.Fatalf("expected 404 after delete")
	}
}

func TestNotificationsLifecycle(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	n, err := cli.UnreadNotificationCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("unread=%d", n)
	}

	unread, err := cli.ListNotifications(ctx, "unread", 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if unread.Pagination.TotalItems != 1 {
		t.Fatalf("unread total=%d", unread.Pagination.TotalItems)
	}

	if err := cli.MarkNotificationRead(ctx, unread.Data[0].ID); err != nil {
		t.Fatalf("read: %v", err)
	}
	if n, _ = cli.UnreadNotificationCount(ctx); n != 0 {
		t.Fatalf("unread=%d after read", n)
	}

	read, err := cli.ListNotifications(ctx, "read", 1, 10)
	if err != nil {
		t.Fatalf("list read: %v", err)
	}
	if read.Pagination.TotalItems != 1 {
		t.Fatalf("read total=%d", read.Pagination.TotalItems)
	}

	if err := cli.MarkAllNotificationsRead(ctx); err != nil {
		t.Fatalf("mark-all: %v", err)
	}
	if n, _ = cli.UnreadNotificationCount(ctx); n != 0 {
		t.Fatalf("unread=%d after mark-all", n)
	}
}

func TestContentCRUD(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	p, err := cli.CreatePage(ctx, client.PageInput{Title: "About Us", Slug: "about", Body: "hello", IsActive: true})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if p.Slug != "about" {
		t.Fatalf("page=%+v", p)
	}

	f, err := cli.CreateFAQ(ctx, client.FAQInput{Question: "How do installments work?", Answer: "Monthly.", Position: 1, IsActive: true})
	if err != nil {
		t.Fatalf("faq: %v", err)
	}
	if err := cli.BulkDeleteFAQs(ctx, []string{f.ID}); err != nil {
		t.Fatalf("bulk faqs: %v", err)
	}

	px, err := cli.CreatePixel(ctx, client.PixelInput{Provider: "meta", PixelID: "123", IsActive: true})
	if err != nil {
		t.Fatalf("pixel: %v", err)
	}
	if err := cli.DeletePixel(ctx, px.ID); err != nil {
		t.Fatalf("delete pixel: %v", err)
	}

	v, err := cli.CreateVisitUs(ctx, client.VisitUsInput{Name: "Lahore Office", Address: "MM Alam Road", IsActive: true})
	if err != nil {
		t.Fatalf("visit-us: %v", err)
	}
	v2, err := cli.UpdateVisitUs(ctx, v.ID, client.VisitUsInput{Name: "Lahore Flagship", Address: "MM Alam Road", IsActive: true})
	if err != nil {
		t.Fatalf("update visit-us: %v", err)
	}
	if v2.Name != "Lahore Flagship" {
		t.Fatalf("visit-us=%+v", v2)
	}
}

func TestProfileUpdate(t *testing.T) {
	_, cli := newEnv(t)
	ctx := context.Background()

	p, err := cli.UpdateProfile(ctx, "New Name", &client.Upload{
		Field:    "profilePicture",
		FileName: "me.jpg",
		Reader:   strings.NewReader("img"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.FullName != "New Name" || p.ProfilePicture != "/uploads/me.jpg" {
		t.Fatalf("profile=%+v", p)
	}
}
