package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func TestListSendsQueryAndToken(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sdk.PageResult[sdk.Brand]{
			Data:       []sdk.Brand{{ID: "b1", Name: "Acme"}},
			Pagination: sdk.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, Limit: 10},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok-123"))
	res, err := c.ListBrands(context.Background(), sdk.ListQuery{Page: 2, Search: "ac", Sort: "name"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotPath != "/brands" {
		t.Fatalf("path=%s", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth=%q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("missing X-Request-ID")
	}
	if gotQuery["page"] != "2" || gotQuery["limit"] != "10" {
		t.Fatalf("query=%v", gotQuery)
	}
	if gotQuery["sort"] != "name" || gotQuery["order"] != "asc" {
		t.Fatalf("query=%v", gotQuery)
	}
	if len(res.Data) != 1 || res.Data[0].Name != "Acme" {
		t.Fatalf("data=%v", res.Data)
	}
	if res.Pagination.TotalItems != 25 {
		t.Fatalf("pagination=%v", res.Pagination)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(sdk.PageResult[sdk.Brand]{})
	}))
	defer ts.Close()

	c := New(ts.URL)
	if _, err := c.ListBrands(context.Background(), sdk.ListQuery{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("auth=%q", gotAuth)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "please log in"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.ListBrands(context.Background(), sdk.ListQuery{})
	if !errors.Is(err, sdk.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %T", err)
	}
	if apiErr.Message != "please log in" {
		t.Fatalf("message=%q", apiErr.Message)
	}
}

func TestValidationErrorsDecoded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "validation failed",
			"errors":  map[string]string{"name": "name is required"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("t"))
	_, err := c.CreateBrand(context.Background(), BrandInput{})
	var apiErr *sdk.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", apiErr.Status)
	}
	if apiErr.Fields["name"] != "name is required" {
		t.Fatalf("fields=%v", apiErr.Fields)
	}
}

func TestBulkRejectsEmptySelection(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("t"))
	err := c.BulkDeleteBrands(context.Background(), nil)
	if !errors.Is(err, sdk.ErrNothingSelected) {
		t.Fatalf("want ErrNothingSelected, got %v", err)
	}
	if called {
		t.Fatalf("request fired for empty selection")
	}
}

func TestBulkPostsIDs(t *testing.T) {
	var gotPath string
	var gotBody map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("t"))
	if err := c.BulkDeleteBrands(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if gotPath != "/bulk-delete-brands" {
		t.Fatalf("path=%s", gotPath)
	}
	if len(gotBody["ids"]) != 2 || gotBody["ids"][0] != "a" {
		t.Fatalf("body=%v", gotBody)
	}
}

func TestTokenSourceReadPerRequest(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(sdk.PageResult[sdk.Brand]{})
	}))
	defer ts.Close()

	src := &swappableToken{}
	c := New(ts.URL, WithTokenSource(src))

	src.tok = "first"
	c.ListBrands(context.Background(), sdk.ListQuery{})
	if gotAuth != "Bearer first" {
		t.Fatalf("auth=%q", gotAuth)
	}

	src.tok = "second"
	c.ListBrands(context.Background(), sdk.ListQuery{})
	if gotAuth != "Bearer second" {
		t.Fatalf("auth=%q", gotAuth)
	}
}

type swappableToken struct{ tok string }

func (s *swappableToken) Token() string { return s.tok }

func TestUploadSendsMultipart(t *testing.T) {
	var gotContentType, gotName, gotFile string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		gotName = r.FormValue("name")
		if f, hdr, err := r.FormFile("logo"); err == nil {
			gotFile = hdr.Filename
			f.Close()
		}
		json.NewEncoder(w).Encode(sdk.Brand{ID: "b1", Name: "Acme"})
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("t"))
	_, err := c.CreateBrand(context.Background(), BrandInput{
		Name:     "Acme",
		IsActive: true,
		Logo:     &Upload{Field: "logo", FileName: "logo.jpg", Reader: strings.NewReader("jpegdata")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("content-type=%q", gotContentType)
	}
	if gotName != "Acme" {
		t.Fatalf("name=%q", gotName)
	}
	if gotFile != "logo.jpg" {
		t.Fatalf("file=%q", gotFile)
	}
}
