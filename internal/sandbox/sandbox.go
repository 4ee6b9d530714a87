// Package sandbox is an in-memory stand-in for the Qist Market backend. It
// exists so the console can be tried without the real platform and so the
// end-to-end tests have something honest to talk to. It is not the
// production backend and implements just enough of its surface.
package sandbox

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// DemoEmail and DemoPassword are the seeded admin credentials.
const (
	DemoEmail    = "admin@qistmarket.test"
	DemoPassword = "changeme"
)

// Server holds the in-memory state behind the HTTP handler.
type Server struct {
	secret       []byte
	adminHash    []byte
	adminProfile sdk.AdminProfile

	brands        *store[sdk.Brand]
	models        *store[sdk.Model]
	productTypes  *store[sdk.ProductType]
	products      *store[sdk.Product]
	orders        *store[sdk.Order]
	dealers       *store[sdk.Dealer]
	customers     *store[sdk.Customer]
	pages         *store[sdk.Page]
	faqs          *store[sdk.FAQ]
	pixels        *store[sdk.Pixel]
	visitUs       *store[sdk.VisitUsLocation]
	notifications *store[sdk.Notification]
}

// New returns a seeded sandbox. The secret signs the demo tokens; any
// non-empty value works.
func New(secret string) *Server {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	s := &Server{
		secret:    []byte(secret),
		adminHash: hash,
		adminProfile: sdk.AdminProfile{
			ID:       "admin-1",
			FullName: "Demo Admin",
			Email:    DemoEmail,
			IsSuper:  true,
			IsAdmin:  true,
			IsAccess: true,
		},
	}
	s.initStores()
	s.seed()
	return s
}

func (s *Server) initStores() {
	s.brands = &store[sdk.Brand]{
		id: func(b sdk.Brand) string { return b.ID },
		fields: map[string]func(sdk.Brand) string{
			"name":      func(b sdk.Brand) string { return b.Name },
			"isActive":  func(b sdk.Brand) string { return fmt.Sprint(b.IsActive) },
			"createdAt": func(b sdk.Brand) string { return b.CreatedAt.Format(time.RFC3339) },
		},
		searchKeys: []string{"name"},
		filterKeys: []string{"isActive"},
	}
	s.models = &store[sdk.Model]{
		id: func(m sdk.Model) string { return m.ID },
		fields: map[string]func(sdk.Model) string{
			"name":     func(m sdk.Model) string { return m.Name },
			"brandId":  func(m sdk.Model) string { return m.BrandID },
			"isActive": func(m sdk.Model) string { return fmt.Sprint(m.IsActive) },
		},
		searchKeys: []string{"name"},
		filterKeys: []string{"brandId", "isActive"},
	}
	s.productTypes = &store[sdk.ProductType]{
		id: func(t sdk.ProductType) string { return t.ID },
		fields: map[string]func(sdk.ProductType) string{
			"name":     func(t sdk.ProductType) string { return t.Name },
			"category": func(t sdk.ProductType) string { return t.Category },
		},
		searchKeys: []string{"name"},
		filterKeys: []string{"category"},
	}
	s.products = &store[sdk.Product]{
		id: func(p sdk.Product) string { return p.ID },
		fields: map[string]func(sdk.Product) string{
			"name":          func(p sdk.Product) string { return p.Name },
			"brandId":       func(p sdk.Product) string { return p.BrandID },
			"productTypeId": func(p sdk.Product) string { return p.ProductTypeID },
		},
		searchKeys: []string{"name"},
		filterKeys: []string{"brandId", "productTypeId"},
	}
	s.orders = &store[sdk.Order]{
		id: func(o sdk.Order) string { return o.ID },
		fields: map[string]func(sdk.Order) string{
			"number":       func(o sdk.Order) string { return o.Number },
			"customerName": func(o sdk.Order) string { return o.CustomerName },
			"status":       func(o sdk.Order) string { return o.Status },
			"createdAt":    func(o sdk.Order) string { return o.CreatedAt.Format(time.RFC3339) },
		},
		searchKeys: []string{"number", "customerName"},
		filterKeys: []string{"status"},
	}
	s.dealers = &store[sdk.Dealer]{
		id: func(d sdk.Dealer) string { return d.ID },
		fields: map[string]func(sdk.Dealer) string{
			"shopName":   func(d sdk.Dealer) string { return d.ShopName },
			"ownerName":  func(d sdk.Dealer) string { return d.OwnerName },
			"isApproved": func(d sdk.Dealer) string { return fmt.Sprint(d.IsApproved) },
			"createdAt":  func(d sdk.Dealer) string { return d.CreatedAt.Format(time.RFC3339) },
		},
		searchKeys: []string{"shopName", "ownerName"},
		filterKeys: []string{"isApproved"},
	}
	s.customers = &store[sdk.Customer]{
		id: func(c sdk.Customer) string { return c.ID },
		fields: map[string]func(sdk.Customer) string{
			"fullName":  func(c sdk.Customer) string { return c.FullName },
			"email":     func(c sdk.Customer) string { return c.Email },
			"isBlocked": func(c sdk.Customer) string { return fmt.Sprint(c.IsBlocked) },
		},
		searchKeys: []string{"fullName", "email"},
		filterKeys: []string{"isBlocked"},
	}
	s.pages = &store[sdk.Page]{
		id: func(p sdk.Page) string { return p.ID },
		fields: map[string]func(sdk.Page) string{
			"title": func(p sdk.Page) string { return p.Title },
			"slug":  func(p sdk.Page) string { return p.Slug },
		},
		searchKeys: []string{"title", "slug"},
	}
	s.faqs = &store[sdk.FAQ]{
		id: func(f sdk.FAQ) string { return f.ID },
		fields: map[string]func(sdk.FAQ) string{
			"question": func(f sdk.FAQ) string { return f.Question },
			"position": func(f sdk.FAQ) string { return fmt.Sprintf("%06d", f.Position) },
		},
		searchKeys: []string{"question"},
	}
	s.pixels = &store[sdk.Pixel]{
		id: func(p sdk.Pixel) string { return p.ID },
		fields: map[string]func(sdk.Pixel) string{
			"provider": func(p sdk.Pixel) string { return p.Provider },
			"pixelId":  func(p sdk.Pixel) string { return p.PixelID },
		},
		searchKeys: []string{"provider", "pixelId"},
	}
	s.visitUs = &store[sdk.VisitUsLocation]{
		id: func(v sdk.VisitUsLocation) string { return v.ID },
		fields: map[string]func(sdk.VisitUsLocation) string{
			"name":    func(v sdk.VisitUsLocation) string { return v.Name },
			"address": func(v sdk.VisitUsLocation) string { return v.Address },
		},
		searchKeys: []string{"name", "address"},
	}
	s.notifications = &store[sdk.Notification]{
		id: func(n sdk.Notification) string { return n.ID },
		fields: map[string]func(sdk.Notification) string{
			"title":     func(n sdk.Notification) string { return n.Title },
			"read":      func(n sdk.Notification) string { return fmt.Sprint(n.Read) },
			"createdAt": func(n sdk.Notification) string { return n.CreatedAt.Format(time.RFC3339) },
		},
		searchKeys: []string{"title"},
		filterKeys: []string{"read"},
	}
}

func (s *Server) seed() {
	now := time.Now().UTC()
	brandNames := []string{"Samsung", "Apple", "Xiaomi", "Oppo", "Vivo", "Realme"}
	for i, name := range brandNames {
		s.brands.insert(sdk.Brand{
			ID:        newID(),
			Name:      name,
			IsActive:  true,
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
			UpdatedAt: now,
		})
	}
	brands := s.brands.items
	s.models.insert(sdk.Model{ID: newID(), Name: "Galaxy S24", BrandID: brands[0].ID, BrandName: brands[0].Name, IsActive: true, CreatedAt: now})
	s.models.insert(sdk.Model{ID: newID(), Name: "iPhone 16", BrandID: brands[1].ID, BrandName: brands[1].Name, IsActive: true, CreatedAt: now})
	s.productTypes.insert(sdk.ProductType{ID: newID(), Name: "Smartphones", Category: "electronics", IsActive: true})
	s.productTypes.insert(sdk.ProductType{ID: newID(), Name: "Tablets", Category: "electronics", IsActive: true})
	s.customers.insert(sdk.Customer{ID: newID(), FullName: "Ayesha Khan", Email: "ayesha@example.test", Phone: "+92-300-0000001", CreatedAt: now})
	s.customers.insert(sdk.Customer{ID: newID(), FullName: "Bilal Ahmed", Email: "bilal@example.test", Phone: "+92-300-0000002", CreatedAt: now})
	s.dealers.insert(sdk.Dealer{ID: newID(), ShopName: "Tech Corner", OwnerName: "Imran", Phone: "+92-321-1111111", CreatedAt: now})
	s.orders.insert(sdk.Order{ID: newID(), Number: "QM-1001", CustomerID: "c1", CustomerName: "Ayesha Khan", Status: sdk.OrderPending, Total: 125000, ItemCount: 1, CreatedAt: now})
	s.notifications.insert(sdk.Notification{ID: newID(), Title: "New dealer registration", Kind: "dealer", CreatedAt: now})
}

func newID() string { return uuid.NewString() }
