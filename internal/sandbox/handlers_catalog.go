package sandbox

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func (s *Server) mountBrands(r chi.Router) {
	r.Get("/brands", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.brands.list(parseListParams(r)))
	})
	r.Get("/brands/{id}", itemHandler(s.brands, "brand not found"))
	r.Post("/brands", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		name := in.str("name")
		if name == "" {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"name": "name is required"})
			return
		}
		b := sdk.Brand{
			ID:        newID(),
			Name:      name,
			IsActive:  in.boolean("isActive"),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		if f := in.file("logo"); f != "" {
			b.LogoURL = "/uploads/" + f
		}
		s.brands.insert(b)
		writeJSON(w, http.StatusCreated, b)
	})
	r.Put("/brands/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		b, ok := s.brands.update(chi.URLParam(r, "id"), func(b *sdk.Brand) {
			if name := in.str("name"); name != "" {
				b.Name = name
			}
			b.IsActive = in.boolean("isActive")
			if f := in.file("logo"); f != "" {
				b.LogoURL = "/uploads/" + f
			}
			b.UpdatedAt = time.Now().UTC()
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "brand not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, b)
	})
	r.Delete("/brands/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.brands.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "brand not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-brands", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		n := s.brands.remove(in.ids()...)
		writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
	})
}

func (s *Server) mountCatalog(r chi.Router) {
	// Models
	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.models.list(parseListParams(r)))
	})
	r.Get("/models/{id}", itemHandler(s.models, "model not found"))
	r.Post("/models", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		fields := map[string]string{}
		if in.str("name") == "" {
			fields["name"] = "name is required"
		}
		brand, brandOK := s.brands.get(in.str("brandId"))
		if !brandOK {
			fields["brandId"] = "brand does not exist"
		}
		if len(fields) > 0 {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", fields)
			return
		}
		m := sdk.Model{
			ID:        newID(),
			Name:      in.str("name"),
			BrandID:   brand.ID,
			BrandName: brand.Name,
			IsActive:  in.boolean("isActive"),
			CreatedAt: time.Now().UTC(),
		}
		s.models.insert(m)
		writeJSON(w, http.StatusCreated, m)
	})
	r.Put("/models/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		m, ok := s.models.update(chi.URLParam(r, "id"), func(m *sdk.Model) {
			if name := in.str("name"); name != "" {
				m.Name = name
			}
			if bid := in.str("brandId"); bid != "" {
				if b, ok := s.brands.get(bid); ok {
					m.BrandID = b.ID
					m.BrandName = b.Name
				}
			}
			m.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "model not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, m)
	})
	r.Delete("/models/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.models.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "model not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-models", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": s.models.remove(in.ids()...)})
	})

	// Product types
	r.Get("/product-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.productTypes.list(parseListParams(r)))
	})
	r.Get("/product-types/{id}", itemHandler(s.productTypes, "product type not found"))
	r.Get("/product-types/options", func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		opts := []sdk.Option{}
		s.productTypes.mu.Lock()
		for _, t := range s.productTypes.items {
			if category != "" && t.Category != category {
				continue
			}
			opts = append(opts, sdk.Option{Value: t.ID, Label: t.Name})
		}
		s.productTypes.mu.Unlock()
		writeJSON(w, http.StatusOK, opts)
	})
	r.Post("/product-types", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		if in.str("name") == "" || in.str("category") == "" {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"name": "name and category are required"})
			return
		}
		t := sdk.ProductType{
			ID:       newID(),
			Name:     in.str("name"),
			Category: in.str("category"),
			ParentID: in.str("parentId"),
			IsActive: in.boolean("isActive"),
		}
		s.productTypes.insert(t)
		writeJSON(w, http.StatusCreated, t)
	})
	r.Put("/product-types/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		t, ok := s.productTypes.update(chi.URLParam(r, "id"), func(t *sdk.ProductType) {
			if v := in.str("name"); v != "" {
				t.Name = v
			}
			if v := in.str("category"); v != "" {
				t.Category = v
			}
			t.ParentID = in.str("parentId")
			t.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "product type not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, t)
	})
	r.Delete("/product-types/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.productTypes.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "product type not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-product-types", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": s.productTypes.remove(in.ids()...)})
	})

	// Products
	r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.products.list(parseListParams(r)))
	})
	r.Get("/products/{id}", itemHandler(s.products, "product not found"))
	r.Post("/products", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		fields := map[string]string{}
		if in.str("name") == "" {
			fields["name"] = "name is required"
		}
		if in.float("price") <= 0 {
			fields["price"] = "price must be positive"
		}
		if len(fields) > 0 {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", fields)
			return
		}
		p := sdk.Product{
			ID:            newID(),
			Name:          in.str("name"),
			Description:   in.str("description"),
			BrandID:       in.str("brandId"),
			ModelID:       in.str("modelId"),
			ProductTypeID: in.str("productTypeId"),
			Price:         in.float("price"),
			IsActive:      in.boolean("isActive"),
			CreatedAt:     time.Now().UTC(),
		}
		if f := in.file("images"); f != "" {
			p.ImageURLs = []string{"/uploads/" + f}
		}
		s.products.insert(p)
		writeJSON(w, http.StatusCreated, p)
	})
	r.Put("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		p, ok := s.products.update(chi.URLParam(r, "id"), func(p *sdk.Product) {
			if v := in.str("name"); v != "" {
				p.Name = v
			}
			p.Description = in.str("description")
			if v := in.float("price"); v > 0 {
				p.Price = v
			}
			p.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "product not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, p)
	})
	r.Delete("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.products.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "product not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-products", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": s.products.remove(in.ids()...)})
	})
}
