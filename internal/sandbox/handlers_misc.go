package sandbox

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func (s *Server) mountOrders(r chi.Router) {
	r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.orders.list(parseListParams(r)))
	})
	r.Get("/orders/{id}", itemHandler(s.orders, "order not found"))
	r.Patch("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		status := in.str("status")
		if !validOrderStatus(status) {
			writeErr(w, http.StatusUnprocessableEntity, "unknown order status", map[string]string{"status": "unknown order status"})
			return
		}
		o, ok := s.orders.update(chi.URLParam(r, "id"), func(o *sdk.Order) { o.Status = status })
		if !ok {
			writeErr(w, http.StatusNotFound, "order not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, o)
	})
	r.Post("/orders/bulk-cancel", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		n := 0
		for _, id := range in.ids() {
			if _, ok := s.orders.update(id, func(o *sdk.Order) { o.Status = sdk.OrderCancelled }); ok {
				n++
			}
		}
		writeJSON(w, http.StatusOK, map[string]int{"cancelled": n})
	})
}

func validOrderStatus(s string) bool {
	switch s {
	case sdk.OrderPending, sdk.OrderConfirmed, sdk.OrderShipped, sdk.OrderDelivered, sdk.OrderCancelled:
		return true
	}
	return false
}

func (s *Server) mountDealers(r chi.Router) {
	r.Get("/dealers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.dealers.list(parseListParams(r)))
	})
	r.Get("/dealers/{id}", itemHandler(s.dealers, "dealer not found"))
	r.Patch("/dealers/{id}/approval", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		d, ok := s.dealers.update(chi.URLParam(r, "id"), func(d *sdk.Dealer) {
			d.IsApproved = in.boolean("isApproved")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "dealer not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, d)
	})
	r.Post("/dealers/bulk-approve", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		n := 0
		for _, id := range in.ids() {
			if _, ok := s.dealers.update(id, func(d *sdk.Dealer) { d.IsApproved = true }); ok {
				n++
			}
		}
		writeJSON(w, http.StatusOK, map[string]int{"approved": n})
	})
	r.Put("/dealers/{id}/agreement", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		f := in.file("agreement")
		if f == "" {
			writeErr(w, http.StatusUnprocessableEntity, "agreement file is required", map[string]string{"agreement": "agreement file is required"})
			return
		}
		d, ok := s.dealers.update(chi.URLParam(r, "id"), func(d *sdk.Dealer) {
			d.AgreementURL = "/uploads/" + f
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "dealer not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, d)
	})
}

func (s *Server) mountCustomers(r chi.Router) {
	r.Get("/customers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.customers.list(parseListParams(r)))
	})
	r.Get("/customers/{id}", itemHandler(s.customers, "customer not found"))
	r.Patch("/customers/{id}/blocked", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		c, ok := s.customers.update(chi.URLParam(r, "id"), func(c *sdk.Customer) {
			c.IsBlocked = in.boolean("isBlocked")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "customer not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, c)
	})
	r.Delete("/customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.customers.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "customer not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-customers", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": s.customers.remove(in.ids()...)})
	})
}

func (s *Server) mountContent(r chi.Router) {
	// Pages
	r.Get("/pages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.pages.list(parseListParams(r)))
	})
	r.Get("/pages/{id}", itemHandler(s.pages, "page not found"))
	r.Post("/pages", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		fields := map[string]string{}
		if in.str("title") == "" {
			fields["title"] = "title is required"
		}
		if in.str("slug") == "" {
			fields["slug"] = "slug is required"
		}
		if len(fields) > 0 {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", fields)
			return
		}
		p := sdk.Page{
			ID:        newID(),
			Title:     in.str("title"),
			Slug:      in.str("slug"),
			Body:      in.str("body"),
			IsActive:  in.boolean("isActive"),
			UpdatedAt: time.Now().UTC(),
		}
		s.pages.insert(p)
		writeJSON(w, http.StatusCreated, p)
	})
	r.Put("/pages/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		p, ok := s.pages.update(chi.URLParam(r, "id"), func(p *sdk.Page) {
			if v := in.str("title"); v != "" {
				p.Title = v
			}
			if v := in.str("slug"); v != "" {
				p.Slug = v
			}
			p.Body = in.str("body")
			p.IsActive = in.boolean("isActive")
			p.UpdatedAt = time.Now().UTC()
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "page not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, p)
	})
	r.Delete("/pages/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.pages.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "page not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	// FAQs
	r.Get("/faqs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.faqs.list(parseListParams(r)))
	})
	r.Get("/faqs/{id}", itemHandler(s.faqs, "faq not found"))
	r.Post("/faqs", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		if in.str("question") == "" || in.str("answer") == "" {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"question": "question and answer are required"})
			return
		}
		f := sdk.FAQ{
			ID:       newID(),
			Question: in.str("question"),
			Answer:   in.str("answer"),
			Position: in.integer("position"),
			IsActive: in.boolean("isActive"),
		}
		s.faqs.insert(f)
		writeJSON(w, http.StatusCreated, f)
	})
	r.Put("/faqs/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		f, ok := s.faqs.update(chi.URLParam(r, "id"), func(f *sdk.FAQ) {
			if v := in.str("question"); v != "" {
				f.Question = v
			}
			if v := in.str("answer"); v != "" {
				f.Answer = v
			}
			f.Position = in.integer("position")
			f.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "faq not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, f)
	})
	r.Delete("/faqs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.faqs.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "faq not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/bulk-delete-faqs", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil || len(in.ids()) == 0 {
			writeErr(w, http.StatusBadRequest, "ids are required", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": s.faqs.remove(in.ids()...)})
	})

	// Pixels
	r.Get("/pixels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.pixels.list(parseListParams(r)))
	})
	r.Get("/pixels/{id}", itemHandler(s.pixels, "pixel not found"))
	r.Post("/pixels", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		if in.str("provider") == "" || in.str("pixelId") == "" {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"pixelId": "provider and pixelId are required"})
			return
		}
		p := sdk.Pixel{ID: newID(), Provider: in.str("provider"), PixelID: in.str("pixelId"), IsActive: in.boolean("isActive")}
		s.pixels.insert(p)
		writeJSON(w, http.StatusCreated, p)
	})
	r.Put("/pixels/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		p, ok := s.pixels.update(chi.URLParam(r, "id"), func(p *sdk.Pixel) {
			if v := in.str("provider"); v != "" {
				p.Provider = v
			}
			if v := in.str("pixelId"); v != "" {
				p.PixelID = v
			}
			p.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "pixel not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, p)
	})
	r.Delete("/pixels/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.pixels.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "pixel not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	// Visit-us locations
	r.Get("/visit-us", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.visitUs.list(parseListParams(r)))
	})
	r.Get("/visit-us/{id}", itemHandler(s.visitUs, "location not found"))
	r.Post("/visit-us", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		if in.str("name") == "" || in.str("address") == "" {
			writeErr(w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"name": "name and address are required"})
			return
		}
		v := sdk.VisitUsLocation{
			ID:       newID(),
			Name:     in.str("name"),
			Address:  in.str("address"),
			MapURL:   in.str("mapUrl"),
			Phone:    in.str("phone"),
			IsActive: in.boolean("isActive"),
		}
		s.visitUs.insert(v)
		writeJSON(w, http.StatusCreated, v)
	})
	r.Put("/visit-us/{id}", func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		v, ok := s.visitUs.update(chi.URLParam(r, "id"), func(v *sdk.VisitUsLocation) {
			if x := in.str("name"); x != "" {
				v.Name = x
			}
			if x := in.str("address"); x != "" {
				v.Address = x
			}
			v.MapURL = in.str("mapUrl")
			v.Phone = in.str("phone")
			v.IsActive = in.boolean("isActive")
		})
		if !ok {
			writeErr(w, http.StatusNotFound, "location not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, v)
	})
	r.Delete("/visit-us/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s.visitUs.remove(chi.URLParam(r, "id")) == 0 {
			writeErr(w, http.StatusNotFound, "location not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) mountNotifications(r chi.Router) {
	r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
		p := parseListParams(r)
		switch p.extra.Get("status") {
		case "read":
			p.extra.Set("read", "true")
		case "unread":
			p.extra.Set("read", "false")
		}
		writeJSON(w, http.StatusOK, s.notifications.list(p))
	})
	r.Put("/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		n, ok := s.notifications.update(chi.URLParam(r, "id"), func(n *sdk.Notification) { n.Read = true })
		if !ok {
			writeErr(w, http.StatusNotFound, "notification not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, n)
	})
	r.Put("/notifications/mark-all-read", func(w http.ResponseWriter, r *http.Request) {
		s.notifications.mu.Lock()
		for i := range s.notifications.items {
			s.notifications.items[i].Read = true
		}
		s.notifications.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "all read"})
	})
	r.Get("/notifications/unread-count", func(w http.ResponseWriter, r *http.Request) {
		s.notifications.mu.Lock()
		n := 0
		for _, it := range s.notifications.items {
			if !it.Read {
				n++
			}
		}
		s.notifications.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
	})
}
