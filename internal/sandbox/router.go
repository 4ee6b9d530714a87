package sandbox

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubpro-dev/qistadmin/internal/logger"
)

// Handler returns the sandbox REST surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)

		r.Get("/profile", s.handleProfile)
		r.Put("/profile", s.handleUpdateProfile)

		s.mountBrands(r)
		s.mountCatalog(r)
		s.mountOrders(r)
		s.mountDealers(r)
		s.mountCustomers(r)
		s.mountContent(r)
		s.mountNotifications(r)
	})
	return r
}

// requireToken verifies the HS256 token the sandbox itself minted. The real
// backend is the trust boundary; here we just mirror its behavior.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeErr(w, http.StatusUnauthorized, "please log in", nil)
			return
		}
		tok := strings.TrimPrefix(auth, "Bearer ")
		_, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return s.secret, nil
		})
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "please log in", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if body.Email != s.adminProfile.Email ||
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(body.Password)) != nil {
		writeErr(w, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	claims := jwt.MapClaims{
		"sub":      s.adminProfile.ID,
		"adminId":  s.adminProfile.ID,
		"fullName": s.adminProfile.FullName,
		"email":    s.adminProfile.Email,
		"isSuper":  s.adminProfile.IsSuper,
		"isAdmin":  s.adminProfile.IsAdmin,
		"isAccess": s.adminProfile.IsAccess,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		logger.L.Error("token mint failed", "err", err)
		writeErr(w, http.StatusInternalServerError, "could not issue token", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.adminProfile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if name := in.str("fullName"); name != "" {
		s.adminProfile.FullName = name
	}
	if f := in.file("profilePicture"); f != "" {
		s.adminProfile.ProfilePicture = "/uploads/" + f
	}
	writeJSON(w, http.StatusOK, s.adminProfile)
}

// input abstracts over JSON and multipart bodies; image-bearing resources
// arrive as multipart, everything else as JSON.
type input struct {
	values map[string]any
	files  map[string]string
}

func (in input) str(key string) string {
	switch v := in.values[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func (in input) boolean(key string) bool {
	switch v := in.values[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func (in input) float(key string) float64 {
	switch v := in.values[key].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func (in input) integer(key string) int {
	switch v := in.values[key].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// file returns the uploaded file name for the given part, if any.
func (in input) file(key string) string { return in.files[key] }

func (in input) ids() []string {
	raw, ok := in.values["ids"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func decodeInput(r *http.Request) (input, error) {
	in := input{values: map[string]any{}, files: map[string]string{}}
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return in, err
		}
		for k, vs := range r.MultipartForm.Value {
			if len(vs) > 0 {
				in.values[k] = vs[0]
			}
		}
		for k, fs := range r.MultipartForm.File {
			if len(fs) > 0 {
				in.files[k] = fs[0].Filename
			}
		}
		return in, nil
	}
	if r.Body == nil || r.ContentLength == 0 {
		return in, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&in.values); err != nil {
		return in, err
	}
	return in, nil
}

// itemHandler serves GET /<resource>/{id} straight from a store.
func itemHandler[T any](st *store[T], notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, ok := st.get(chi.URLParam(r, "id"))
		if !ok {
			writeErr(w, http.StatusNotFound, notFound, nil)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("response encode failed", "err", err)
	}
}

func writeErr(w http.ResponseWriter, status int, message string, fields map[string]string) {
	body := map[string]any{"message": message}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	writeJSON(w, status, body)
}
