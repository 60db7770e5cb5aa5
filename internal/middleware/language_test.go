package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mkessler/folio-go/internal/i18n"
)

func localeEcho(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetLocale(r)))
	}
}

func TestLocale_URLParam(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Route("/{lang:[a-z]{2}}", func(r chi.Router) {
		r.Use(Locale("en"))
		r.Get("/blog", localeEcho(t))
	})

	req := httptest.NewRequest(http.MethodGet, "/de/blog", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "de" {
		t.Errorf("locale = %q, want %q", rec.Body.String(), "de")
	}
}

func TestLocale_QueryParam(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Use(Locale("en"))
	r.Get("/blog", localeEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/blog?lang=de", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "de" {
		t.Errorf("locale = %q, want %q", rec.Body.String(), "de")
	}
}

func TestLocale_AcceptLanguage(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Use(Locale("en"))
	r.Get("/", localeEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE, en;q=0.8")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "de" {
		t.Errorf("locale = %q, want %q", rec.Body.String(), "de")
	}
}

func TestLocale_Default(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Use(Locale("en"))
	r.Get("/", localeEcho(t))

	// Unsupported URL locale falls back to the default
	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "en" {
		t.Errorf("locale = %q, want %q", rec.Body.String(), "en")
	}
}

func TestRequireSupportedLocale(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Route("/{lang:[a-z]{2}}", func(r chi.Router) {
		r.Use(RequireSupportedLocale)
		r.Use(Locale("en"))
		r.Get("/blog", localeEcho(t))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr/blog", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unsupported locale: status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/de/blog", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("supported locale: status = %d, want 200", rec.Code)
	}
}

func TestGetLocale_NoMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetLocale(req); got != i18n.DefaultLocale {
		t.Errorf("GetLocale without middleware = %q, want %q", got, i18n.DefaultLocale)
	}
}
