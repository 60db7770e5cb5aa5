// Package middleware provides HTTP middleware for locale detection,
// rate limiting, and request hardening.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkessler/folio-go/internal/i18n"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyLocale is the context key for the resolved locale code.
const ContextKeyLocale ContextKey = "locale"

// Locale creates middleware that resolves the locale for each request.
// Priority order:
// 1. URL parameter {lang} from chi router (e.g., /de/blog)
// 2. Query parameter ?lang=XX (explicit language switch)
// 3. Accept-Language header
// 4. Default locale
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := defaultLocale

			switch {
			case isSupported(chi.URLParam(r, "lang")):
				locale = strings.ToLower(chi.URLParam(r, "lang"))
			case isSupported(r.URL.Query().Get("lang")):
				locale = strings.ToLower(r.URL.Query().Get("lang"))
			default:
				if accept := r.Header.Get("Accept-Language"); accept != "" {
					locale = i18n.MatchLanguage(accept)
				}
			}

			ctx := context.WithValue(r.Context(), ContextKeyLocale, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSupportedLocale rejects requests whose {lang} URL parameter is
// not a supported locale. Mounted before Locale on prefixed routes so
// /xx/... paths 404 instead of silently serving the default language.
func RequireSupportedLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lang := chi.URLParam(r, "lang"); lang != "" && !i18n.IsSupported(lang) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isSupported(lang string) bool {
	return lang != "" && i18n.IsSupported(lang)
}

// GetLocale retrieves the resolved locale from the request context.
func GetLocale(r *http.Request) string {
	if locale, ok := r.Context().Value(ContextKeyLocale).(string); ok {
		return locale
	}
	return i18n.DefaultLocale
}
