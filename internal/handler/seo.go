// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/mkessler/folio-go/internal/config"
	"github.com/mkessler/folio-go/internal/content"
	"github.com/mkessler/folio-go/internal/i18n"
	"github.com/mkessler/folio-go/internal/middleware"
	"github.com/mkessler/folio-go/internal/project"
	"github.com/mkessler/folio-go/internal/seo"
)

// staticPages are the locale-prefixed pages listed in the sitemap.
var staticPages = []string{"about", "portfolio", "blog", "contact"}

// SEOHandler serves sitemap.xml, robots.txt, and per-locale RSS feeds.
type SEOHandler struct {
	cfg    *config.Config
	store  *content.Store
	logger *slog.Logger
}

// NewSEOHandler creates an SEO handler.
func NewSEOHandler(cfg *config.Config, store *content.Store, logger *slog.Logger) *SEOHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SEOHandler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	builder := seo.NewSitemapBuilder(h.cfg.SiteURL)

	for _, locale := range i18n.SupportedLocales {
		builder.AddHomepage(locale)
		for _, page := range staticPages {
			builder.AddStaticPage(locale, page)
		}
		for _, p := range h.store.ListPostsMeta(locale) {
			builder.AddPost(locale, seo.SitemapPost{Slug: p.Slug, Date: p.Date})
		}
		for _, p := range project.All() {
			builder.AddProject(locale, p.Slug)
		}
	}

	output, err := builder.Build()
	if err != nil {
		h.logger.Error("building sitemap", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(output)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	builder := seo.NewRobotsBuilder(h.cfg.SiteURL)
	if h.cfg.RobotsDisallowAll {
		builder.DisallowAll()
	} else {
		builder.Disallow("/api/")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(builder.Build()))
}

// Feed handles GET /{lang}/feed.xml.
func (h *SEOHandler) Feed(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	builder := seo.NewFeedBuilder(h.cfg.SiteURL, locale, h.cfg.SiteName, i18n.T(locale, "blog.description"))
	for _, p := range h.store.ListPostsMeta(locale) {
		builder.AddPost(seo.FeedPost{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Date:        p.Date,
			Category:    string(p.Category),
			Tags:        p.Tags,
		})
	}

	output, err := builder.Build()
	if err != nil {
		h.logger.Error("building feed", "locale", locale, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(output)
}
