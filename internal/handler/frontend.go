// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the application.
package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkessler/folio-go/internal/config"
	"github.com/mkessler/folio-go/internal/content"
	"github.com/mkessler/folio-go/internal/i18n"
	"github.com/mkessler/folio-go/internal/middleware"
	"github.com/mkessler/folio-go/internal/project"
	"github.com/mkessler/folio-go/internal/render"
	"github.com/mkessler/folio-go/internal/util"
)

const recentPostsLimit = 3

// FrontendHandler serves the public site pages.
type FrontendHandler struct {
	cfg      *config.Config
	store    *content.Store
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewFrontendHandler creates a frontend handler.
func NewFrontendHandler(cfg *config.Config, store *content.Store, renderer *render.Renderer, logger *slog.Logger) *FrontendHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FrontendHandler{
		cfg:      cfg,
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

type homeData struct {
	FeaturedProjects []project.Project
	RecentPosts      []content.PostMeta
}

// Home handles GET /{lang}.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	posts := h.store.ListPostsMeta(locale)
	if len(posts) > recentPostsLimit {
		posts = posts[:recentPostsLimit]
	}

	h.renderPage(w, r, "home", render.TemplateData{
		Description: i18n.T(locale, "site.tagline"),
		Locale:      locale,
		Data: homeData{
			FeaturedProjects: project.Featured(),
			RecentPosts:      posts,
		},
	})
}

type aboutData struct {
	HTML template.HTML
}

// About handles GET /{lang}/about.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	var body template.HTML
	page, err := h.store.GetPage("about", locale)
	if err == nil {
		html, err := content.ToHTML(page.Content)
		if err != nil {
			h.logger.Error("rendering about page", "locale", locale, "error", err)
			h.serverError(w)
			return
		}
		body = template.HTML(html)
	} else if !errors.Is(err, content.ErrNotFound) {
		h.logger.Error("loading about page", "locale", locale, "error", err)
		h.serverError(w)
		return
	}

	h.renderPage(w, r, "about", render.TemplateData{
		Title:  i18n.T(locale, "about.title"),
		Locale: locale,
		Data:   aboutData{HTML: body},
	})
}

type portfolioData struct {
	Projects []project.Project
	Category string
}

// Portfolio handles GET /{lang}/portfolio with an optional category filter.
func (h *FrontendHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	projects := project.All()
	category := ""
	if cat, ok := project.ParseCategory(r.URL.Query().Get("category")); ok {
		projects = project.ByCategory(cat)
		category = string(cat)
	}

	h.renderPage(w, r, "portfolio", render.TemplateData{
		Title:  i18n.T(locale, "portfolio.title"),
		Locale: locale,
		Data: portfolioData{
			Projects: projects,
			Category: category,
		},
	})
}

// PortfolioProject handles GET /{lang}/portfolio/{slug}.
func (h *FrontendHandler) PortfolioProject(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	proj, ok := project.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		h.NotFound(w, r)
		return
	}

	h.renderPage(w, r, "portfolio_project", render.TemplateData{
		Title:       proj.Title,
		Description: proj.Description,
		Locale:      locale,
		Data:        proj,
	})
}

type blogData struct {
	Posts    []content.PostMeta
	Category string
	Tag      string
}

// Blog handles GET /{lang}/blog with optional category and tag filters.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	query := r.URL.Query()

	var posts []content.PostMeta
	category := ""
	if cat, ok := content.ParseCategoryStrict(query.Get("category")); ok {
		posts = h.store.ListPostsByCategory(locale, cat)
		category = string(cat)
	} else {
		posts = h.store.ListPostsMeta(locale)
	}

	// Tags are matched in slugified form so links survive casing and umlauts
	tag := query.Get("tag")
	if tag != "" {
		filtered := posts[:0:0]
		for _, p := range posts {
			for _, t := range p.Tags {
				if util.Slugify(t) == tag {
					filtered = append(filtered, p)
					break
				}
			}
		}
		posts = filtered
	}

	h.renderPage(w, r, "blog", render.TemplateData{
		Title:       i18n.T(locale, "blog.title"),
		Description: i18n.T(locale, "blog.description"),
		Locale:      locale,
		Data: blogData{
			Posts:    posts,
			Category: category,
			Tag:      tag,
		},
	})
}

type blogPostData struct {
	Meta content.PostMeta
	HTML template.HTML
}

// BlogPost handles GET /{lang}/blog/{slug}.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	slug := chi.URLParam(r, "slug")

	post, err := h.store.GetPost(slug, locale)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.logger.Error("loading post", "slug", slug, "locale", locale, "error", err)
		h.serverError(w)
		return
	}

	html, err := content.ToHTML(post.Content)
	if err != nil {
		h.logger.Error("rendering post", "slug", slug, "locale", locale, "error", err)
		h.serverError(w)
		return
	}

	h.renderPage(w, r, "blog_post", render.TemplateData{
		Title:       post.Title,
		Description: post.Description,
		Locale:      locale,
		Data: blogPostData{
			Meta: post.Meta(),
			HTML: template.HTML(html),
		},
	})
}

// ContactPage handles GET /{lang}/contact.
func (h *FrontendHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	h.renderPage(w, r, "contact", render.TemplateData{
		Title:  i18n.T(locale, "contact.title"),
		Locale: locale,
	})
}

// NotFound renders the localized 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	w.WriteHeader(http.StatusNotFound)
	data := render.TemplateData{
		Title:  i18n.T(locale, "notfound.title"),
		Locale: locale,
	}
	if err := h.renderer.Render(w, "404", data); err != nil {
		h.logger.Error("rendering 404 page", "error", err)
	}
}

func (h *FrontendHandler) renderPage(w http.ResponseWriter, r *http.Request, name string, data render.TemplateData) {
	if err := h.renderer.Render(w, name, data); err != nil {
		h.logger.Error("rendering page", "template", name, "path", r.URL.Path, "error", err)
		h.serverError(w)
	}
}

func (h *FrontendHandler) serverError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
