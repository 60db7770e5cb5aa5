// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mkessler/folio-go/internal/util"
)

// ErrNotFound is returned when no post file exists for a slug and locale.
var ErrNotFound = errors.New("post not found")

// Store reads posts from a directory of per-locale markdown files.
// Files are immutable once written and are read on every request; the
// filesystem is the single source of truth, there is no cross-request cache.
type Store struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a content store rooted at dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}
}

// isValidLocale reports whether s looks like a two-letter locale code.
// Validated before joining into a filesystem path.
func isValidLocale(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ListSlugs returns the alphabetically sorted slugs available for a locale.
// A missing locale directory is a defined empty state, not an error.
func (s *Store) ListSlugs(locale string) []string {
	if !isValidLocale(locale) {
		return nil
	}

	entries, err := os.ReadDir(filepath.Join(s.dir, locale))
	if err != nil {
		return nil
	}

	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}

	// ReadDir order is not guaranteed across platforms; sort for determinism
	sort.Strings(slugs)
	return slugs
}

// GetPost loads a single post including its raw markdown body.
// Returns ErrNotFound when no file matches the slug and locale.
func (s *Store) GetPost(slug, locale string) (*Post, error) {
	// Slug and locale are joined into a filesystem path; reject anything
	// that could escape the content directory.
	if !util.IsValidSlug(slug) || !isValidLocale(locale) {
		return nil, ErrNotFound
	}

	path := filepath.Join(s.dir, locale, slug+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading post %s/%s: %w", locale, slug, err)
	}

	meta, body := splitFrontMatter(data)
	fm, err := parseFrontMatter(meta)
	if err != nil {
		return nil, fmt.Errorf("post %s/%s: %w", locale, slug, err)
	}

	title := fm.Title
	if title == "" {
		title = DefaultTitle
	}
	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Post{
		Slug:        slug,
		Title:       title,
		Description: fm.Description,
		Date:        parseDate(fm.Date, s.now),
		Category:    ParseCategory(fm.Category),
		Tags:        tags,
		ReadingTime: EstimateReadingTime(string(body)),
		Content:     string(body),
	}, nil
}

// GetPage loads a static markdown page from the locale's pages directory.
// Pages share the post format but never appear in listings or feeds.
func (s *Store) GetPage(name, locale string) (*Post, error) {
	if !util.IsValidSlug(name) || !isValidLocale(locale) {
		return nil, ErrNotFound
	}

	path := filepath.Join(s.dir, locale, "pages", name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading page %s/%s: %w", locale, name, err)
	}

	meta, body := splitFrontMatter(data)
	fm, err := parseFrontMatter(meta)
	if err != nil {
		return nil, fmt.Errorf("page %s/%s: %w", locale, name, err)
	}

	title := fm.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Post{
		Slug:        name,
		Title:       title,
		Description: fm.Description,
		Date:        parseDate(fm.Date, s.now),
		Category:    ParseCategory(fm.Category),
		Tags:        []string{},
		ReadingTime: EstimateReadingTime(string(body)),
		Content:     string(body),
	}, nil
}

// ListPostsMeta returns post metadata for a locale, sorted by date descending.
// Posts that fail to load are skipped so one broken file cannot take down the
// whole listing. The alphabetical slug pre-order from ListSlugs combined with
// a stable sort makes the output deterministic for identical dates.
func (s *Store) ListPostsMeta(locale string) []PostMeta {
	slugs := s.ListSlugs(locale)

	posts := make([]PostMeta, 0, len(slugs))
	for _, slug := range slugs {
		post, err := s.GetPost(slug, locale)
		if err != nil {
			s.logger.Warn("skipping unreadable post", "slug", slug, "locale", locale, "error", err)
			continue
		}
		posts = append(posts, post.Meta())
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts
}

// ListPostsByCategory returns the posts of a locale filtered by category.
func (s *Store) ListPostsByCategory(locale string, cat Category) []PostMeta {
	all := s.ListPostsMeta(locale)
	filtered := make([]PostMeta, 0, len(all))
	for _, p := range all {
		if p.Category == cat {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
