// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads blog posts from per-locale markdown files and
// converts post bodies to sanitized HTML.
package content

import (
	"strings"
	"time"
)

// Category classifies a blog post.
type Category string

// Valid post categories.
const (
	CategoryTech     Category = "tech"
	CategoryPersonal Category = "personal"
)

// DefaultCategory is assigned when front matter omits or misspells the category.
const DefaultCategory = CategoryTech

// DefaultTitle is the placeholder title for posts without one.
const DefaultTitle = "Untitled"

// ParseCategory maps a front-matter category string onto the closed enum,
// falling back to DefaultCategory for unknown values.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTech:
		return CategoryTech
	case CategoryPersonal:
		return CategoryPersonal
	default:
		return DefaultCategory
	}
}

// ParseCategoryStrict maps a category string onto the closed enum without
// a fallback. Used for query filters where an unknown value means "no filter".
func ParseCategoryStrict(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTech:
		return CategoryTech, true
	case CategoryPersonal:
		return CategoryPersonal, true
	default:
		return "", false
	}
}

// Post is a fully loaded blog post including its raw markdown body.
type Post struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Category    Category
	Tags        []string
	ReadingTime int // minutes
	Content     string
}

// PostMeta is a Post without its body, used for listings and feeds.
type PostMeta struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Category    Category
	Tags        []string
	ReadingTime int
}

// Meta strips the body from a post.
func (p *Post) Meta() PostMeta {
	return PostMeta{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Category:    p.Category,
		Tags:        p.Tags,
		ReadingTime: p.ReadingTime,
	}
}

// wordsPerMinute is the fixed reading rate used for the reading time estimate.
const wordsPerMinute = 200

// EstimateReadingTime returns the reading time for a markdown body in whole
// minutes, rounded up. The result is clamped to a minimum of one minute so an
// empty post never advertises a zero-minute read.
func EstimateReadingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
