// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo provides builders for sitemaps, robots.txt, and RSS feeds.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapPost contains data needed to add a blog post to the sitemap.
type SitemapPost struct {
	Slug string
	Date time.Time
}

// SitemapBuilder builds sitemap XML for a multi-locale site.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds a locale's homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage(locale string) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + locale,
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddStaticPage adds a locale-prefixed static page (about, portfolio, ...).
func (b *SitemapBuilder) AddStaticPage(locale, page string) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + locale + "/" + page,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.7",
	})
}

// AddPost adds a blog post to the sitemap.
func (b *SitemapBuilder) AddPost(locale string, post SitemapPost) {
	url := SitemapURL{
		Loc:        b.siteURL + "/" + locale + "/blog/" + post.Slug,
		ChangeFreq: ChangeFreqYearly,
		Priority:   "0.8",
	}
	if !post.Date.IsZero() {
		url.LastMod = post.Date.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddPosts adds multiple blog posts to the sitemap.
func (b *SitemapBuilder) AddPosts(locale string, posts []SitemapPost) {
	for _, p := range posts {
		b.AddPost(locale, p)
	}
}

// AddProject adds a portfolio project page to the sitemap.
func (b *SitemapBuilder) AddProject(locale, slug string) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + locale + "/portfolio/" + slug,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.6",
	})
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
