// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import "strings"

// RobotsBuilder builds robots.txt content.
type RobotsBuilder struct {
	siteURL     string
	disallowAll bool
	disallowed  []string
}

// NewRobotsBuilder creates a new robots.txt builder.
func NewRobotsBuilder(siteURL string) *RobotsBuilder {
	return &RobotsBuilder{
		siteURL:    siteURL,
		disallowed: make([]string, 0),
	}
}

// DisallowAll blocks all crawlers from the entire site.
func (b *RobotsBuilder) DisallowAll() *RobotsBuilder {
	b.disallowAll = true
	return b
}

// Disallow adds a path prefix crawlers should not visit.
func (b *RobotsBuilder) Disallow(path string) *RobotsBuilder {
	b.disallowed = append(b.disallowed, path)
	return b
}

// Build generates the robots.txt content.
func (b *RobotsBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")

	if b.disallowAll {
		sb.WriteString("Disallow: /\n")
		return sb.String()
	}

	if len(b.disallowed) == 0 {
		sb.WriteString("Allow: /\n")
	}
	for _, path := range b.disallowed {
		sb.WriteString("Disallow: " + path + "\n")
	}

	sb.WriteString("\nSitemap: " + b.siteURL + "/sitemap.xml\n")

	return sb.String()
}
