// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package project holds the curated portfolio project list. Projects are
// defined in code rather than loaded from disk; the list is small, changes
// rarely, and ships with the binary.
package project

// Category classifies a portfolio project.
type Category string

// Valid project categories.
const (
	CategorySoftware Category = "software"
	CategoryDesign   Category = "design"
)

// ParseCategory maps a query string onto the closed enum.
// Returns ok=false for unknown values.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategorySoftware:
		return CategorySoftware, true
	case CategoryDesign:
		return CategoryDesign, true
	default:
		return "", false
	}
}

// Project describes a single portfolio entry.
type Project struct {
	Slug            string
	Title           string
	Description     string
	LongDescription string
	Category        Category
	Tech            []string
	Image           string
	GitHub          string
	Demo            string
	Featured        bool
}

// projects is the curated portfolio list. Slugs are unique across the list.
var projects = []Project{
	{
		Slug:        "personal-website",
		Title:       "Personal Website",
		Description: "My personal portfolio website with blog, built with Go and server-rendered templates.",
		LongDescription: "This website is my digital home on the internet. It showcases my projects, " +
			"shares my thoughts on the blog, and lets visitors get in touch.\n\n" +
			"Features: bilingual (English/German), blog with markdown content, contact form, " +
			"self-hosted on my own server.",
		Category: CategorySoftware,
		Tech:     []string{"Go", "chi", "html/template", "Markdown"},
		Featured: true,
	},
	{
		Slug:        "cli-tool",
		Title:       "CLI Productivity Tool",
		Description: "A command-line tool automating recurring developer chores.",
		Category:    CategorySoftware,
		Tech:        []string{"Rust", "CLI", "Cross-platform"},
		GitHub:      "https://github.com",
		Featured:    true,
	},
	{
		Slug:        "mobile-app",
		Title:       "Fitness Tracker App",
		Description: "A mobile app for tracking workouts and nutrition with rich visualizations.",
		Category:    CategorySoftware,
		Tech:        []string{"React Native", "TypeScript", "Firebase"},
		Featured:    true,
	},
	{
		Slug:        "brand-identity",
		Title:       "Brand Identity Design",
		Description: "Complete branding package for a tech startup including logo, colors, and typography.",
		Category:    CategoryDesign,
		Tech:        []string{"Figma", "Illustrator", "Brand Design"},
		Featured:    false,
	},
	{
		Slug:        "dashboard-ui",
		Title:       "Analytics Dashboard",
		Description: "UI/UX design for a data analytics dashboard with complex visualizations.",
		Category:    CategoryDesign,
		Tech:        []string{"Figma", "UI/UX", "Data Visualization"},
		Featured:    true,
	},
	{
		Slug:        "api-service",
		Title:       "REST API Service",
		Description: "A scalable API service with authentication, rate limiting, and documentation.",
		Category:    CategorySoftware,
		Tech:        []string{"Go", "PostgreSQL", "Docker"},
		GitHub:      "https://github.com",
		Demo:        "https://api.example.com",
		Featured:    false,
	},
}

// All returns every project in display order.
func All() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

// ByCategory returns the projects in a category, keeping display order.
func ByCategory(cat Category) []Project {
	var out []Project
	for _, p := range projects {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the projects flagged for the homepage.
func Featured() []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// BySlug looks up a single project.
func BySlug(slug string) (Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}
