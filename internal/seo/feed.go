// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"time"
)

// AtomNamespace is the Atom XML namespace used for the self-link.
const AtomNamespace = "http://www.w3.org/2005/Atom"

// feedLanguages maps site locales to RSS language codes.
var feedLanguages = map[string]string{
	"en": "en-US",
	"de": "de-DE",
}

// RSS is the root element of an RSS 2.0 document.
type RSS struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	XMLNSAtom string   `xml:"xmlns:atom,attr"`
	Channel   Channel  `xml:"channel"`
}

// Channel describes the feed itself.
type Channel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Language      string     `xml:"language"`
	LastBuildDate string     `xml:"lastBuildDate,omitempty"`
	AtomLink      AtomLink   `xml:"atom:link"`
	Items         []FeedItem `xml:"item"`
}

// AtomLink is the feed's self-referencing link.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// FeedItem is a single entry in the feed.
type FeedItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        GUID     `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

// GUID is an item's globally unique identifier.
type GUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// FeedPost contains data needed to add a blog post to the feed.
type FeedPost struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Category    string
	Tags        []string
}

// FeedBuilder builds an RSS 2.0 feed for a single locale. All text
// content passes through encoding/xml and is escaped on output.
type FeedBuilder struct {
	siteURL     string
	locale      string
	title       string
	description string
	items       []FeedItem
	lastBuild   time.Time
}

// NewFeedBuilder creates a new feed builder for the given locale.
func NewFeedBuilder(siteURL, locale, title, description string) *FeedBuilder {
	return &FeedBuilder{
		siteURL:     siteURL,
		locale:      locale,
		title:       title,
		description: description,
		items:       make([]FeedItem, 0),
	}
}

// AddPost appends a blog post to the feed.
func (b *FeedBuilder) AddPost(post FeedPost) {
	link := b.siteURL + "/" + b.locale + "/blog/" + post.Slug

	item := FeedItem{
		Title:       post.Title,
		Link:        link,
		GUID:        GUID{IsPermaLink: true, Value: link},
		Description: post.Description,
	}
	if !post.Date.IsZero() {
		item.PubDate = post.Date.Format(time.RFC1123Z)
		if post.Date.After(b.lastBuild) {
			b.lastBuild = post.Date
		}
	}
	if post.Category != "" {
		item.Categories = append(item.Categories, post.Category)
	}
	item.Categories = append(item.Categories, post.Tags...)

	b.items = append(b.items, item)
}

// AddPosts appends multiple blog posts to the feed.
func (b *FeedBuilder) AddPosts(posts []FeedPost) {
	for _, p := range posts {
		b.AddPost(p)
	}
}

// Build generates the RSS XML.
func (b *FeedBuilder) Build() ([]byte, error) {
	language, ok := feedLanguages[b.locale]
	if !ok {
		language = b.locale
	}

	feed := RSS{
		Version:   "2.0",
		XMLNSAtom: AtomNamespace,
		Channel: Channel{
			Title:       b.title,
			Link:        b.siteURL + "/" + b.locale,
			Description: b.description,
			Language:    language,
			AtomLink: AtomLink{
				Href: b.siteURL + "/" + b.locale + "/feed.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: b.items,
		},
	}
	if !b.lastBuild.IsZero() {
		feed.Channel.LastBuildDate = b.lastBuild.Format(time.RFC1123Z)
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
