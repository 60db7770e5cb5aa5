// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter holds the recognized metadata keys of a post file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
}

// delimiter separates the front matter block from the markdown body.
var delimiter = []byte("---")

// splitFrontMatter splits a post file into its front matter block and body.
// A file without a leading delimiter line has no front matter; the whole
// file is the body and all metadata defaults apply.
func splitFrontMatter(data []byte) (meta, body []byte) {
	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // strip UTF-8 BOM

	if !bytes.HasPrefix(trimmed, delimiter) {
		return nil, trimmed
	}
	rest := trimmed[len(delimiter):]
	if len(rest) == 0 || (rest[0] != '\n' && !bytes.HasPrefix(rest, []byte("\r\n"))) {
		return nil, trimmed
	}

	// Find the closing delimiter on its own line
	end := bytes.Index(rest, []byte("\n---"))
	if end == -1 {
		return nil, trimmed
	}
	meta = rest[:end+1]
	body = rest[end+1+len(delimiter):]

	// Drop the newline terminating the closing delimiter line
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, body
}

// parseFrontMatter decodes a YAML front matter block.
// A nil or empty block yields zero values (defaults apply downstream).
func parseFrontMatter(meta []byte) (frontMatter, error) {
	var fm frontMatter
	if len(meta) == 0 {
		return fm, nil
	}
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return fm, fmt.Errorf("parsing front matter: %w", err)
	}
	return fm, nil
}

// dateLayouts are the accepted front-matter date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDate normalizes a front-matter date string to a timestamp.
// Missing or unparsable dates fall back to the current time.
func parseDate(s string, now func() time.Time) time.Time {
	if s == "" {
		return now()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now()
}
