// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer provides a reusable HTML sanitization policy for rendered
// post bodies. It uses bluemonday's UGCPolicy which allows safe HTML tags
// while stripping potentially dangerous elements like <script>, event
// handlers, etc. Content authors are trusted, end users are not.
var htmlSanitizer = bluemonday.UGCPolicy()

// ToHTML converts a markdown body to sanitized HTML.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
