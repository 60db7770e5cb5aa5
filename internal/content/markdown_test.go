// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains []string
		excludes []string
	}{
		{
			name:     "heading",
			markdown: "# Title",
			contains: []string{"<h1", "Title"},
		},
		{
			name:     "emphasis and strong",
			markdown: "some *em* and **strong** text",
			contains: []string{"<em>em</em>", "<strong>strong</strong>"},
		},
		{
			name:     "list",
			markdown: "- one\n- two\n",
			contains: []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "link",
			markdown: "[site](https://example.com)",
			contains: []string{`<a href="https://example.com"`},
		},
		{
			name:     "code block",
			markdown: "```\nfmt.Println(\"hi\")\n```\n",
			contains: []string{"<pre>", "<code>"},
		},
		{
			name:     "script tag is stripped",
			markdown: "hello <script>alert(1)</script> world",
			contains: []string{"hello"},
			excludes: []string{"<script>"},
		},
		{
			name:     "event handler is stripped",
			markdown: `<p onclick="evil()">text</p>`,
			contains: []string{"text"},
			excludes: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := ToHTML(tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("ToHTML(%q) = %q, should contain %q", tt.markdown, html, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(html, bad) {
					t.Errorf("ToHTML(%q) = %q, should not contain %q", tt.markdown, html, bad)
				}
			}
		})
	}
}
