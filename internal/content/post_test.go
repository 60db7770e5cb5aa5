// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"
	"testing"
)

// words builds a body with exactly n whitespace-separated words.
func words(n int) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		expected int
	}{
		{"empty body clamps to one minute", 0, 1},
		{"one word", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"two minutes", 400, 2},
		{"long read", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateReadingTime(words(tt.words))
			if got != tt.expected {
				t.Errorf("EstimateReadingTime(%d words) = %d, want %d", tt.words, got, tt.expected)
			}
		})
	}
}

func TestEstimateReadingTime_Monotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{1, 50, 199, 200, 201, 400, 401, 1000} {
		got := EstimateReadingTime(words(n))
		if got < prev {
			t.Errorf("reading time decreased at %d words: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestEstimateReadingTime_WhitespaceRuns(t *testing.T) {
	// Runs of whitespace count as a single separator
	if got := EstimateReadingTime("one\t\ttwo\n\nthree   four"); got != 1 {
		t.Errorf("EstimateReadingTime = %d, want 1", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"tech", CategoryTech},
		{"personal", CategoryPersonal},
		{"Tech", CategoryTech},
		{" PERSONAL ", CategoryPersonal},
		{"", DefaultCategory},
		{"gardening", DefaultCategory},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.input); got != tt.expected {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
