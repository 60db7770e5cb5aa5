package i18n

import (
	"testing"
)

func TestInit(t *testing.T) {
	// Initialize without logger
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Verify translations loaded
	if TranslationCount("en") == 0 {
		t.Error("Expected English translations to be loaded")
	}
	if TranslationCount("de") == 0 {
		t.Error("Expected German translations to be loaded")
	}
}

func TestT(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		lang     string
		key      string
		args     []any
		expected string
	}{
		{"en", "nav.blog", nil, "Blog"},
		{"de", "nav.contact", nil, "Kontakt"},
		{"en", "nav.contact", nil, "Contact"},
		{"de", "nav.about", nil, "Über mich"},
		{"en", "blog.reading_time", []any{3}, "3 min read"},
		{"de", "blog.reading_time", []any{3}, "3 Min. Lesezeit"},
		// Fallback to English for unknown language
		{"fr", "nav.blog", nil, "Blog"},
		// Return key if not found
		{"en", "nonexistent.key", nil, "nonexistent.key"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.key, func(t *testing.T) {
			result := T(tt.lang, tt.key, tt.args...)
			if result != tt.expected {
				t.Errorf("T(%q, %q, %v) = %q, want %q", tt.lang, tt.key, tt.args, result, tt.expected)
			}
		})
	}
}

func TestMatchLanguage(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"de", "de"},
		{"en-US", "en"},
		{"de-DE", "de"},
		{"fr", "en"},      // Falls back to default
		{"invalid", "en"}, // Falls back to default
		{"de-AT, en;q=0.9", "de"},
		{"en-GB, de;q=0.8", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := MatchLanguage(tt.input)
			if result != tt.expected {
				t.Errorf("MatchLanguage(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"de", true},
		{"EN", true},
		{"fr", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.lang); got != tt.expected {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.lang, got, tt.expected)
		}
	}
}
