package engine

import (
	"strings"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Senior Go engineer</p>", "Senior Go engineer"},
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{"<div><b>5+ years</b> of experience</div>", "5+ years of experience"},
	}
	for _, tt := range tests {
		if got := CleanHTML(tt.in); got != tt.want {
			t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanDescription(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		in := "We need 5 years experience with Python."
		if got := CleanDescription(in); got != in {
			t.Errorf("CleanDescription = %q, want unchanged", got)
		}
	})

	t.Run("html is converted", func(t *testing.T) {
		got := CleanDescription("<ul><li>Python</li><li>Docker</li></ul>")
		if strings.Contains(got, "<li>") {
			t.Errorf("tags survived conversion: %q", got)
		}
		if !strings.Contains(got, "Python") || !strings.Contains(got, "Docker") {
			t.Errorf("content lost in conversion: %q", got)
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q, want abc", got)
	}
	if got := Truncate("ab", 3); got != "ab" {
		t.Errorf("Truncate = %q, want ab", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("привет мир", 6, "…"); !strings.HasPrefix(got, "привет") {
		t.Errorf("TruncateRunes = %q, want prefix привет", got)
	}
	if got := TruncateRunes("short", 10, "…"); got != "short" {
		t.Errorf("TruncateRunes = %q, want short", got)
	}
}
