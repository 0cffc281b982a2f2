package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "german umlauts",
			title:    "Früh Stück!",
			expected: "frueh-stueck",
		},
		{
			name:     "already a slug",
			title:    "already-a-slug",
			expected: "already-a-slug",
		},
		{
			name:     "no alphanumeric content",
			title:    "!!!",
			expected: "",
		},
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
		{
			name:     "sharp s",
			title:    "Straße",
			expected: "strasse",
		},
		{
			name:     "mixed punctuation collapses to single hyphen",
			title:    "Go -- & mehr!",
			expected: "go-mehr",
		},
		{
			name:     "leading and trailing separators trimmed",
			title:    "  (Klammern)  ",
			expected: "klammern",
		},
		{
			name:     "digits survive",
			title:    "Release 2.0",
			expected: "release-2-0",
		},
		{
			name:     "untranslated runes collapse into hyphens",
			title:    "日本語 Post",
			expected: "post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Ärger über Größe"
	first := Slugify(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify(title))
	}
}
