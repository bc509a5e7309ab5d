package genimage

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxSlugWords = 4

// Slug derives a filesystem-friendly caption from a prompt: the first few
// words, title-cased and joined with dashes. Prompts with no usable
// characters fall back to "Image".
func Slug(prompt string) string {
	words := strings.Fields(strings.TrimSpace(prompt))
	if len(words) > maxSlugWords {
		words = words[:maxSlugWords]
	}

	titler := cases.Title(language.Und)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, w)
		if cleaned == "" {
			continue
		}
		parts = append(parts, titler.String(cleaned))
	}
	if len(parts) == 0 {
		return "Image"
	}
	return strings.Join(parts, "-")
}
