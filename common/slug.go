package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")

	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	wordReplacer = strings.NewReplacer("&", " and ", "+", " plus ")
)

// Slug turns a display title into a URL-safe identifier, e.g.
// "Education & Future" becomes "education-and-future".
func Slug(title string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(wordReplacer.Replace(title)))
	slug := strings.Trim(nonSlugChars.ReplaceAllString(lower, "-"), "-")
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}
