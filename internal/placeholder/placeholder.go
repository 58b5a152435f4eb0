// Package placeholder implements the placeholder token engine: extraction,
// substitution and validation of {{UPPER_SNAKE_CASE}} tokens embedded in
// template content, plus slug derivation from display names.
package placeholder

import (
	"regexp"
	"strings"
)

// tokenRegex matches a recognized placeholder token: one or more uppercase
// ASCII letters or underscores between double braces. Anything else between
// braces (lowercase, digits, spaces) is not a placeholder and stays literal.
var tokenRegex = regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

// braceRegex matches any double-brace-delimited sequence, well-formed or not
var braceRegex = regexp.MustCompile(`\{\{[^{}]*\}\}`)

var (
	nonSlugRegex    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	hyphenRunRegex  = regexp.MustCompile(`-{2,}`)
)

// Extract returns the distinct placeholder names found in content, in
// first-occurrence order
func Extract(content string) []string {
	matches := tokenRegex.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// Substitute replaces every recognized token whose key exists in values with
// the corresponding value. Tokens without a matching key remain literally in
// the output. Substituted values are not re-scanned, so a value containing
// token syntax is passed through untouched.
func Substitute(content string, values map[string]string) string {
	return tokenRegex.ReplaceAllStringFunc(content, func(token string) string {
		key := token[2 : len(token)-2]
		if value, ok := values[key]; ok {
			return value
		}
		return token
	})
}

// Validate reports whether every double-brace-delimited sequence in content
// conforms to the accepted key pattern
func Validate(content string) bool {
	for _, match := range braceRegex.FindAllString(content, -1) {
		if !tokenRegex.MatchString(match) {
			return false
		}
	}
	return true
}

// Slugify derives a URL-safe identifier from a display name: lowercase,
// characters outside word/whitespace/hyphen stripped, whitespace runs and
// repeated hyphens collapsed to a single hyphen, edge hyphens trimmed.
// Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugRegex.ReplaceAllString(slug, "")
	slug = whitespaceRegex.ReplaceAllString(slug, "-")
	slug = hyphenRunRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
