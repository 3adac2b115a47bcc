package citation

import (
	"regexp"
	"strings"
)

var (
	// middleInitialPattern matches a lone lowercased initial ("j.") so
	// "smith, j. a." normalizes to "smith,". Applied after lowercasing.
	middleInitialPattern = regexp.MustCompile(`\s+[a-z]\.`)

	// yearPattern finds a 4-digit year embedded in free text ("2019",
	// "May 2019", "2019a").
	yearPattern = regexp.MustCompile(`(\b|\D)(\d{4})(\b|\D)`)
)

// NormalizeAuthor lowercases a name and strips middle initials. The
// operation is idempotent: normalizing an already-normalized name returns
// the same string.
func NormalizeAuthor(name string) string {
	name = strings.ToLower(name)
	return middleInitialPattern.ReplaceAllString(name, "")
}

// FirstAuthor extracts and normalizes the leading author from a citation's
// author text. "et al." and " and " separators are handled before the plain
// comma split.
func FirstAuthor(authors string) string {
	var first string
	switch {
	case strings.Contains(authors, "et al."):
		first = strings.TrimSpace(strings.SplitN(authors, "et al.", 2)[0])
	case strings.Contains(authors, " and "):
		idx := strings.LastIndex(authors, " and ")
		first = strings.TrimSpace(strings.Split(authors[:idx], ",")[0])
	default:
		first = strings.TrimSpace(strings.Split(authors, ",")[0])
	}
	return NormalizeAuthor(first)
}

// ReferenceFirstAuthor extracts the first author from a reference entry's
// ";"-separated author field, normalized for comparison.
func ReferenceFirstAuthor(authors string) string {
	first := strings.TrimSpace(strings.Split(authors, ";")[0])
	return NormalizeAuthor(first)
}

// ExtractYear pulls the first 4-digit year out of a free-text year field.
// Returns "" when no year is present.
func ExtractYear(s string) string {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[2]
}
