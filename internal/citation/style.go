// Package citation parses raw citation mentions out of annotated paper
// bodies and resolves them against the paper's own reference list.
package citation

import "regexp"

// Style is the textual citation convention a paper uses.
type Style string

const (
	// StyleNumeric covers bracket citations: [1], [1, 2], [3-6], [1, 2-6].
	StyleNumeric Style = "numeric"

	// StyleAuthorYear covers parenthetical citations: (Smith, 2020).
	StyleAuthorYear Style = "author-year"
)

var (
	// numericStylePattern matches bracket groups with numbers, ranges, and
	// comma-separated combinations.
	numericStylePattern = regexp.MustCompile(`\[\d+(-\d+)?(,\s*\d+(-\d+)?)*\]`)

	// authorYearStylePattern matches a simple author-year parenthetical.
	authorYearStylePattern = regexp.MustCompile(`\([A-Za-z]+,\s*\d{4}\)`)
)

// DetectStyle classifies the citation style of a paper from one sample
// citation string (callers pass the paper's first mention). The numeric
// pattern is tried first; anything that matches neither pattern defaults to
// author-year so that ambiguous papers still get processed.
func DetectStyle(text string) Style {
	if numericStylePattern.MatchString(text) {
		return StyleNumeric
	}
	if authorYearStylePattern.MatchString(text) {
		return StyleAuthorYear
	}
	return StyleAuthorYear
}
