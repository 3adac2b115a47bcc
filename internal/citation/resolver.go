package citation

import (
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
)

// UnresolvedReason explains why a citation mention could not be linked to a
// reference entry. Distinguishing parse failures from no-match lets callers
// report the two separately instead of collapsing both into a null id.
type UnresolvedReason string

const (
	// ReasonParseError means the citation text could not be parsed at all.
	ReasonParseError UnresolvedReason = "parse_error"

	// ReasonNoMatch means the citation parsed cleanly but matched no entry
	// in the paper's reference list.
	ReasonNoMatch UnresolvedReason = "no_match"
)

// Resolution is the outcome of resolving one citation mention. Exactly one
// of RefID and Reason is set.
type Resolution struct {
	RefID  string
	Reason UnresolvedReason
}

// Resolved reports whether the mention was linked to a reference entry.
func (r Resolution) Resolved() bool {
	return r.RefID != ""
}

// AuthorYearCitation is a parsed author-year mention: the normalized first
// author plus the trailing year token.
type AuthorYearCitation struct {
	Author string
	Year   string
}

// ParseAuthorYear parses a parenthetical citation like "(Smith et al. 2020)"
// or "(Culotta and Sorensen 2004; Bunescu and Mooney 2005)". Sub-citations
// are split on ";"; when a parenthetical carries several citations the final
// one determines the link. The last space-separated token of each
// sub-citation is taken as the year, the remainder as the author list.
func ParseAuthorYear(citation string) (AuthorYearCitation, bool) {
	citation = strings.Trim(citation, "()")

	subs := strings.Split(citation, ";")
	var parsed AuthorYearCitation
	var ok bool
	for _, sub := range subs {
		sub = strings.TrimSpace(sub)
		idx := strings.LastIndex(sub, " ")
		if idx < 0 {
			continue
		}
		parsed = AuthorYearCitation{
			Author: FirstAuthor(sub[:idx]),
			Year:   strings.TrimSpace(sub[idx+1:]),
		}
		ok = true
	}
	return parsed, ok
}

// MatchReference finds the reference entry whose first author contains the
// citation's first author as a substring. The last matching reference in
// list order wins; this tie-break is kept for compatibility with previously
// generated artifacts. The citation year is parsed but not enforced as a
// match constraint (reference year fields are too dirty to trust).
func MatchReference(cit AuthorYearCitation, refs []paper.RefEntry) (string, bool) {
	if cit.Author == "" {
		return "", false
	}
	var refID string
	var found bool
	for _, ref := range refs {
		refAuthor := ReferenceFirstAuthor(ref.Authors)
		if refAuthor == "" {
			continue
		}
		if strings.Contains(refAuthor, cit.Author) {
			refID = ref.RefID
			found = true
		}
	}
	return refID, found
}

// ResolveAuthorYear resolves one author-year mention against the paper's
// reference list.
func ResolveAuthorYear(m paper.CitationMention, refs []paper.RefEntry) Resolution {
	parsed, ok := ParseAuthorYear(m.Citation)
	if !ok {
		return Resolution{Reason: ReasonParseError}
	}
	refID, found := MatchReference(parsed, refs)
	if !found {
		return Resolution{Reason: ReasonNoMatch}
	}
	return Resolution{RefID: refID}
}
