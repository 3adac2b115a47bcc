package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
)

var (
	// bracketGroupPattern captures the content of each bracket group.
	bracketGroupPattern = regexp.MustCompile(`\[([^]]+)]`)

	// bracketNumberPattern captures a single citation number inside
	// brackets, tolerating stray parentheses ("[(3)]").
	bracketNumberPattern = regexp.MustCompile(`\[\(?(\d+)\)?]`)
)

// ExpandNumeric expands a numeric citation string into individual bracket
// citations: "[3-5]" yields ["[3]", "[4]", "[5]"], "[1, 4-6]" yields
// ["[1]", "[4]", "[5]", "[6]"]. Malformed subparts are skipped.
func ExpandNumeric(citation string) []string {
	var nums []int
	for _, group := range bracketGroupPattern.FindAllStringSubmatch(citation, -1) {
		content := strings.ReplaceAll(group[1], " ", "")
		for _, part := range strings.Split(content, ",") {
			expanded, err := parseNumberOrRange(part)
			if err != nil {
				continue
			}
			nums = append(nums, expanded...)
		}
	}

	result := make([]string, 0, len(nums))
	for _, n := range nums {
		result = append(result, fmt.Sprintf("[%d]", n))
	}
	return result
}

// parseNumberOrRange parses "7" or "3-6" into the integers it denotes.
func parseNumberOrRange(part string) ([]int, error) {
	if start, end, ok := strings.Cut(part, "-"); ok {
		lo, err := strconv.Atoi(start)
		if err != nil {
			return nil, err
		}
		hi, err := strconv.Atoi(end)
		if err != nil {
			return nil, err
		}
		var nums []int
		for n := lo; n <= hi; n++ {
			nums = append(nums, n)
		}
		return nums, nil
	}

	n, err := strconv.Atoi(part)
	if err != nil {
		return nil, err
	}
	return []int{n}, nil
}

// ExpandMentions rewrites each numeric mention into one synthetic mention
// per cited number, carrying the parent's category and explanation. Mentions
// whose citation text yields no numbers vanish from the output.
func ExpandMentions(mentions []paper.CitationMention) []paper.CitationMention {
	var expanded []paper.CitationMention
	for _, m := range mentions {
		for _, c := range ExpandNumeric(m.Citation) {
			expanded = append(expanded, paper.CitationMention{
				Citation:    c,
				Category:    m.Category,
				Explanation: m.Explanation,
			})
		}
	}
	return expanded
}

// ResolveNumeric maps a bracket citation to its local reference id. Bracket
// number n addresses the zero-indexed reference list, so "[1]" resolves to
// "b0". Citations without a parseable number are unresolved.
func ResolveNumeric(citation string) Resolution {
	m := bracketNumberPattern.FindStringSubmatch(citation)
	if m == nil {
		return Resolution{Reason: ReasonParseError}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return Resolution{Reason: ReasonParseError}
	}
	return Resolution{RefID: fmt.Sprintf("b%d", n-1)}
}
