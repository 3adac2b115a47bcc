package fetch

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// arXiv identifiers as printed on papers: "arXiv:2106.15928" or
// "arXiv:2106.15928v2".
var arxivIDPattern = regexp.MustCompile(`arXiv:(\d{4}\.\d{4,5})(v\d+)?`)

// ExtractText extracts text from the first maxPages pages of a PDF.
// A maxPages of zero or less means the whole document. Pages that fail to
// decode are skipped.
func ExtractText(filePath string, maxPages int) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var builder strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// ExtractArxivID scans the first pages of a PDF for the arXiv identifier
// stamped on the margin. Returns an empty string when none is found.
func ExtractArxivID(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// The identifier appears on the first page; scan a couple more for
	// scanned or reformatted papers.
	maxPages := 3
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if m := arxivIDPattern.FindStringSubmatch(text); m != nil {
			return m[1], nil
		}
	}

	return "", nil
}
