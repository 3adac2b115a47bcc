package citation

import (
	"reflect"
	"testing"

	"github.com/arxgraph/arxgraph/internal/paper"
)

func TestExpandNumeric(t *testing.T) {
	tests := []struct {
		name     string
		citation string
		want     []string
	}{
		{
			name:     "single number",
			citation: "[7]",
			want:     []string{"[7]"},
		},
		{
			name:     "range expands inclusively",
			citation: "[3-5]",
			want:     []string{"[3]", "[4]", "[5]"},
		},
		{
			name:     "comma list",
			citation: "[1, 4]",
			want:     []string{"[1]", "[4]"},
		},
		{
			name:     "mixed list and range",
			citation: "[1, 3-5, 9]",
			want:     []string{"[1]", "[3]", "[4]", "[5]", "[9]"},
		},
		{
			name:     "multiple bracket groups",
			citation: "[2] and [5-6]",
			want:     []string{"[2]", "[5]", "[6]"},
		},
		{
			name:     "malformed subpart skipped",
			citation: "[1, x, 3]",
			want:     []string{"[1]", "[3]"},
		},
		{
			name:     "no brackets",
			citation: "(Smith, 2020)",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandNumeric(tt.citation)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandNumeric(%q) = %v, want %v", tt.citation, got, tt.want)
			}
		})
	}
}

func TestResolveNumeric(t *testing.T) {
	tests := []struct {
		name       string
		citation   string
		wantRefID  string
		wantReason UnresolvedReason
	}{
		{
			name:      "bracket one maps to b0",
			citation:  "[1]",
			wantRefID: "b0",
		},
		{
			name:      "bracket twelve maps to b11",
			citation:  "[12]",
			wantRefID: "b11",
		},
		{
			name:      "parenthesized number tolerated",
			citation:  "[(3)]",
			wantRefID: "b2",
		},
		{
			name:       "non-numeric content is a parse error",
			citation:   "[ref]",
			wantReason: ReasonParseError,
		},
		{
			name:       "zero is out of range",
			citation:   "[0]",
			wantReason: ReasonParseError,
		},
		{
			name:       "empty string is a parse error",
			citation:   "",
			wantReason: ReasonParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNumeric(tt.citation)
			if got.RefID != tt.wantRefID {
				t.Errorf("ResolveNumeric(%q).RefID = %q, want %q", tt.citation, got.RefID, tt.wantRefID)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("ResolveNumeric(%q).Reason = %q, want %q", tt.citation, got.Reason, tt.wantReason)
			}
		})
	}
}

func TestResolveNumericSequence(t *testing.T) {
	// Every bracket number n >= 1 must land on the zero-indexed entry b{n-1}.
	for n := 1; n <= 50; n++ {
		citation := ExpandNumeric("[1-50]")[n-1]
		res := ResolveNumeric(citation)
		if !res.Resolved() {
			t.Fatalf("ResolveNumeric(%q) unresolved: %s", citation, res.Reason)
		}
		want := "b" + itoa(n-1)
		if res.RefID != want {
			t.Errorf("ResolveNumeric(%q) = %q, want %q", citation, res.RefID, want)
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestExpandMentions(t *testing.T) {
	mentions := []paper.CitationMention{
		{Citation: "[3-4]", Category: "Supporting Evidence", Explanation: "backs the claim"},
		{Citation: "no brackets here", Category: "Data Source", Explanation: "dropped"},
	}

	got := ExpandMentions(mentions)
	want := []paper.CitationMention{
		{Citation: "[3]", Category: "Supporting Evidence", Explanation: "backs the claim"},
		{Citation: "[4]", Category: "Supporting Evidence", Explanation: "backs the claim"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandMentions() = %v, want %v", got, want)
	}
}
