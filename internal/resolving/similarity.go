// Package resolving matches normalized candidate records against the
// canonical prospect set.
package resolving

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameSuffixes are generational suffixes ignored during name comparison,
// e.g. "Patrick Mahomes II" matches "Patrick Mahomes".
var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
}

// collegeStopWords are tokens dropped from college names so abbreviation
// variants compare equal, e.g. "Texas A&M" vs "Texas A&M University".
var collegeStopWords = map[string]bool{
	"university": true, "univ": true, "college": true, "the": true, "of": true,
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// foldText lowercases, strips diacritics, and reduces punctuation to spaces.
func foldText(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '&':
			b.WriteString(" and ")
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// CanonicalName returns the comparison form of a player name.
func CanonicalName(s string) string {
	var kept []string
	for _, token := range strings.Fields(foldText(s)) {
		if nameSuffixes[token] {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// CanonicalCollege returns the comparison form of a college name.
func CanonicalCollege(s string) string {
	var kept []string
	for _, token := range strings.Fields(foldText(s)) {
		if collegeStopWords[token] {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Similarity scores two already-canonicalized strings on [0, 100].
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	dist := levenshtein(a, b)
	return 100 * (1 - float64(dist)/float64(maxLen))
}
