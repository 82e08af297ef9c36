package resolving

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "patrick mahomes", CanonicalName("Patrick Mahomes II"))
	assert.Equal(t, "patrick mahomes", CanonicalName("Patrick Mahomes"))
	assert.Equal(t, "odell beckham", CanonicalName("Odell Beckham Jr."))
	assert.Equal(t, "tremaine edmunds", CanonicalName("Tremaine Edmunds"))
}

func TestCanonicalName_Diacritics(t *testing.T) {
	assert.Equal(t, CanonicalName("Efe Obada"), CanonicalName("Éfé Obadà"))
}

func TestCanonicalCollege(t *testing.T) {
	assert.Equal(t, CanonicalCollege("Texas A&M"), CanonicalCollege("Texas A&M University"))
	assert.Equal(t, CanonicalCollege("Texas Tech"), CanonicalCollege("Texas Tech University"))
	assert.NotEqual(t, CanonicalCollege("Ohio State"), CanonicalCollege("Ohio"))
	assert.Equal(t, CanonicalCollege("Miami"), CanonicalCollege("The University of Miami"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("patrick mahomes", "patrick mahomes"))
	assert.Equal(t, 0.0, Similarity("", ""))

	close := Similarity("patrick mahomes", "patrik mahomes")
	assert.Greater(t, close, 90.0)

	far := Similarity("patrick mahomes", "saquon barkley")
	assert.Less(t, far, 50.0)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("abc", "abc"))
	assert.Equal(t, 3, levenshtein("", "abc"))
	assert.Equal(t, 3, levenshtein("abc", ""))
	assert.Equal(t, 1, levenshtein("kitten", "mitten"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
