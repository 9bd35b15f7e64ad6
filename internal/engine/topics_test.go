package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap_CaseInsensitive(t *testing.T) {
	got := Overlap([]string{"Grants", "HEALTH"}, []string{"grants", "education"})
	assert.Equal(t, []string{"Grants"}, got)
}

func TestOverlap_TrimsWhitespace(t *testing.T) {
	got := Overlap([]string{" Housing "}, []string{"housing"})
	// Original casing and spacing survive; only matching normalizes.
	assert.Equal(t, []string{" Housing "}, got)
}

func TestOverlap_SortedByNormalizedValue(t *testing.T) {
	got := Overlap([]string{"zebra", "Apple"}, []string{"ZEBRA", "apple"})
	assert.Equal(t, []string{"Apple", "zebra"}, got)
}

func TestOverlap_NoMatch(t *testing.T) {
	got := Overlap([]string{"housing"}, []string{"arts"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOverlap_EmptyInputs(t *testing.T) {
	assert.Empty(t, Overlap(nil, []string{"housing"}))
	assert.Empty(t, Overlap([]string{"housing"}, nil))
}

func TestOverlap_Deterministic(t *testing.T) {
	topics := []string{"Water", "health", "EDUCATION", "housing"}
	tags := []string{"housing", "education", "water"}

	first := Overlap(topics, tags)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Overlap(topics, tags))
	}
	assert.Equal(t, []string{"EDUCATION", "housing", "Water"}, first)
}
