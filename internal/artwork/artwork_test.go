package artwork

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListLine(t *testing.T) {
	a := Artwork{ID: 101, Title: "Water Lilies", Artist: "Claude Monet"}
	assert.Equal(t, `Artwork #101: "Water Lilies" by Claude Monet`, a.ListLine())
}

func TestDetailsIncludesAllFields(t *testing.T) {
	a := Artwork{
		ID:             101,
		Title:          "Water Lilies",
		Artist:         "Claude Monet",
		Nationality:    "French",
		BirthYear:      "1840",
		DeathYear:      "1926",
		Classification: "Paintings",
		Date:           "1916",
		ImageURL:       "https://images.example.org/lilies.jpg",
	}

	details := a.Details()
	for _, want := range []string{"101", "Water Lilies", "Claude Monet", "French", "1840", "1926", "Paintings", "1916", "https://images.example.org/lilies.jpg"} {
		assert.True(t, strings.Contains(details, want), "details missing %q", want)
	}
}

func TestDetailsWithoutImage(t *testing.T) {
	a := Artwork{ID: 5, Title: NotSpecified}
	assert.Contains(t, a.Details(), "no image available")
	assert.False(t, a.HasImage())
}
