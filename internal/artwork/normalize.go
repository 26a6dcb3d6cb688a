package artwork

import (
	"fmt"
	"strings"

	"metroart/internal/metapi"
)

// artistCleaner strips the punctuation the feed wraps around artist names.
var artistCleaner = strings.NewReplacer("(", "", ")", "", ",", "")

// Normalize converts a raw object record into a canonical Artwork.
//
// Every optional textual field that arrives blank or missing is replaced with
// the NotSpecified sentinel so nothing downstream has to handle empty
// strings. Only the object id is required: a record without one is a contract
// violation by the data source and is rejected, which callers treat exactly
// like a not-found skip.
func Normalize(raw *metapi.ObjectRecord) (Artwork, error) {
	if raw == nil {
		return Artwork{}, fmt.Errorf("nil object record")
	}
	if raw.ObjectID <= 0 {
		return Artwork{}, fmt.Errorf("object record missing objectID")
	}

	return Artwork{
		ID:             raw.ObjectID,
		Title:          orNotSpecified(raw.Title),
		Artist:         orNotSpecified(cleanArtistName(raw.ArtistDisplayName)),
		Nationality:    orNotSpecified(raw.ArtistNationality),
		BirthYear:      orNotSpecified(raw.ArtistBeginDate),
		DeathYear:      orNotSpecified(raw.ArtistEndDate),
		Classification: orNotSpecified(raw.Classification),
		Date:           orNotSpecified(raw.ObjectDate),
		ImageURL:       unwrapImage(raw.PrimaryImage),
	}, nil
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotSpecified
	}
	return value
}

func cleanArtistName(name string) string {
	return strings.TrimSpace(artistCleaner.Replace(name))
}

// unwrapImage tolerates the feed's inconsistent primaryImage shape: usually a
// plain URL string, occasionally a single-element array wrapping one. Anything
// else collapses to the empty string (no image).
func unwrapImage(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		if len(v) == 1 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}
