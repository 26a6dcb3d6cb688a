// Package artwork defines the canonical catalog record and its normalization
// from the raw Met collection API shape.
package artwork

import "fmt"

// NotSpecified is the placeholder substituted for every blank or missing
// textual field at normalization time. Downstream code can rely on fields
// never being empty.
const NotSpecified = "not specified"

// Artwork is a single normalized record from the museum collection.
// Immutable once constructed; the object ID is the primary key.
type Artwork struct {
	ID             int    `json:"objectID"`
	Title          string `json:"title"`
	Artist         string `json:"artistDisplayName"`
	Nationality    string `json:"artistNationality"`
	BirthYear      string `json:"artistBeginDate"`
	DeathYear      string `json:"artistEndDate"`
	Classification string `json:"classification"`
	Date           string `json:"objectDate"`
	ImageURL       string `json:"primaryImage"`
}

// ListLine renders the one-line form used in search result listings.
func (a Artwork) ListLine() string {
	return fmt.Sprintf("Artwork #%d: %q by %s", a.ID, a.Title, a.Artist)
}

// Details renders the full detail view for a single record.
func (a Artwork) Details() string {
	image := a.ImageURL
	if image == "" {
		image = "no image available"
	}
	return fmt.Sprintf(`Artwork #%d
  Title:          %s
  Artist:         %s
  Nationality:    %s
  Born:           %s
  Died:           %s
  Classification: %s
  Date:           %s
  Image:          %s`,
		a.ID, a.Title, a.Artist, a.Nationality, a.BirthYear, a.DeathYear,
		a.Classification, a.Date, image)
}

// HasImage reports whether the record carries an image reference.
func (a Artwork) HasImage() bool {
	return a.ImageURL != ""
}
