package metapi

// Department is one museum department as returned by the departments endpoint.
type Department struct {
	ID   int    `json:"departmentId"`
	Name string `json:"displayName"`
}

type departmentsResponse struct {
	Departments []Department `json:"departments"`
}

// searchResponse is the shape shared by the department and free-text search
// endpoints: a total plus an ordered list of object ids. ObjectIDs is null
// when nothing matched.
type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// ObjectRecord is the raw, loosely-typed object response. Only the nine keys
// the catalog cares about are mapped; everything else in the feed is ignored.
//
// PrimaryImage is typed any because the upstream shape is inconsistent: it is
// usually a plain string but has been observed as a single-element array.
// The normalizer unwraps it.
type ObjectRecord struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ArtistNationality string `json:"artistNationality"`
	ArtistBeginDate   string `json:"artistBeginDate"`
	ArtistEndDate     string `json:"artistEndDate"`
	Classification    string `json:"classification"`
	ObjectDate        string `json:"objectDate"`
	PrimaryImage      any    `json:"primaryImage"`
}
