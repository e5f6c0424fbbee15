package types

// Source identifies which dataset a facility record came from.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Facility is a single public-restroom result. Records are built per query
// and never persisted; the same physical restroom may appear once per source
// since results are not deduplicated across datasets.
type Facility struct {
	Source         Source  `json:"source"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Location       Point   `json:"location"`
	DistanceMeters float64 `json:"distance_meters"`
}
