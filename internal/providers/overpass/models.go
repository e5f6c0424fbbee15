package overpass

// QueryAPIResponse is the Overpass interpreter JSON envelope.
type QueryAPIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

// Element is a single OSM feature. Nodes carry coordinates directly; ways
// and relations carry a computed center when the query asks for "out center".
// Coordinates are pointers so a missing field can be told apart from 0,0.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Center is the centroid of a way or relation.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
