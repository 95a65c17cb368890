package geo

// Candidate is a single record returned by the geocoding service for one
// lookup attempt. Population and FeatureCode are optional upstream and may
// be zero-valued.
type Candidate struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Population  int64   `json:"population,omitempty"`
	FeatureCode string  `json:"featureCode,omitempty"`
}

// GeoNames feature codes the disambiguation rules care about.
const (
	FeatureNationalCapital = "PPLC"
	FeatureAdminCapital    = "PPLA"
)

// capitalRank orders feature codes for disambiguation: national capital
// above admin seat above everything else.
func capitalRank(featureCode string) int {
	switch featureCode {
	case FeatureNationalCapital:
		return 2
	case FeatureAdminCapital:
		return 1
	default:
		return 0
	}
}

// isCapitalFeature reports whether a feature code marks a capital-level place.
func isCapitalFeature(featureCode string) bool {
	return capitalRank(featureCode) > 0
}

// Resolved is the single accepted location for a search. It is always one of
// the candidates returned during the attempt, never synthesized.
type Resolved struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this location in stores.
func (r Resolved) Key() string {
	return r.Name + ":" + r.Country
}

func resolvedFrom(c Candidate) Resolved {
	return Resolved{
		Name:      c.Name,
		Country:   c.Country,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// CandidateQuery is one attempt at the geocoding service: a query string plus
// an optional language hint. Earlier entries in a planned sequence are tried
// first, so ordering encodes priority.
type CandidateQuery struct {
	Query string
	Lang  string
}
