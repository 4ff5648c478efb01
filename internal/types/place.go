package types

// Place is one sub-locality returned for a postal code.
// Coordinates are kept as the exact text the upstream sent.
type Place struct {
	PlaceName string `json:"placeName" example:"Mitte" doc:"Place name"`
	Longitude string `json:"longitude" example:"13.3833" doc:"Longitude in decimal degrees, verbatim"`
	Latitude  string `json:"latitude" example:"52.5167" doc:"Latitude in decimal degrees, verbatim"`
	State     string `json:"state" example:"Berlin" doc:"State or province name"`
	StateAbb  string `json:"stateAbb" example:"BE" doc:"State or province abbreviation"`
}
