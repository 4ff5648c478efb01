package types

// City is the display-ready record for a postal code lookup
type City struct {
	CountryAbb string  `json:"countryAbb" example:"DE" doc:"Country abbreviation"`
	PostCode   string  `json:"postCode" example:"10115" doc:"Postal code"`
	Country    string  `json:"country" example:"Germany" doc:"Country name"`
	Places     []Place `json:"places" doc:"Places in upstream order"`
}
