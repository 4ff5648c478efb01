package zippopotam

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CityAPIResponse is the body of GET /{country}/{postal code}
type CityAPIResponse struct {
	PostCode            string             `json:"post code"`
	Country             string             `json:"country"`
	CountryAbbreviation string             `json:"country abbreviation"`
	Places              []PlaceAPIResponse `json:"places"`
}

type PlaceAPIResponse struct {
	PlaceName         string `json:"place name"`
	Longitude         Text   `json:"longitude"`
	Latitude          Text   `json:"latitude"`
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
}

// Text holds a JSON string or number as its literal text, so coordinates
// keep the precision the upstream sent.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*t = Text(n.String())
	return nil
}
