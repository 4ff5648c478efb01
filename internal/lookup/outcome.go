package lookup

import (
	"fmt"

	"city-lookup/internal/types"
)

// Status tags which shape an Outcome has
type Status string

const (
	StatusSuccess          Status = "success"
	StatusUnknownCity      Status = "unknown_city"
	StatusTransportFailure Status = "transport_failure"
)

// Outcome is the result of one lookup. Exactly one of the three shapes is
// populated: City for success, Name for the two error shapes.
type Outcome struct {
	Status Status
	City   *types.City
	Name   string
	Err    error // cause of a transport failure, never shown to users
}

func Success(city types.City) Outcome {
	return Outcome{Status: StatusSuccess, City: &city}
}

func UnknownCity(name string) Outcome {
	return Outcome{Status: StatusUnknownCity, Name: name}
}

func TransportFailure(name string, err error) Outcome {
	return Outcome{Status: StatusTransportFailure, Name: name, Err: err}
}

// OK reports whether the lookup produced a city
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// Message is the text for the error dialog. It is empty on success.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusUnknownCity:
		return fmt.Sprintf("No data available for %s", o.Name)
	case StatusTransportFailure:
		return fmt.Sprintf("Error fetching data for %s", o.Name)
	default:
		return ""
	}
}
