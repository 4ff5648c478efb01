package lookup

import (
	"city-lookup/internal/providers/zippopotam"
	"city-lookup/internal/types"
)

// mapCityResponse renames the upstream fields into the display shape.
// Values pass through untouched and places keep upstream order.
func mapCityResponse(resp *zippopotam.CityAPIResponse) types.City {
	return types.City{
		CountryAbb: resp.CountryAbbreviation,
		PostCode:   resp.PostCode,
		Country:    resp.Country,
		Places:     mapPlaces(resp.Places),
	}
}

func mapPlaces(places []zippopotam.PlaceAPIResponse) []types.Place {
	result := make([]types.Place, 0, len(places))
	for _, p := range places {
		result = append(result, types.Place{
			PlaceName: p.PlaceName,
			Longitude: string(p.Longitude),
			Latitude:  string(p.Latitude),
			State:     p.State,
			StateAbb:  p.StateAbbreviation,
		})
	}
	return result
}
