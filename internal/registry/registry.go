// Package registry holds the fixed set of cities the service can look up and
// the upstream parameters needed to query each of them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidEntry is returned by Validate when an entry is missing data
var ErrInvalidEntry = errors.New("invalid registry entry")

// Entry holds the zippopotam.us request parameters for one city
type Entry struct {
	CountryCode string // lowercase ISO 3166-1 alpha-2, as the upstream expects
	PostalCode  string // passed through verbatim, never parsed
}

// cities is keyed by normalized city name. It must not be mutated after init.
var cities = map[string]Entry{
	"berlin":    {CountryCode: "de", PostalCode: "10115"},
	"london":    {CountryCode: "gb", PostalCode: "SW1A"},
	"paris":     {CountryCode: "fr", PostalCode: "75001"},
	"madrid":    {CountryCode: "es", PostalCode: "28001"},
	"rome":      {CountryCode: "it", PostalCode: "00118"},
	"cairo":     {CountryCode: "eg", PostalCode: "11511"},
	"new-delhi": {CountryCode: "in", PostalCode: "110001"},
}

// Normalize trims surrounding whitespace and lower-cases a city name
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the entry for a city name. Matching is exact after
// normalization; there is no fuzzy resolution.
func Lookup(name string) (Entry, bool) {
	entry, ok := cities[Normalize(name)]
	return entry, ok
}

// Names returns the supported city keys in sorted order
func Names() []string {
	return sortedKeys(cities)
}

// Validate checks that every entry carries a country and postal code.
// It is run once at startup.
func Validate() error {
	return validate(cities)
}

func validate(table map[string]Entry) error {
	var errs []error
	for _, name := range sortedKeys(table) {
		entry := table[name]
		if name != Normalize(name) {
			errs = append(errs, fmt.Errorf("%w: key %q is not normalized", ErrInvalidEntry, name))
		}
		if entry.CountryCode == "" {
			errs = append(errs, fmt.Errorf("%w: %s has no country code", ErrInvalidEntry, name))
		} else if entry.CountryCode != strings.ToLower(entry.CountryCode) || len(entry.CountryCode) != 2 {
			errs = append(errs, fmt.Errorf("%w: %s has malformed country code %q", ErrInvalidEntry, name, entry.CountryCode))
		}
		if entry.PostalCode == "" {
			errs = append(errs, fmt.Errorf("%w: %s has no postal code", ErrInvalidEntry, name))
		}
	}
	return errors.Join(errs...)
}

func sortedKeys(table map[string]Entry) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
