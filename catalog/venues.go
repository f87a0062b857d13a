package catalog

import "strings"

const VenueOther = "Other"

type venuePattern struct {
	Pattern string
	Venue   string
}

// venueTable is matched in order against the listing handle; the first
// pattern contained in the handle wins.
var venueTable = []venuePattern{
	{Pattern: "festivalsunset", Venue: "Festival Sunset"},
	{Pattern: "casa.amare", Venue: "Casa Amare"},
	{Pattern: "riosurfmusic", Venue: "Rio Surf Music"},
	{Pattern: "brisa.casa", Venue: "Brisa Casa"},
	{Pattern: "coronasurfskate", Venue: "Corona Surf Skate"},
	{Pattern: "itaunasurfmusic", Venue: "Itaúna Surf Music"},
	{Pattern: "viva.sessions", Venue: "Viva Sessions"},
	{Pattern: "riomaisfestival", Venue: "Rio Mais Festival"},
	{Pattern: "ondamaximaprod", Venue: "Onda Máxima"},
	{Pattern: "saquaremasurfsounds", Venue: "Saquarema Surf Sounds"},
}

func ResolveVenue(sourceID string) string {
	for _, p := range venueTable {
		if strings.Contains(sourceID, p.Pattern) {
			return p.Venue
		}
	}
	return VenueOther
}
