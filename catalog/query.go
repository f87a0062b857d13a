package catalog

import (
	"sort"

	"bitbucket.org/surfagenda/backend/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the locale of the listings, used to order artists.
var DefaultLanguage = language.BrazilianPortuguese

// Query runs the filter-sort pipeline. It does not modify records and keeps
// no state between calls, so equal arguments always give equal results.
func Query(records []models.Event, criteria models.Criteria, lang language.Tag) []models.Event {
	filtered := NarrowByDay(records, criteria)
	if len(filtered) == 0 {
		return filtered
	}

	timeOfDay := make(map[models.TimeCategory]struct{}, len(criteria.TimeOfDay))
	for _, category := range criteria.TimeOfDay {
		timeOfDay[category] = struct{}{}
	}
	venues := make(map[string]struct{}, len(criteria.Venues))
	for _, venue := range criteria.Venues {
		venues[venue] = struct{}{}
	}

	result := make([]models.Event, 0, len(filtered))
	for _, e := range filtered {
		if criteria.Artist != "" && e.Title != criteria.Artist {
			continue
		}
		if !criteria.PriceRange.Contains(e.MinPrice) {
			continue
		}
		if len(timeOfDay) > 0 {
			if _, ok := timeOfDay[e.TimeCategory]; !ok {
				continue
			}
		}
		if len(venues) > 0 {
			if _, ok := venues[e.Venue]; !ok {
				continue
			}
		}
		result = append(result, e)
	}

	sortEvents(result, criteria.SortBy, lang)
	return result
}

// NarrowByDay applies only the day gating: selected days, then the active day.
// No selected days means nothing to browse yet.
func NarrowByDay(records []models.Event, criteria models.Criteria) []models.Event {
	narrowed := []models.Event{}
	if len(criteria.SelectedDays) == 0 {
		return narrowed
	}

	days := make(map[string]struct{}, len(criteria.SelectedDays))
	for _, day := range criteria.SelectedDays {
		days[day] = struct{}{}
	}

	for _, e := range records {
		if _, ok := days[e.DateCode]; !ok {
			continue
		}
		if criteria.ActiveDay != "" && e.DateCode != criteria.ActiveDay {
			continue
		}
		narrowed = append(narrowed, e)
	}
	return narrowed
}

func sortEvents(events []models.Event, key models.SortKey, lang language.Tag) {
	switch key {
	case models.SortByTime:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].TimeValue < events[j].TimeValue
		})
	case models.SortByPrice:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].MinPrice < events[j].MinPrice
		})
	case models.SortByArtist:
		// a Collator is not safe for concurrent use, so each sort gets its own
		c := collate.New(lang)
		sort.SliceStable(events, func(i, j int) bool {
			return c.CompareString(events[i].Title, events[j].Title) < 0
		})
	}
}

// Facets lists the distinct artists, venues and time categories of the
// day-narrowed set, so other filters never shrink the options on offer.
func Facets(records []models.Event, criteria models.Criteria) models.Facets {
	narrowed := NarrowByDay(records, criteria)

	artists := map[string]struct{}{}
	venues := map[string]struct{}{}
	categories := map[models.TimeCategory]struct{}{}
	for _, e := range narrowed {
		artists[e.Title] = struct{}{}
		venues[e.Venue] = struct{}{}
		categories[e.TimeCategory] = struct{}{}
	}

	facets := models.Facets{
		Artists:        sortedKeys(artists),
		Venues:         sortedKeys(venues),
		TimeCategories: []models.TimeCategory{},
	}
	for category := range categories {
		facets.TimeCategories = append(facets.TimeCategories, category)
	}
	sort.Slice(facets.TimeCategories, func(i, j int) bool {
		return facets.TimeCategories[i].Rank() < facets.TimeCategories[j].Rank()
	})
	return facets
}

// PriceCeiling is the slider maximum: the highest minimum price, never below
// models.DefaultPriceCeiling.
func PriceCeiling(records []models.Event) int {
	ceiling := models.DefaultPriceCeiling
	for _, e := range records {
		if e.MinPrice > ceiling {
			ceiling = e.MinPrice
		}
	}
	return ceiling
}

// Classify tells apart the reasons a result can be empty.
func Classify(narrowed, result []models.Event, criteria models.Criteria) models.EmptyState {
	switch {
	case len(criteria.SelectedDays) == 0:
		return models.EmptyStateNoDaysSelected
	case len(result) > 0:
		return models.EmptyStateNone
	case len(narrowed) == 0:
		return models.EmptyStateNoEventsOnDays
	default:
		return models.EmptyStateOverFiltered
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
