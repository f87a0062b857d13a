package models

import (
	"sort"
	"strconv"
)

const DefaultPriceCeiling = 2500

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (p PriceRange) Contains(price int) bool {
	return price >= p.Min && price <= p.Max
}

// Criteria is the visitor's selection. Every setter returns a new value and
// leaves the receiver untouched. Sets are kept in canonical order so that
// toggling the same value twice yields an identical value.
type Criteria struct {
	SelectedDays []string       `json:"selected_days"`
	ActiveDay    string         `json:"active_day"`
	Artist       string         `json:"artist"`
	PriceRange   PriceRange     `json:"price_range"`
	TimeOfDay    []TimeCategory `json:"time_of_day"`
	Venues       []string       `json:"venues"`
	SortBy       SortKey        `json:"sort_by"`
}

func DefaultCriteria(priceCeiling int) Criteria {
	return Criteria{
		SelectedDays: []string{},
		PriceRange:   PriceRange{Min: 0, Max: priceCeiling},
		TimeOfDay:    []TimeCategory{},
		Venues:       []string{},
		SortBy:       SortByTime,
	}
}

func (c Criteria) HasDay(day string) bool {
	return containsString(c.SelectedDays, day)
}

func (c Criteria) ToggleDay(day string) Criteria {
	days := toggleString(c.SelectedDays, day)
	SortDays(days)
	return c.withDays(days)
}

func (c Criteria) SetSelectedDays(days []string) Criteria {
	unique := []string{}
	for _, day := range days {
		if day != "" && !containsString(unique, day) {
			unique = append(unique, day)
		}
	}
	SortDays(unique)
	return c.withDays(unique)
}

// withDays swaps the day set; the active day never survives a day change.
func (c Criteria) withDays(days []string) Criteria {
	next := c.clone()
	next.SelectedDays = days
	next.ActiveDay = ""
	return next
}

// SetActiveDay narrows to one selected day. An empty day, or one that is not
// selected, shows all selected days again.
func (c Criteria) SetActiveDay(day string) Criteria {
	next := c.clone()
	next.ActiveDay = ""
	if c.HasDay(day) {
		next.ActiveDay = day
	}
	return next
}

func (c Criteria) SetArtist(artist string) Criteria {
	next := c.clone()
	next.Artist = artist
	return next
}

func (c Criteria) SetPriceRange(min, max int) Criteria {
	if min > max {
		min, max = max, min
	}
	next := c.clone()
	next.PriceRange = PriceRange{Min: min, Max: max}
	return next
}

func (c Criteria) ToggleTimeOfDay(category TimeCategory) Criteria {
	next := c.clone()
	toggled := []TimeCategory{}
	found := false
	for _, current := range c.TimeOfDay {
		if current == category {
			found = true
			continue
		}
		toggled = append(toggled, current)
	}
	if !found {
		toggled = append(toggled, category)
	}
	sort.SliceStable(toggled, func(i, j int) bool {
		return toggled[i].Rank() < toggled[j].Rank()
	})
	next.TimeOfDay = toggled
	return next
}

func (c Criteria) ToggleVenue(venue string) Criteria {
	next := c.clone()
	next.Venues = toggleString(c.Venues, venue)
	sort.Strings(next.Venues)
	return next
}

func (c Criteria) SetSortBy(key SortKey) Criteria {
	next := c.clone()
	next.SortBy = key
	return next
}

// ClearFilters keeps the selected days and drops everything else.
func (c Criteria) ClearFilters(priceCeiling int) Criteria {
	next := DefaultCriteria(priceCeiling)
	next.SelectedDays = append(next.SelectedDays, c.SelectedDays...)
	return next
}

func (c Criteria) Reset(priceCeiling int) Criteria {
	return DefaultCriteria(priceCeiling)
}

// ActiveFilters counts the narrowing filters, the way the filter badge does.
func (c Criteria) ActiveFilters(priceCeiling int) int {
	count := len(c.TimeOfDay) + len(c.Venues)
	if c.Artist != "" {
		count++
	}
	if c.PriceRange.Min > 0 || c.PriceRange.Max < priceCeiling {
		count++
	}
	return count
}

func (c Criteria) clone() Criteria {
	next := c
	next.SelectedDays = append([]string{}, c.SelectedDays...)
	next.TimeOfDay = append([]TimeCategory{}, c.TimeOfDay...)
	next.Venues = append([]string{}, c.Venues...)
	return next
}

// SortDays orders day codes numerically ("9" before "19").
func SortDays(days []string) {
	sort.SliceStable(days, func(i, j int) bool {
		a, errA := strconv.Atoi(days[i])
		b, errB := strconv.Atoi(days[j])
		if errA != nil || errB != nil {
			return days[i] < days[j]
		}
		return a < b
	})
}

func containsString(values []string, x string) bool {
	for _, v := range values {
		if v == x {
			return true
		}
	}
	return false
}

func toggleString(values []string, x string) []string {
	toggled := []string{}
	found := false
	for _, v := range values {
		if v == x {
			found = true
			continue
		}
		toggled = append(toggled, v)
	}
	if !found {
		toggled = append(toggled, x)
	}
	return toggled
}
