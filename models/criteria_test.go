package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleDayTwiceRestoresCriteria(t *testing.T) {
	base := DefaultCriteria(DefaultPriceCeiling).SetSelectedDays([]string{"20", "19"})
	assert.Equal(t, []string{"19", "20"}, base.SelectedDays)

	toggled := base.ToggleDay("9")
	assert.Equal(t, []string{"9", "19", "20"}, toggled.SelectedDays)
	assert.Equal(t, base, toggled.ToggleDay("9"))

	assert.Equal(t, []string{"20"}, base.ToggleDay("19").SelectedDays)
	assert.Equal(t, []string{"19", "20"}, base.SelectedDays)
}

func TestDayChangeClearsActiveDay(t *testing.T) {
	c := DefaultCriteria(DefaultPriceCeiling).SetSelectedDays([]string{"19", "20"}).SetActiveDay("20")
	assert.Equal(t, "20", c.ActiveDay)

	assert.Empty(t, c.ToggleDay("21").ActiveDay)
	assert.Empty(t, c.ToggleDay("19").ActiveDay)
	assert.Empty(t, c.SetSelectedDays([]string{"20"}).ActiveDay)
	assert.Equal(t, "20", c.ActiveDay)
}

func TestSetActiveDayRequiresSelectedDay(t *testing.T) {
	c := DefaultCriteria(DefaultPriceCeiling).SetSelectedDays([]string{"19"})

	assert.Empty(t, c.SetActiveDay("20").ActiveDay)
	assert.Equal(t, "19", c.SetActiveDay("19").ActiveDay)
	assert.Empty(t, c.SetActiveDay("19").SetActiveDay("").ActiveDay)
}

func TestSetPriceRangeSwapsInvertedBounds(t *testing.T) {
	c := DefaultCriteria(DefaultPriceCeiling).SetPriceRange(500, 100)
	assert.Equal(t, PriceRange{Min: 100, Max: 500}, c.PriceRange)
	assert.True(t, c.PriceRange.Contains(100))
	assert.True(t, c.PriceRange.Contains(500))
	assert.False(t, c.PriceRange.Contains(501))
}

func TestToggleTimeOfDayKeepsDisplayOrder(t *testing.T) {
	base := DefaultCriteria(DefaultPriceCeiling)

	c := base.ToggleTimeOfDay(Evening).ToggleTimeOfDay(Morning)
	assert.Equal(t, []TimeCategory{Morning, Evening}, c.TimeOfDay)
	assert.Equal(t, []TimeCategory{Evening}, c.ToggleTimeOfDay(Morning).TimeOfDay)
	assert.Equal(t, base, base.ToggleTimeOfDay(LateNight).ToggleTimeOfDay(LateNight))
}

func TestToggleVenueDoesNotMutateReceiver(t *testing.T) {
	base := DefaultCriteria(DefaultPriceCeiling)

	c := base.ToggleVenue("Casa Amare").ToggleVenue("Brisa Casa")
	assert.Equal(t, []string{"Brisa Casa", "Casa Amare"}, c.Venues)
	assert.Empty(t, base.Venues)
	assert.Equal(t, base, base.ToggleVenue("Brisa Casa").ToggleVenue("Brisa Casa"))
}

func TestClearFiltersKeepsDays(t *testing.T) {
	c := DefaultCriteria(DefaultPriceCeiling).
		SetSelectedDays([]string{"19", "20"}).
		SetActiveDay("19").
		SetArtist("orochi").
		SetPriceRange(10, 20).
		ToggleTimeOfDay(Evening).
		ToggleVenue("Brisa Casa").
		SetSortBy(SortByPrice)

	cleared := c.ClearFilters(DefaultPriceCeiling)
	assert.Equal(t, []string{"19", "20"}, cleared.SelectedDays)
	assert.Empty(t, cleared.ActiveDay)
	assert.Empty(t, cleared.Artist)
	assert.Equal(t, PriceRange{Min: 0, Max: DefaultPriceCeiling}, cleared.PriceRange)
	assert.Empty(t, cleared.TimeOfDay)
	assert.Empty(t, cleared.Venues)
	assert.Equal(t, SortByTime, cleared.SortBy)

	assert.Equal(t, DefaultCriteria(DefaultPriceCeiling), c.Reset(DefaultPriceCeiling))
}

func TestActiveFilters(t *testing.T) {
	c := DefaultCriteria(DefaultPriceCeiling).SetSelectedDays([]string{"19"})
	assert.Equal(t, 0, c.ActiveFilters(DefaultPriceCeiling))

	c = c.SetArtist("orochi").
		SetPriceRange(0, 100).
		ToggleTimeOfDay(Evening).
		ToggleTimeOfDay(Morning).
		ToggleVenue("Brisa Casa").
		SetSortBy(SortByArtist)
	assert.Equal(t, 5, c.ActiveFilters(DefaultPriceCeiling))
}

func TestSortDays(t *testing.T) {
	days := []string{"19", "9", "10"}
	SortDays(days)
	assert.Equal(t, []string{"9", "10", "19"}, days)
}

func TestGetEventsOptsToCriteria(t *testing.T) {
	min, max := 500, 100
	opts := GetEventsOpts{
		Days:      []string{"20,19", "19"},
		ActiveDay: "19",
		Artist:    "orochi",
		PriceMin:  &min,
		PriceMax:  &max,
		Time:      []string{"evening, morning"},
		Venues:    []string{"Brisa Casa"},
	}

	c := opts.ToCriteria(DefaultPriceCeiling)
	assert.Equal(t, []string{"19", "20"}, c.SelectedDays)
	assert.Equal(t, "19", c.ActiveDay)
	assert.Equal(t, "orochi", c.Artist)
	assert.Equal(t, PriceRange{Min: 100, Max: 500}, c.PriceRange)
	assert.Equal(t, []TimeCategory{Morning, Evening}, c.TimeOfDay)
	assert.Equal(t, []string{"Brisa Casa"}, c.Venues)
	assert.Equal(t, SortByTime, c.SortBy)

	empty := (&GetEventsOpts{}).ToCriteria(DefaultPriceCeiling)
	assert.Equal(t, DefaultCriteria(DefaultPriceCeiling), empty)
}
