package session_test

import (
	"sync"
	"testing"

	"bitbucket.org/surfagenda/backend/catalog"
	"bitbucket.org/surfagenda/backend/models"
	"bitbucket.org/surfagenda/backend/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	c, err := catalog.Open("", "")
	require.NoError(t, err)
	return session.New(c)
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := newSession(t)

	view := s.View()
	assert.Equal(t, models.DefaultCriteria(models.DefaultPriceCeiling), view.Criteria)
	assert.Empty(t, view.Days)
	assert.Equal(t, models.EmptyStateNoDaysSelected, view.Result.EmptyState)
}

func TestSessionNarrowsAndClears(t *testing.T) {
	s := newSession(t)

	s.ToggleDay("20")
	s.ToggleDay("19")
	s.SetActiveDay("20")
	s.ToggleTimeOfDay(models.Evening)
	s.SetSortBy(models.SortByPrice)

	view := s.View()
	assert.Equal(t, []string{"19", "20"}, view.Days)
	assert.Equal(t, []string{"Thiago Martins", "Luau com Bela", "orochi"}, titles(view.Result.Events))
	assert.Equal(t, 1, view.Result.ActiveFilters)

	s.SetArtist("Ninguém")
	assert.Equal(t, models.EmptyStateOverFiltered, s.View().Result.EmptyState)

	criteria := s.ClearFilters()
	assert.Equal(t, []string{"19", "20"}, criteria.SelectedDays)
	assert.Empty(t, criteria.ActiveDay)
	assert.Len(t, s.View().Result.Events, 8)

	assert.Equal(t, models.DefaultCriteria(models.DefaultPriceCeiling), s.Reset())
}

func TestSessionPriceAndVenue(t *testing.T) {
	s := newSession(t)

	s.SetSelectedDays([]string{"22", "21"})
	s.SetPriceRange(300, 60)
	s.ToggleVenue("Itaúna Surf Music")

	view := s.View()
	assert.Equal(t, models.PriceRange{Min: 60, Max: 300}, view.Criteria.PriceRange)
	assert.Equal(t, []string{`"+5521"`, "Luccas Carlos"}, titles(view.Result.Events))
}

func TestSessionConcurrentUpdates(t *testing.T) {
	s := newSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleVenue("Brisa Casa")
			s.ToggleVenue("Brisa Casa")
			s.View()
		}()
	}
	wg.Wait()

	assert.Empty(t, s.Criteria().Venues)
}

func titles(events []models.EventView) []string {
	out := []string{}
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}
