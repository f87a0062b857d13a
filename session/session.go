package session

import (
	"sync"

	"bitbucket.org/surfagenda/backend/catalog"
	"bitbucket.org/surfagenda/backend/models"
)

// Session owns the visitor's selection. Every setter replaces the criteria
// with a new value derived from the current one.
type Session struct {
	mu       sync.Mutex
	storage  catalog.Storage
	criteria models.Criteria
}

func New(storage catalog.Storage) *Session {
	return &Session{
		storage:  storage,
		criteria: models.DefaultCriteria(storage.PriceCeiling()),
	}
}

func (s *Session) Criteria() models.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Session) apply(update func(models.Criteria) models.Criteria) models.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = update(s.criteria)
	return s.criteria
}

func (s *Session) ToggleDay(day string) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.ToggleDay(day) })
}

func (s *Session) SetSelectedDays(days []string) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.SetSelectedDays(days) })
}

func (s *Session) SetActiveDay(day string) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.SetActiveDay(day) })
}

func (s *Session) SetArtist(artist string) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.SetArtist(artist) })
}

func (s *Session) SetPriceRange(min, max int) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.SetPriceRange(min, max) })
}

func (s *Session) ToggleTimeOfDay(category models.TimeCategory) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.ToggleTimeOfDay(category) })
}

func (s *Session) ToggleVenue(venue string) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.ToggleVenue(venue) })
}

func (s *Session) SetSortBy(key models.SortKey) models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.SetSortBy(key) })
}

func (s *Session) ClearFilters() models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.ClearFilters(s.storage.PriceCeiling()) })
}

// Reset restores the defaults, recomputing the price ceiling from the catalog.
func (s *Session) Reset() models.Criteria {
	return s.apply(func(c models.Criteria) models.Criteria { return c.Reset(s.storage.PriceCeiling()) })
}

// View runs the pipeline over the current criteria.
func (s *Session) View() *models.SessionStruct {
	criteria := s.Criteria()
	days := append([]string{}, criteria.SelectedDays...)
	models.SortDays(days)

	return &models.SessionStruct{
		Criteria: criteria,
		Days:     days,
		Result:   s.storage.Search(criteria),
	}
}
