package catalog

import (
	"strings"

	"bitbucket.org/surfagenda/backend/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type Storage interface {
	EventStorage
	DayStorage
}

type EventStorage interface {
	GetEvents() []models.Event
	GetEventByID(id string) *models.Event
	Query(criteria models.Criteria) []models.Event
	Facets(criteria models.Criteria) models.Facets
	Search(criteria models.Criteria) *models.QueryResult
}

type DayStorage interface {
	GetDays() []models.Day
	PriceCeiling() int
}

// Catalog is the normalized, read-only listing set for the whole session.
type Catalog struct {
	events []models.Event
	byID   map[string]int
	lang   language.Tag
}

func New(raw []models.RawEvent, lang language.Tag) *Catalog {
	events := Normalize(raw)
	byID := make(map[string]int, len(events))
	for i, e := range events {
		byID[e.ID] = i
	}

	log.WithFields(log.Fields{
		"events":   len(events),
		"language": lang.String(),
	}).Info("catalog: listings normalized")

	return &Catalog{
		events: events,
		byID:   byID,
		lang:   lang,
	}
}

// Open builds the catalog from datasetPath, or from the embedded listings
// when the path is empty.
func Open(datasetPath string, locale string) (*Catalog, error) {
	lang := DefaultLanguage
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid collation locale %q", locale)
		}
		lang = tag
	}

	var (
		raw []models.RawEvent
		err error
	)
	if datasetPath == "" {
		raw, err = LoadEmbedded()
	} else {
		raw, err = LoadFile(datasetPath)
	}
	if err != nil {
		return nil, err
	}

	return New(raw, lang), nil
}

func (c *Catalog) GetEvents() []models.Event {
	return append([]models.Event{}, c.events...)
}

func (c *Catalog) GetEventByID(id string) *models.Event {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	event := c.events[i]
	return &event
}

func (c *Catalog) Query(criteria models.Criteria) []models.Event {
	return Query(c.events, criteria, c.lang)
}

func (c *Catalog) Facets(criteria models.Criteria) models.Facets {
	return Facets(c.events, criteria)
}

// Search runs the pipeline and gathers everything a results page needs.
func (c *Catalog) Search(criteria models.Criteria) *models.QueryResult {
	narrowed := NarrowByDay(c.events, criteria)
	events := Query(c.events, criteria, c.lang)
	state := Classify(narrowed, events, criteria)

	return &models.QueryResult{
		Events:        models.NewEventViews(events),
		Total:         len(events),
		Facets:        Facets(c.events, criteria),
		PriceCeiling:  PriceCeiling(narrowed),
		ActiveFilters: criteria.ActiveFilters(PriceCeiling(narrowed)),
		EmptyState:    state,
		Message:       state.Message(),
		ClearFilters:  state.CanClearFilters(),
	}
}

// GetDays lists every day that has at least one listing, in calendar order.
func (c *Catalog) GetDays() []models.Day {
	counts := map[string]int{}
	labels := map[string]string{}
	codes := []string{}
	for _, e := range c.events {
		if _, ok := counts[e.DateCode]; !ok {
			codes = append(codes, e.DateCode)
			labels[e.DateCode] = dayLabel(e.Date)
		}
		counts[e.DateCode]++
	}
	models.SortDays(codes)

	days := make([]models.Day, 0, len(codes))
	for _, code := range codes {
		days = append(days, models.Day{Code: code, Label: labels[code], Events: counts[code]})
	}
	return days
}

func (c *Catalog) PriceCeiling() int {
	return PriceCeiling(c.events)
}

// dayLabel turns "19/jun." into "19 Jun".
func dayLabel(date string) string {
	parts := strings.SplitN(date, "/", 2)
	if len(parts) != 2 {
		return strings.TrimSpace(date)
	}
	month := strings.TrimSuffix(strings.TrimSpace(parts[1]), ".")
	if month == "" {
		return strings.TrimSpace(parts[0])
	}
	return strings.TrimSpace(parts[0]) + " " + strings.ToUpper(month[:1]) + month[1:]
}
