package models

import (
	"strings"

	"github.com/thedevsaddam/govalidator"
)

type EmptyState string

const (
	EmptyStateNone           EmptyState = ""
	EmptyStateNoDaysSelected EmptyState = "no_days_selected"
	EmptyStateNoEventsOnDays EmptyState = "no_events_on_days"
	EmptyStateOverFiltered   EmptyState = "over_filtered"
)

var emptyStateMessages = map[EmptyState]string{
	EmptyStateNoDaysSelected: "Selecione pelo menos um dia para continuar",
	EmptyStateNoEventsOnDays: "Nenhum evento encontrado para as datas selecionadas.",
	EmptyStateOverFiltered:   "Nenhum evento encontrado com os filtros aplicados.",
}

func (s EmptyState) Message() string {
	return emptyStateMessages[s]
}

// CanClearFilters reports whether a "clear filters" action would help.
func (s EmptyState) CanClearFilters() bool {
	return s == EmptyStateOverFiltered
}

type Facets struct {
	Artists        []string       `json:"artists"`
	Venues         []string       `json:"venues"`
	TimeCategories []TimeCategory `json:"time_categories"`
}

type QueryResult struct {
	Events        []EventView `json:"events"`
	Total         int         `json:"total"`
	Facets        Facets      `json:"facets"`
	PriceCeiling  int         `json:"price_ceiling"`
	ActiveFilters int         `json:"active_filters"`
	EmptyState    EmptyState  `json:"empty_state,omitempty"`
	Message       string      `json:"message,omitempty"`
	ClearFilters  bool        `json:"clear_filters"`
}

type SessionStruct struct {
	Criteria Criteria     `json:"criteria"`
	Days     []string     `json:"days"`
	Result   *QueryResult `json:"result"`
}

type GetEventsOpts struct {
	Days      []string `schema:"days"`
	ActiveDay string   `schema:"active_day"`
	Artist    string   `schema:"artist"`
	PriceMin  *int     `schema:"price_min"`
	PriceMax  *int     `schema:"price_max"`
	Time      []string `schema:"time"`
	Venues    []string `schema:"venue"`
	Sort      string   `schema:"sort"`
}

var GetEventsRules = govalidator.MapData{
	"days":       []string{"day_codes"},
	"active_day": []string{"day_codes"},
	"artist":     []string{"max:200"},
	"price_min":  []string{"numeric"},
	"price_max":  []string{"numeric"},
	"time":       []string{"time_categories"},
	"sort":       []string{"in:time,price,artist"},
}

// ToCriteria builds a full criteria value on top of the defaults. List
// parameters may be repeated or comma separated.
func (opts *GetEventsOpts) ToCriteria(priceCeiling int) Criteria {
	criteria := DefaultCriteria(priceCeiling).SetSelectedDays(splitList(opts.Days))
	criteria = criteria.SetActiveDay(opts.ActiveDay)
	criteria = criteria.SetArtist(opts.Artist)

	priceRange := criteria.PriceRange
	if opts.PriceMin != nil {
		priceRange.Min = *opts.PriceMin
	}
	if opts.PriceMax != nil {
		priceRange.Max = *opts.PriceMax
	}
	criteria = criteria.SetPriceRange(priceRange.Min, priceRange.Max)

	for _, category := range splitList(opts.Time) {
		criteria = criteria.ToggleTimeOfDay(TimeCategory(category))
	}
	for _, venue := range splitList(opts.Venues) {
		criteria = criteria.ToggleVenue(venue)
	}
	if opts.Sort != "" {
		criteria = criteria.SetSortBy(SortKey(opts.Sort))
	}
	return criteria
}

type SetActiveDayOpts struct {
	Day string `json:"day"`
}

var SetActiveDayRules = govalidator.MapData{
	"day": []string{"day_codes"},
}

type SetArtistOpts struct {
	Artist string `json:"artist"`
}

var SetArtistRules = govalidator.MapData{
	"artist": []string{"max:200"},
}

type SetPriceRangeOpts struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var SetPriceRangeRules = govalidator.MapData{
	"min": []string{"numeric"},
	"max": []string{"numeric"},
}

type SetSortOpts struct {
	Sort string `json:"sort"`
}

var SetSortRules = govalidator.MapData{
	"sort": []string{"required", "in:time,price,artist"},
}

// splitList flattens repeated and comma separated values, keeping order and
// dropping duplicates.
func splitList(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" && !containsString(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}

type SetSelectedDaysOpts struct {
	Days []string `json:"days"`
}

var SetSelectedDaysRules = govalidator.MapData{
	"days": []string{"day_codes"},
}

type ItineraryOpts struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

var ItineraryRules = govalidator.MapData{
	"email": []string{"required", "email"},
	"name":  []string{"max:120"},
}

type QRCodeOpts struct {
	Size int `schema:"size"`
}

var QRCodeRules = govalidator.MapData{
	"size": []string{"numeric"},
}
