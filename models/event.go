package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	SoldOutMarker = "ESGOTADO"
	TierDelimiter = "|"
)

var tierPricePattern = regexp.MustCompile(`R\$\s*(\d+)`)

// RawEvent is one hand-curated listing exactly as it appears in the dataset.
type RawEvent struct {
	SourceID   string `mapstructure:"instagram" json:"instagram"`
	Date       string `mapstructure:"date" json:"date"`
	Title      string `mapstructure:"artists" json:"artists"`
	Time       string `mapstructure:"time" json:"time"`
	TicketLink string `mapstructure:"ticket_link" json:"ticket_link"`
	Price      string `mapstructure:"price" json:"price"`
}

type Event struct {
	ID           string       `json:"id"`
	SourceID     string       `json:"source_id"`
	Date         string       `json:"date"`
	DateCode     string       `json:"date_code"`
	Title        string       `json:"title"`
	TimeLabel    string       `json:"time_label"`
	TimeValue    int          `json:"time_value"`
	TimeCategory TimeCategory `json:"time_category"`
	PriceLabel   string       `json:"price_label"`
	MinPrice     int          `json:"min_price"`
	Venue        string       `json:"venue"`
	TicketLink   string       `json:"ticket_link"`
}

// SoldOut reports whether the price label carries the sold-out marker.
func (e *Event) SoldOut() bool {
	return strings.Contains(e.PriceLabel, SoldOutMarker)
}

// Tiers splits a multi-option price label into its trimmed tiers.
func (e *Event) Tiers() []string {
	if e.PriceLabel == "" || e.SoldOut() {
		return nil
	}

	var tiers []string
	for _, tier := range strings.Split(e.PriceLabel, TierDelimiter) {
		tiers = append(tiers, strings.TrimSpace(tier))
	}
	return tiers
}

// TicketSummary is the one-line price shown on a collapsed event card.
func (e *Event) TicketSummary() string {
	if e.SoldOut() {
		return SoldOutMarker
	}
	if e.PriceLabel == "" {
		return "Preço a definir"
	}

	tiers := e.Tiers()
	if len(tiers) == 1 {
		return e.PriceLabel
	}

	lowest := 0
	for _, tier := range tiers {
		match := tierPricePattern.FindStringSubmatch(tier)
		if match == nil {
			continue
		}
		price, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if price < lowest || lowest == 0 {
			lowest = price
		}
	}
	if lowest > 0 {
		return fmt.Sprintf("A partir de R$%d", lowest)
	}
	return tiers[0]
}

func (e *Event) CallToAction() string {
	if e.SoldOut() {
		return "Ver Disponibilidade"
	}
	return "Comprar Ingressos"
}

// EventView is the JSON shape handed to the presentation layer.
type EventView struct {
	Event
	TimeLabelPT   string   `json:"time_category_label"`
	SoldOut       bool     `json:"sold_out"`
	Tiers         []string `json:"tiers,omitempty"`
	TicketSummary string   `json:"ticket_summary"`
	CallToAction  string   `json:"call_to_action"`
}

func NewEventView(e Event) EventView {
	return EventView{
		Event:         e,
		TimeLabelPT:   e.TimeCategory.Label(),
		SoldOut:       e.SoldOut(),
		Tiers:         e.Tiers(),
		TicketSummary: e.TicketSummary(),
		CallToAction:  e.CallToAction(),
	}
}

func NewEventViews(events []Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e))
	}
	return views
}

// Day is one selectable festival day.
type Day struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Events int    `json:"events"`
}
