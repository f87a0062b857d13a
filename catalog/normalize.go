package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bitbucket.org/surfagenda/backend/models"
	shortuuid "github.com/lithammer/shortuuid/v3"
)

const (
	// LateSlotValue sorts post-midnight slots after every same-day hour.
	LateSlotValue = 1440
	lateMarker    = "after"
)

var (
	pricePattern = regexp.MustCompile(`R\$\s*(\d+)`)
	hourPattern  = regexp.MustCompile(`(\d+)h`)
)

// Normalize turns raw listings into query-ready events. It never fails: any
// field it cannot read falls back to 0, Unspecified or VenueOther.
func Normalize(raw []models.RawEvent) []models.Event {
	events := make([]models.Event, 0, len(raw))
	for _, r := range raw {
		events = append(events, NormalizeEvent(r))
	}
	return events
}

func NormalizeEvent(r models.RawEvent) models.Event {
	timeValue, category := ParseTime(r.Time)
	return models.Event{
		ID:           eventID(r),
		SourceID:     r.SourceID,
		Date:         r.Date,
		DateCode:     DateCode(r.Date),
		Title:        r.Title,
		TimeLabel:    r.Time,
		TimeValue:    timeValue,
		TimeCategory: category,
		PriceLabel:   r.Price,
		MinPrice:     ParseMinPrice(r.Price),
		Venue:        ResolveVenue(r.SourceID),
		TicketLink:   r.TicketLink,
	}
}

// ParseMinPrice returns the lowest R$ amount anywhere in the label, tiers
// included, or 0 when the label is sold out or carries no amount.
func ParseMinPrice(label string) int {
	if label == "" || strings.Contains(label, models.SoldOutMarker) {
		return 0
	}

	min := 0
	found := false
	for _, match := range pricePattern.FindAllStringSubmatch(label, -1) {
		price, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if !found || price < min {
			min = price
			found = true
		}
	}
	return min
}

// ParseTime maps a display time onto its sort value and time-of-day bucket.
// The sort value is the bare hour, not minutes since midnight.
func ParseTime(label string) (int, models.TimeCategory) {
	if label == "" {
		return 0, models.Unspecified
	}
	if strings.Contains(label, lateMarker) {
		return LateSlotValue, models.LateNight
	}

	hour, ok := ParseHour(label)
	if !ok {
		return 0, models.Unspecified
	}
	return hour, models.CategorizeHour(hour)
}

// ParseHour extracts the hour digits written before the "h" marker.
func ParseHour(label string) (int, bool) {
	match := hourPattern.FindStringSubmatch(label)
	if match == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return hour, true
}

// DateCode keeps the day-of-month token of a "19/jun." date.
func DateCode(date string) string {
	return strings.TrimSpace(strings.SplitN(date, "/", 2)[0])
}

func eventID(r models.RawEvent) string {
	return shortuuid.NewWithNamespace(fmt.Sprintf("%s|%s|%s|%s", r.SourceID, r.Date, r.Time, r.Title))
}
