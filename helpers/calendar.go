package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/surfagenda/backend/catalog"
	"bitbucket.org/surfagenda/backend/models"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	ConstCalendarProductID = "-//surfagenda//agenda//PT"
	ConstCalendarFileName  = "agenda.ics"
	ConstCalendarMIME      = "text/calendar; charset=utf-8"
)

var monthsPT = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

type CalendarOpts struct {
	Name     string
	Year     int
	Location *time.Location
	Duration time.Duration
	Stamp    time.Time
}

// ParseEventDate reads a "19/jun." listing date in the given year.
func ParseEventDate(date string, year int, loc *time.Location) (time.Time, error) {
	parts := strings.SplitN(date, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, errors.Errorf("date %q must be like DD/mon.", date)
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, errors.Errorf("invalid day in date %q", date)
	}

	month, ok := monthsPT[strings.ToLower(strings.TrimSuffix(strings.TrimSpace(parts[1]), "."))]
	if !ok {
		return time.Time{}, errors.Errorf("invalid month in date %q", date)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// BuildCalendar renders events as an iCalendar document. Listings without an
// hour become all-day entries.
func BuildCalendar(events []models.Event, opts CalendarOpts) (string, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ConstCalendarProductID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}
	cal.SetXWRTimezone(loc.String())

	for _, e := range events {
		day, err := ParseEventDate(e.Date, opts.Year, loc)
		if err != nil {
			return "", errors.Wrapf(err, "failed to schedule %s", e.Title)
		}

		vevent := cal.AddEvent(EventUID(e))
		vevent.SetDtStampTime(stamp)
		vevent.SetSummary(e.Title)
		vevent.SetLocation(e.Venue)
		vevent.SetDescription(eventDescription(e))
		if e.TicketLink != "" {
			vevent.SetURL(e.TicketLink)
		}

		hour, ok := catalog.ParseHour(e.TimeLabel)
		if !ok {
			vevent.SetAllDayStartAt(day)
			vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		start := day.Add(time.Duration(hour) * time.Hour)
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(opts.Duration))
	}

	return cal.Serialize(), nil
}

// EventUID is stable across exports so calendar clients update in place.
func EventUID(e models.Event) string {
	return fmt.Sprintf("%s@surfagenda", uuid.NewSHA1(uuid.NameSpaceURL, []byte(e.ID)).String())
}

func eventDescription(e models.Event) string {
	lines := []string{
		e.TimeCategory.Label(),
		e.TicketSummary(),
	}
	if tiers := e.Tiers(); len(tiers) > 1 {
		lines = append(lines, tiers...)
	}
	lines = append(lines, e.SourceID)
	return strings.Join(lines, "\n")
}
