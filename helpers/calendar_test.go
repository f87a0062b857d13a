package helpers

import (
	"strings"
	"testing"
	"time"

	"bitbucket.org/surfagenda/backend/models"
	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date, err := ParseEventDate("19/jun.", 2025, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 19, 0, 0, 0, 0, loc), date)

	date, err = ParseEventDate("3/Dez", 2025, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.December, date.Month())

	for _, bad := range []string{"", "19", "xx/jun.", "19/june", "40/jun."} {
		_, err := ParseEventDate(bad, 2025, time.UTC)
		assert.Error(t, err, bad)
	}
}

func TestBuildCalendar(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	events := []models.Event{
		{
			ID:           "maru",
			SourceID:     "@festivalsunset_2025",
			Date:         "19/jun.",
			Title:        "Maru2D + Dj Bertolossi",
			TimeLabel:    "22h",
			TimeCategory: models.Evening,
			PriceLabel:   "Pista: R$35 | Camarote: R$2500",
			Venue:        "Festival Sunset",
			TicketLink:   "https://example.com/sunset",
		},
		{
			ID:           "banda",
			SourceID:     "@casa.amare.saquarema",
			Date:         "20/jun.",
			Title:        "Banda Erva e Convidados",
			TimeCategory: models.Unspecified,
			PriceLabel:   "R$100",
			Venue:        "Casa Amare",
		},
	}

	body, err := BuildCalendar(events, CalendarOpts{
		Name:     "surfagenda",
		Year:     2025,
		Location: loc,
		Duration: 3 * time.Hour,
	})
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2)

	timed := cal.Events()[0]
	assert.Equal(t, EventUID(events[0]), timed.GetProperty(ics.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Maru2D + Dj Bertolossi", timed.GetProperty(ics.ComponentPropertySummary).Value)
	start, err := timed.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, time.June, 19, 22, 0, 0, 0, loc)))
	end, err := timed.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, end.Sub(start))

	allDay := cal.Events()[1]
	day, err := allDay.GetAllDayStartAt()
	require.NoError(t, err)
	assert.Equal(t, 20, day.Day())
	assert.Equal(t, time.June, day.Month())
	assert.Nil(t, allDay.GetProperty(ics.ComponentPropertyUrl))
}

func TestBuildCalendarRejectsBadDate(t *testing.T) {
	_, err := BuildCalendar([]models.Event{{ID: "x", Title: "x", Date: "soon"}}, CalendarOpts{Year: 2025})
	assert.Error(t, err)
}

func TestEventUIDIsStable(t *testing.T) {
	a := models.Event{ID: "abc"}
	assert.Equal(t, EventUID(a), EventUID(a))
	assert.NotEqual(t, EventUID(a), EventUID(models.Event{ID: "abd"}))
	assert.True(t, strings.HasSuffix(EventUID(a), "@surfagenda"))
}
