package api

import (
	"net/http"

	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/server"
)

// HealthcheckHandler indicates the service's healthy
func HealthcheckHandler(_ *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	w.String(http.StatusOK, "OK")
}

// GetRoutes ...
func GetRoutes() []*server.Route {
	return []*server.Route{
		{Path: "/healthcheck", Methods: []string{"GET", "HEAD"}, Handler: HealthcheckHandler},

		// Catalog
		{Path: "/days", Methods: []string{"GET", "HEAD"}, Handler: GetDays},
		{Path: "/events", Methods: []string{"GET", "HEAD"}, Handler: GetEvents},
		{Path: "/events/{id}", Methods: []string{"GET", "HEAD"}, Handler: GetEvent},

		// Ticket
		{Path: "/events/{id}/ticket", Methods: []string{"GET", "HEAD"}, Handler: GetTicket},
		{Path: "/events/{id}/qr.png", Methods: []string{"GET", "HEAD"}, Handler: GetTicketQRCode},

		// Schedule
		{Path: "/schedule.ics", Methods: []string{"GET", "HEAD"}, Handler: GetSchedule},

		// Session
		{Path: "/session", Methods: []string{"GET", "HEAD"}, Handler: GetSession},
		{Path: "/session/days", Methods: []string{"PUT"}, Handler: SetSessionDays},
		{Path: "/session/days/{day:[0-9]+}", Methods: []string{"POST"}, Handler: ToggleSessionDay},
		{Path: "/session/active-day", Methods: []string{"PUT"}, Handler: SetSessionActiveDay},
		{Path: "/session/artist", Methods: []string{"PUT"}, Handler: SetSessionArtist},
		{Path: "/session/price", Methods: []string{"PUT"}, Handler: SetSessionPrice},
		{Path: "/session/time/{category}", Methods: []string{"POST"}, Handler: ToggleSessionTime},
		{Path: "/session/venues/{venue}", Methods: []string{"POST"}, Handler: ToggleSessionVenue},
		{Path: "/session/sort", Methods: []string{"PUT"}, Handler: SetSessionSort},
		{Path: "/session/clear-filters", Methods: []string{"POST"}, Handler: ClearSessionFilters},
		{Path: "/session/reset", Methods: []string{"POST"}, Handler: ResetSession},
		{Path: "/session/itinerary", Methods: []string{"POST"}, Handler: SendSessionItinerary},
	}
}
