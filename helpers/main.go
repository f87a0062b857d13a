package helpers

import (
	"fmt"
	"strings"

	"bitbucket.org/surfagenda/backend/models"
)

// SplitCSV splits a comma separated flag or form value into trimmed tokens.
func SplitCSV(value string) []string {
	var out []string
	for _, token := range strings.Split(value, ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// FormatEventLine renders a listing as a single line for terminal output.
func FormatEventLine(e models.EventView) string {
	time := e.TimeLabel
	if time == "" {
		time = "--"
	}
	return fmt.Sprintf("%-8s %-10s %-40s %-22s %s", e.Date, time, e.Title, e.Venue, e.TicketSummary)
}
