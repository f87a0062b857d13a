package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesCalendarFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "agenda.ics")

	err := newApp().Run([]string{"surfagenda", "export", "--days", "20", "-o", output})
	require.NoError(t, err)

	body, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "BEGIN:VCALENDAR"))
	assert.Equal(t, 6, strings.Count(string(body), "BEGIN:VEVENT"))
	assert.Contains(t, string(body), "Banda Erva e Convidados")
}
