package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-07-15")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	_, err := ParseDate("15/07/2024")

	assert.Error(t, err)
}

func TestDay_NormalizaParaMeiaNoiteUTC(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	instant := time.Date(2024, 7, 15, 22, 45, 30, 123, saoPaulo)

	day := Day(instant)

	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), day)
}

func TestYesterday(t *testing.T) {
	ref := time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC), Yesterday(ref))
}

func TestYesterday_ViradaDeMes(t *testing.T) {
	ref := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), Yesterday(ref))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Mesmo dia conta como um",
			start:    time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Intervalo inclusivo de uma semana",
			start:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
			expected: 7,
		},
		{
			name:     "Horários diferentes não alteram a contagem",
			start:    time.Date(2024, 7, 1, 23, 59, 0, 0, time.UTC),
			end:      time.Date(2024, 7, 2, 0, 1, 0, 0, time.UTC),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.start, tt.end))
		})
	}
}
