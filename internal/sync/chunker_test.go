package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
)

func TestChunkDates(t *testing.T) {
	tests := []struct {
		name         string
		missingDates []time.Time
		maxChunkDays int
		expected     []domain.DateRange
	}{
		{
			name:         "Entrada vazia - nenhum chunk",
			missingDates: []time.Time{},
			maxChunkDays: 7,
			expected:     []domain.DateRange{},
		},
		{
			name:         "Uma única data - chunk degenerado de um dia",
			missingDates: dates("2024-07-08"),
			maxChunkDays: 7,
			expected: []domain.DateRange{
				{Start: date("2024-07-08"), End: date("2024-07-08")},
			},
		},
		{
			name:         "Corrida contígua e data isolada - dois intervalos",
			missingDates: dates("2024-07-08", "2024-07-09", "2024-07-10", "2024-07-20"),
			maxChunkDays: 30,
			expected: []domain.DateRange{
				{Start: date("2024-07-08"), End: date("2024-07-10")},
				{Start: date("2024-07-20"), End: date("2024-07-20")},
			},
		},
		{
			name: "Corrida maior que o chunk máximo - divide em sub-intervalos consecutivos",
			missingDates: dates(
				"2024-07-01", "2024-07-02", "2024-07-03", "2024-07-04", "2024-07-05",
				"2024-07-06", "2024-07-07", "2024-07-08", "2024-07-09", "2024-07-10",
			),
			maxChunkDays: 7,
			expected: []domain.DateRange{
				{Start: date("2024-07-01"), End: date("2024-07-07")},
				{Start: date("2024-07-08"), End: date("2024-07-10")},
			},
		},
		{
			name: "Duas corridas com divisão - mantém ordem crescente",
			missingDates: dates(
				"2024-06-01", "2024-06-02", "2024-06-03",
				"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14",
			),
			maxChunkDays: 2,
			expected: []domain.DateRange{
				{Start: date("2024-06-01"), End: date("2024-06-02")},
				{Start: date("2024-06-03"), End: date("2024-06-03")},
				{Start: date("2024-06-10"), End: date("2024-06-11")},
				{Start: date("2024-06-12"), End: date("2024-06-13")},
				{Start: date("2024-06-14"), End: date("2024-06-14")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ChunkDates(tt.missingDates, tt.maxChunkDays)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, chunks)

			// A união dos chunks deve cobrir exatamente o conjunto de entrada,
			// sem sobreposição e respeitando o tamanho máximo
			covered := make(map[time.Time]bool)
			for _, chunk := range chunks {
				assert.LessOrEqual(t, chunk.SpanDays(), tt.maxChunkDays)
				for _, d := range chunk.Days() {
					assert.False(t, covered[d], "data coberta por mais de um chunk: %s", d.Format(time.DateOnly))
					covered[d] = true
				}
			}
			assert.Len(t, covered, len(tt.missingDates))
			for _, d := range tt.missingDates {
				assert.True(t, covered[d], "data de entrada não coberta: %s", d.Format(time.DateOnly))
			}
		})
	}
}

func TestChunkDates_ConfiguracaoInvalida(t *testing.T) {
	for _, maxChunkDays := range []int{0, -1} {
		chunks, err := ChunkDates(dates("2024-07-01"), maxChunkDays)

		assert.Nil(t, chunks)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "max_chunk_days", cfgErr.Param)
	}
}
