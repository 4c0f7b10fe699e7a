package sync

import (
	"time"

	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// ChunkDates agrupa as datas ausentes em intervalos contíguos e divide os
// intervalos maiores que maxChunkDays em sub-intervalos consecutivos, para
// respeitar o limite de dias por requisição da API. A união dos intervalos
// retornados cobre exatamente o conjunto de entrada, sem sobreposição, em
// ordem crescente.
func ChunkDates(missingDates []time.Time, maxChunkDays int) ([]domain.DateRange, error) {
	if maxChunkDays <= 0 {
		return nil, &ConfigurationError{
			Param:   "max_chunk_days",
			Message: "deve ser maior que zero",
		}
	}

	if len(missingDates) == 0 {
		return []domain.DateRange{}, nil
	}

	// Primeiro agrupar corridas contíguas de datas
	runs := make([]domain.DateRange, 0)
	runStart := utils.Day(missingDates[0])
	prev := runStart

	for _, d := range missingDates[1:] {
		d = utils.Day(d)
		if !d.Equal(prev.AddDate(0, 0, 1)) {
			runs = append(runs, domain.DateRange{Start: runStart, End: prev})
			runStart = d
		}
		prev = d
	}
	runs = append(runs, domain.DateRange{Start: runStart, End: prev})

	// Depois dividir cada corrida no tamanho máximo de chunk
	chunks := make([]domain.DateRange, 0, len(runs))
	for _, run := range runs {
		for start := run.Start; !start.After(run.End); start = start.AddDate(0, 0, maxChunkDays) {
			end := start.AddDate(0, 0, maxChunkDays-1)
			if end.After(run.End) {
				end = run.End
			}
			chunks = append(chunks, domain.DateRange{Start: start, End: end})
		}
	}

	return chunks, nil
}
