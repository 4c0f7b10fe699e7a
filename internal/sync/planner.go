package sync

import (
	"sort"
	"time"

	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// PlanOptions controla a política de reescrita do planejamento
type PlanOptions struct {
	// RewriteLastNDays inclui as últimas N datas até `latest` mesmo quando já
	// cobertas, para atualizar dias que o Meta ainda não havia finalizado
	RewriteLastNDays int
	// Force considera ausente toda data do intervalo solicitado
	Force bool
	// Today é a referência de "hoje"; dados só existem até ontem
	Today time.Time
}

// PlanMissingDates computa, em ordem crescente e sem duplicatas, as datas do
// intervalo solicitado que precisam ser (re)buscadas. Datas forçadas por
// reescrita entram em união com as genuinamente ausentes.
func PlanMissingDates(
	requested domain.DateRange,
	coverage CoverageSet,
	latest *time.Time,
	opts PlanOptions,
) ([]time.Time, error) {
	if requested.Start.After(requested.End) {
		return nil, &InvalidRangeError{Start: requested.Start, End: requested.End}
	}

	yesterday := utils.Yesterday(opts.Today)

	// Intervalo inteiramente no futuro: nada a fazer, não é erro
	if requested.Start.After(yesterday) {
		return []time.Time{}, nil
	}

	effectiveEnd := requested.End
	if effectiveEnd.After(yesterday) {
		effectiveEnd = yesterday
	}

	selected := make(map[time.Time]struct{})

	for d := utils.Day(requested.Start); !d.After(effectiveEnd); d = d.AddDate(0, 0, 1) {
		if opts.Force || !coverage.Contains(d) {
			selected[d] = struct{}{}
		}
	}

	// Janela de reescrita: as últimas N datas até `latest`, quando `latest`
	// cai dentro do intervalo solicitado
	if opts.RewriteLastNDays > 0 && latest != nil && requested.Contains(*latest) {
		for i := 0; i < opts.RewriteLastNDays; i++ {
			d := utils.Day(*latest).AddDate(0, 0, -i)
			if requested.Contains(d) && !d.After(effectiveEnd) {
				selected[d] = struct{}{}
			}
		}
	}

	missing := make([]time.Time, 0, len(selected))
	for d := range selected {
		missing = append(missing, d)
	}

	sort.Slice(missing, func(i, j int) bool {
		return missing[i].Before(missing[j])
	})

	return missing, nil
}
