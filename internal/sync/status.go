package sync

import (
	"context"
	"time"

	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// StatusReporter produz o relatório de cobertura e totais da tabela
// analítica. Somente leitura, nenhuma mutação.
type StatusReporter struct {
	cfg       *config.Config
	repo      repository.AdMetricsRepository
	inspector *Inspector

	now func() time.Time
}

func NewStatusReporter(cfg *config.Config, repo repository.AdMetricsRepository) *StatusReporter {
	return &StatusReporter{
		cfg:       cfg,
		repo:      repo,
		inspector: NewInspector(repo),
		now:       time.Now,
	}
}

// Report agrega os totais e lista as lacunas da janela de monitoramento,
// comparando a cobertura com o intervalo que termina ontem.
func (s *StatusReporter) Report(ctx context.Context) (*domain.StatusReport, error) {
	today := s.now()

	coverage, latest, exists, err := s.inspector.Inspect(ctx, s.cfg.AdsSync.MonitoringWindowDays, today)
	if err != nil {
		return nil, err
	}

	monitoredSince := utils.Day(today).AddDate(0, 0, -s.cfg.AdsSync.MonitoringWindowDays)

	report := &domain.StatusReport{
		TableExists:    exists,
		CoveredDates:   len(coverage),
		MissingRanges:  []domain.DateRange{},
		MonitoredSince: monitoredSince,
	}

	if !exists {
		return report, nil
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	// O gasto agregado é exibido com duas casas decimais
	stats.TotalSpend = utils.RoundWithTwoDecimalPlace(stats.TotalSpend)
	report.Stats = *stats

	// Lacunas dentro da janela de monitoramento, de monitoredSince até ontem
	window := domain.DateRange{Start: monitoredSince, End: utils.Yesterday(today)}

	missing, err := PlanMissingDates(window, coverage, latest, PlanOptions{Today: today})
	if err != nil {
		return nil, err
	}

	// Apenas agrupar em corridas contíguas para exibição
	gaps, err := ChunkDates(missing, window.SpanDays())
	if err != nil {
		return nil, err
	}
	report.MissingRanges = gaps

	return report, nil
}
