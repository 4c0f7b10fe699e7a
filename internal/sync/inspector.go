package sync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// CoverageSet é o conjunto de datas já persistidas dentro da janela de
// monitoramento. Fora dela nada é assumido.
type CoverageSet map[time.Time]struct{}

func NewCoverageSet(dates []time.Time) CoverageSet {
	coverage := make(CoverageSet, len(dates))
	for _, d := range dates {
		coverage[utils.Day(d)] = struct{}{}
	}
	return coverage
}

func (c CoverageSet) Contains(date time.Time) bool {
	_, ok := c[utils.Day(date)]
	return ok
}

// Inspector consulta a cobertura atual da tabela analítica
type Inspector struct {
	repo repository.AdMetricsRepository
}

func NewInspector(repo repository.AdMetricsRepository) *Inspector {
	return &Inspector{repo: repo}
}

// Inspect retorna as datas persistidas dentro da janela de monitoramento e a
// data mais recente encontrada. Tabela inexistente não é erro: sinaliza
// "cold start" com cobertura vazia e exists == false.
func (i *Inspector) Inspect(
	ctx context.Context,
	monitoringWindowDays int,
	today time.Time,
) (coverage CoverageSet, latest *time.Time, exists bool, err error) {
	exists, err = i.repo.TableExists(ctx)
	if err != nil {
		return nil, nil, false, err
	}

	if !exists {
		logrus.Info("Tabela analítica ainda não existe (cold start), cobertura vazia")
		return CoverageSet{}, nil, false, nil
	}

	since := utils.Day(today).AddDate(0, 0, -monitoringWindowDays)

	dates, err := i.repo.QueryDates(ctx, since)
	if err != nil {
		return nil, nil, true, err
	}

	coverage = NewCoverageSet(dates)
	if len(dates) > 0 {
		// QueryDates retorna em ordem crescente
		last := utils.Day(dates[len(dates)-1])
		latest = &last
	}

	logrus.WithFields(logrus.Fields{
		"monitoring_window_days": monitoringWindowDays,
		"covered_dates":          len(coverage),
	}).Debug("Cobertura de datas inspecionada")

	return coverage, latest, true, nil
}
