package meta

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// Integrator é o colaborador de origem: busca as métricas diárias de
// anúncios na conta configurada. Resultado vazio não é erro.
type Integrator interface {
	FetchMetrics(ctx context.Context, dateRange domain.DateRange) ([]*domain.AdMetricRow, error)
}

// FetchError é a falha tipada de busca na origem, distinta de "sem dados"
type FetchError struct {
	AccountID string
	Range     domain.DateRange
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("erro ao buscar métricas da conta %s no intervalo %s: %v", e.AccountID, e.Range, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) FetchMetrics(ctx context.Context, dateRange domain.DateRange) ([]*domain.AdMetricRow, error) {
	accountID := s.cfg.Meta.AdAccountID

	insights, err := s.Client.GetAdInsights(ctx, accountID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": dateRange.String(),
			"error":      err.Error(),
		}).Error("insights: falha ao buscar métricas de anúncios na API")
		return nil, &FetchError{AccountID: accountID, Range: dateRange, Err: err}
	}

	rows := make([]*domain.AdMetricRow, 0, len(insights))
	skipped := 0

	for _, insight := range insights {
		row, err := factoryAdMetricRow(insight)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"date_start": insight.DateStart,
				"error":      err.Error(),
			}).Warn("insights: linha descartada por data inválida")
			skipped++
			continue
		}

		// Anúncios sem gasto relevante não entram na tabela analítica
		if row.Spend < s.cfg.AdsSync.MinSpendThreshold {
			skipped++
			continue
		}

		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date_range": dateRange.String(),
		"rows":       len(rows),
		"skipped":    skipped,
	}).Debug("insights: métricas de anúncios convertidas")

	return rows, nil
}

func factoryAdMetricRow(insight metadomain.AdInsightRow) (*domain.AdMetricRow, error) {
	date, err := time.Parse(time.DateOnly, insight.DateStart)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data %q: %w", insight.DateStart, err)
	}

	return &domain.AdMetricRow{
		AccountName:       insight.AccountName,
		Campaign:          insight.CampaignName,
		AdsetName:         insight.AdsetName,
		AdName:            insight.AdName,
		Date:              utils.Day(date),
		Impressions:       utils.ParseIntOrZero(insight.Impressions),
		Clicks:            utils.ParseIntOrZero(insight.Clicks),
		Spend:             utils.ParseFloatOrZero(insight.Spend),
		CPC:               utils.ParseFloatOrZero(insight.CPC),
		CPM:               utils.ParseFloatOrZero(insight.CPM),
		CTR:               utils.ParseFloatOrZero(insight.CTR),
		Frequency:         utils.ParseFloatOrZero(insight.Frequency),
		UniqueCTR:         utils.ParseFloatOrZero(insight.UniqueCTR),
		Conversions:       utils.ParseIntOrZero(insight.Conversions),
		CostPerConversion: utils.ParseFloatOrZero(insight.CostPerConversion),
		UniqueConversions: utils.ParseIntOrZero(insight.UniqueConversions),
	}, nil
}
