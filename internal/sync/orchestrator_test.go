package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		AdsSync: config.AdsSync{
			TableName:             "facebook_ads_daily",
			LookbackDays:          30,
			RewriteLastNDays:      1,
			MonitoringWindowDays:  10,
			MaxChunkDays:          7,
			RateLimitDelaySeconds: 30,
			MinSpendThreshold:     0.01,
		},
	}
}

// newTestOrchestrator fixa a referência de "hoje" em 15 de julho de 2024 e
// troca o sleep real por um contador
func newTestOrchestrator(
	source meta.Integrator,
	repo repository.AdMetricsRepository,
	runRepo repository.SyncRunRepository,
	sleeps *int,
) *Orchestrator {
	o := NewOrchestrator(testConfig(), source, repo, runRepo)
	o.now = func() time.Time { return date("2024-07-15") }
	o.sleep = func(time.Duration) {
		if sleeps != nil {
			*sleeps++
		}
	}
	return o
}

func metricRow(day string, spend float64) *domain.AdMetricRow {
	return &domain.AdMetricRow{
		AccountName: "Conta Teste",
		Campaign:    "Campanha A",
		AdsetName:   "Conjunto A",
		AdName:      "Anúncio A",
		Date:        date(day),
		Impressions: 100,
		Clicks:      10,
		Spend:       spend,
	}
}

func TestOrchestrator_Run_ColdStartCriaTabelaEPlanejaTudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	requested := domain.NewDateRange(date("2024-07-12"), date("2024-07-14"))
	chunk := domain.DateRange{Start: date("2024-07-12"), End: date("2024-07-14")}
	rows := []*domain.AdMetricRow{metricRow("2024-07-12", 10.5), metricRow("2024-07-13", 8.2)}

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().CreateTable(gomock.Any()).Return(nil)
	mockSource.EXPECT().FetchMetrics(gomock.Any(), chunk).Return(rows, nil)
	mockRepo.EXPECT().ReplaceRows(gomock.Any(), chunk, rows).Return(int64(2), nil)

	o := newTestOrchestrator(mockSource, mockRepo, nil, nil)

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.RangesPlanned)
	assert.Equal(t, 1, result.RangesProcessed)
	assert.Equal(t, 2, result.RowsLoaded)
	assert.Empty(t, result.Errors)
}

func TestOrchestrator_Run_FalhaDeBuscaNaoInterrompeOsDemaisChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	// 14 dias ausentes viram dois chunks de 7 dias
	requested := domain.NewDateRange(date("2024-07-01"), date("2024-07-14"))
	firstChunk := domain.DateRange{Start: date("2024-07-01"), End: date("2024-07-07")}
	secondChunk := domain.DateRange{Start: date("2024-07-08"), End: date("2024-07-14")}
	rows := []*domain.AdMetricRow{metricRow("2024-07-08", 5.0)}

	fetchErr := &meta.FetchError{AccountID: "123", Range: firstChunk, Err: errors.New("rate limited")}

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().QueryDates(gomock.Any(), date("2024-07-05")).Return([]time.Time{}, nil)
	mockSource.EXPECT().FetchMetrics(gomock.Any(), firstChunk).Return(nil, fetchErr)
	mockSource.EXPECT().FetchMetrics(gomock.Any(), secondChunk).Return(rows, nil)
	mockRepo.EXPECT().ReplaceRows(gomock.Any(), secondChunk, rows).Return(int64(1), nil)

	sleeps := 0
	o := newTestOrchestrator(mockSource, mockRepo, nil, &sleeps)

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.RangesPlanned)
	assert.Equal(t, 1, result.RangesProcessed)
	assert.Equal(t, 1, result.RowsLoaded)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], fetchErr)

	// A pausa acontece apenas entre chunks, nunca após o último
	assert.Equal(t, 1, sleeps)
}

func TestOrchestrator_Run_BuscaVaziaAindaLimpaOIntervalo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	requested := domain.NewDateRange(date("2024-07-13"), date("2024-07-14"))
	chunk := domain.DateRange{Start: date("2024-07-13"), End: date("2024-07-14")}

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().QueryDates(gomock.Any(), date("2024-07-05")).Return([]time.Time{}, nil)

	// Sem gasto nas datas: resultado legítimo, não erro
	mockSource.EXPECT().FetchMetrics(gomock.Any(), chunk).Return([]*domain.AdMetricRow{}, nil)

	// A escrita vazia ainda precisa acontecer para remover linhas obsoletas
	mockRepo.EXPECT().
		ReplaceRows(gomock.Any(), chunk, gomock.Len(0)).
		Return(int64(0), nil)

	o := newTestOrchestrator(mockSource, mockRepo, nil, nil)

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.RangesProcessed)
	assert.Equal(t, 0, result.RowsLoaded)
	assert.Empty(t, result.Errors)
}

func TestOrchestrator_Run_FalhaDeArmazenamentoERegistradaPorChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	requested := domain.NewDateRange(date("2024-07-14"), date("2024-07-14"))
	chunk := domain.DateRange{Start: date("2024-07-14"), End: date("2024-07-14")}
	rows := []*domain.AdMetricRow{metricRow("2024-07-14", 3.3)}

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().QueryDates(gomock.Any(), date("2024-07-05")).Return([]time.Time{}, nil)
	mockSource.EXPECT().FetchMetrics(gomock.Any(), chunk).Return(rows, nil)
	mockRepo.EXPECT().ReplaceRows(gomock.Any(), chunk, rows).Return(int64(0), errors.New("connection reset"))

	o := newTestOrchestrator(mockSource, mockRepo, nil, nil)

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.RangesProcessed)
	require.Len(t, result.Errors, 1)

	var storageErr *StorageError
	require.ErrorAs(t, result.Errors[0], &storageErr)
	assert.Equal(t, chunk, storageErr.Range)
}

func TestOrchestrator_Run_TudoCobertoNaoBuscaNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	requested := domain.NewDateRange(date("2024-07-12"), date("2024-07-14"))

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		QueryDates(gomock.Any(), date("2024-07-05")).
		Return(dates("2024-07-12", "2024-07-13", "2024-07-14"), nil)

	o := newTestOrchestrator(mockSource, mockRepo, nil, nil)

	// Sem reescrita: nada a fazer, a origem não é consultada
	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.RangesPlanned)
	assert.Equal(t, 0, result.RangesProcessed)
	assert.Empty(t, result.Errors)
}

func TestOrchestrator_Run_IntervaloInvalidoAbortaAntesDeQualquerIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa nos mocks: a rejeição acontece antes de qualquer
	// chamada aos colaboradores, em particular antes do CreateTable do cold start
	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)

	o := newTestOrchestrator(mockSource, mockRepo, nil, nil)

	requested := domain.NewDateRange(date("2024-07-10"), date("2024-07-01"))

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	assert.Nil(t, result)

	var invalidErr *InvalidRangeError
	require.ErrorAs(t, err, &invalidErr)
}

func TestOrchestrator_Run_RegistraAuditoriaDaExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := metamocks.NewMockIntegrator(ctrl)
	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)
	mockRunRepo := mocks.NewMockSyncRunRepository(ctrl)

	requested := domain.NewDateRange(date("2024-07-14"), date("2024-07-14"))
	chunk := domain.DateRange{Start: date("2024-07-14"), End: date("2024-07-14")}
	rows := []*domain.AdMetricRow{metricRow("2024-07-14", 7.7)}

	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().QueryDates(gomock.Any(), gomock.Any()).Return([]time.Time{}, nil)
	mockSource.EXPECT().FetchMetrics(gomock.Any(), chunk).Return(rows, nil)
	mockRepo.EXPECT().ReplaceRows(gomock.Any(), chunk, rows).Return(int64(1), nil)

	mockRunRepo.EXPECT().EnsureTable(gomock.Any()).Return(nil)
	mockRunRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *domain.SyncRun) error {
			assert.NotEmpty(t, run.RunID)
			assert.Equal(t, 1, run.RangesProcessed)
			assert.Equal(t, 1, run.RowsLoaded)
			assert.Equal(t, 0, run.ErrorCount)
			return nil
		})

	o := newTestOrchestrator(mockSource, mockRepo, mockRunRepo, nil)

	result, err := o.Run(context.Background(), requested, SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsLoaded)
}
