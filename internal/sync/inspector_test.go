package sync

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestInspector_Inspect_ColdStartNaoEhErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)
	mockRepo.EXPECT().TableExists(gomock.Any()).Return(false, nil)

	inspector := NewInspector(mockRepo)

	coverage, latest, exists, err := inspector.Inspect(context.Background(), 10, date("2024-07-15"))

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, latest)
	assert.Empty(t, coverage)
}

func TestInspector_Inspect_RecortaAJanelaDeMonitoramento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)
	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		QueryDates(gomock.Any(), date("2024-07-05")).
		Return(dates("2024-07-10", "2024-07-13", "2024-07-14"), nil)

	inspector := NewInspector(mockRepo)

	coverage, latest, exists, err := inspector.Inspect(context.Background(), 10, date("2024-07-15"))

	require.NoError(t, err)
	assert.True(t, exists)
	require.NotNil(t, latest)
	assert.Equal(t, date("2024-07-14"), *latest)
	assert.True(t, coverage.Contains(date("2024-07-10")))
	assert.False(t, coverage.Contains(date("2024-07-11")))
}

func TestInspector_Inspect_NormalizaDatasComHorario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)
	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		QueryDates(gomock.Any(), gomock.Any()).
		Return([]time.Time{time.Date(2024, 7, 14, 18, 30, 0, 0, time.UTC)}, nil)

	inspector := NewInspector(mockRepo)

	coverage, latest, _, err := inspector.Inspect(context.Background(), 10, date("2024-07-15"))

	require.NoError(t, err)
	assert.Equal(t, date("2024-07-14"), *latest)
	assert.True(t, coverage.Contains(date("2024-07-14")))
}

func TestInspector_Inspect_PropagaErroDeConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdMetricsRepository(ctrl)
	mockRepo.EXPECT().TableExists(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		QueryDates(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	inspector := NewInspector(mockRepo)

	_, _, _, err := inspector.Inspect(context.Background(), 10, date("2024-07-15"))

	require.Error(t, err)
}
