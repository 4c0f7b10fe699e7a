package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	syncer "github.com/vfg2006/ads-warehouse-sync/internal/sync"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// DailySyncConfig representa a configuração do agendador da sincronização diária
type DailySyncConfig struct {
	CronSchedule     string
	LookbackDays     int
	RewriteLastNDays int
	SyncEnabled      bool
}

// DailySyncService agenda e executa a sincronização diária incremental
type DailySyncService struct {
	scheduler    *gocron.Scheduler
	config       DailySyncConfig
	orchestrator *syncer.Orchestrator

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
}

// NewDailySyncService cria uma nova instância do serviço de sincronização diária
func NewDailySyncService(
	orchestrator *syncer.Orchestrator,
	appConfig *config.Config,
) *DailySyncService {
	dailyConfig := DailySyncConfig{
		CronSchedule:     appConfig.AdsSync.CronSchedule,
		LookbackDays:     appConfig.AdsSync.LookbackDays,
		RewriteLastNDays: appConfig.AdsSync.RewriteLastNDays,
		SyncEnabled:      appConfig.AdsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       dailyConfig.CronSchedule,
		"lookback_days":       dailyConfig.LookbackDays,
		"rewrite_last_n_days": dailyConfig.RewriteLastNDays,
		"sync_enabled":        dailyConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização diária carregada")

	return &DailySyncService{
		scheduler:    scheduler,
		config:       dailyConfig,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *DailySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailySync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização diária: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização diária")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailySync executa uma sincronização da janela diária padrão.
// Execuções não podem se sobrepor: o delete-então-insert por data não pode
// intercalar com as escritas de outra execução.
func (s *DailySyncService) runDailySync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// Janela padrão: de ontem menos lookback até ontem
	end := utils.Yesterday(time.Now())
	start := end.AddDate(0, 0, -s.config.LookbackDays)
	requested := domain.NewDateRange(start, end)

	logrus.WithFields(logrus.Fields{
		"start_date": requested.Start.Format(time.DateOnly),
		"end_date":   requested.End.Format(time.DateOnly),
	}).Info("Período da sincronização diária")

	result, err := s.orchestrator.Run(ctx, requested, syncer.SyncOptions{
		RewriteLastNDays: s.config.RewriteLastNDays,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro fatal na sincronização diária")
		return
	}

	if result.HasErrors() {
		logrus.WithFields(logrus.Fields{
			"run_id": result.RunID,
			"errors": result.ErrorMessages(),
		}).Warn("Sincronização diária concluída com falhas por chunk")
	}

	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização diária. Devolve
// false quando já existe uma execução em andamento.
func (s *DailySyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização diária manual")
	// O disparo manual sobrevive ao request que o originou
	go s.runDailySync(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailySyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"rewrite_last_n_days":    s.config.RewriteLastNDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_run_id"] = s.lastResult.RunID
		status["last_rows_loaded"] = s.lastResult.RowsLoaded
		status["last_error_count"] = len(s.lastResult.Errors)
	}

	return status
}
