package sync

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/log"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// SyncOptions é a política de uma execução do orquestrador
type SyncOptions struct {
	RewriteLastNDays int
	Force            bool
}

// Orchestrator executa o plano de sincronização: para cada chunk, busca as
// linhas na origem e substitui as linhas do intervalo no banco, com pausa
// entre chunks. Os chunks são processados estritamente em sequência.
type Orchestrator struct {
	cfg       *config.Config
	source    meta.Integrator
	repo      repository.AdMetricsRepository
	runRepo   repository.SyncRunRepository
	inspector *Inspector

	// substituíveis em teste
	now   func() time.Time
	sleep func(time.Duration)
}

func NewOrchestrator(
	cfg *config.Config,
	source meta.Integrator,
	repo repository.AdMetricsRepository,
	runRepo repository.SyncRunRepository,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		source:    source,
		repo:      repo,
		runRepo:   runRepo,
		inspector: NewInspector(repo),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Run inspeciona a cobertura, planeja os intervalos ausentes e os processa
// um a um. Falhas por chunk são acumuladas no resultado e não interrompem a
// execução; apenas intervalo inválido e configuração inválida abortam.
func (o *Orchestrator) Run(
	ctx context.Context,
	requested domain.DateRange,
	opts SyncOptions,
) (*domain.SyncResult, error) {
	// Intervalo inválido é fatal e rejeitado antes de qualquer I/O
	if requested.Start.After(requested.End) {
		return nil, &InvalidRangeError{Start: requested.Start, End: requested.End}
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	result := &domain.SyncResult{
		RunID:     runID,
		StartedAt: o.now(),
	}

	logger.WithFields(log.Fields{
		"requested": requested.String(),
		"force":     opts.Force,
		"rewrite_n": opts.RewriteLastNDays,
	}).Info("Iniciando sincronização de métricas de anúncios")

	coverage, latest, exists, err := o.inspector.Inspect(ctx, o.cfg.AdsSync.MonitoringWindowDays, o.now())
	if err != nil {
		return nil, err
	}

	if !exists {
		if err := o.repo.CreateTable(ctx); err != nil {
			return nil, err
		}
		logger.WithField("table", o.cfg.AdsSync.TableName).Info("Tabela analítica criada (cold start)")
	}

	missing, err := PlanMissingDates(requested, coverage, latest, PlanOptions{
		RewriteLastNDays: opts.RewriteLastNDays,
		Force:            opts.Force,
		Today:            o.now(),
	})
	if err != nil {
		return nil, err
	}

	chunks, err := ChunkDates(missing, o.cfg.AdsSync.MaxChunkDays)
	if err != nil {
		return nil, err
	}

	result.RangesPlanned = len(chunks)

	if len(chunks) == 0 {
		logger.Info("Nenhuma data ausente, dados já atualizados")
		result.FinishedAt = o.now()
		o.saveRunAudit(ctx, result)
		return result, nil
	}

	logger.WithFields(log.Fields{
		"missing_dates": len(missing),
		"chunks":        len(chunks),
	}).Info("Plano de sincronização computado")

	delay := time.Duration(o.cfg.AdsSync.RateLimitDelaySeconds) * time.Second

	for i, chunk := range chunks {
		// Cancelamento entre chunks é seguro: os anteriores já estão persistidos
		if ctx.Err() != nil {
			logger.Warn("Execução cancelada, chunks restantes não processados")
			break
		}

		o.processChunk(ctx, chunk, result)

		if i < len(chunks)-1 {
			logger.WithField("delay", delay.String()).Debug("Aguardando antes do próximo chunk")
			o.sleep(delay)
		}
	}

	result.FinishedAt = o.now()

	logger.WithFields(log.Fields{
		"ranges_processed": result.RangesProcessed,
		"rows_loaded":      result.RowsLoaded,
		"errors":           len(result.Errors),
		"duration":         result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("Sincronização de métricas de anúncios concluída")

	o.saveRunAudit(ctx, result)

	return result, nil
}

// processChunk busca e grava um intervalo. A substituição apaga e insere na
// mesma transação, então repetir o chunk é idempotente.
func (o *Orchestrator) processChunk(ctx context.Context, chunk domain.DateRange, result *domain.SyncResult) {
	logger := log.ForContext(ctx).WithField("chunk", chunk.String())

	rows, err := o.source.FetchMetrics(ctx, chunk)
	if err != nil {
		logger.WithError(err).Error("Falha ao buscar métricas do chunk, seguindo para o próximo")
		result.Errors = append(result.Errors, err)
		return
	}

	if len(rows) == 0 {
		// Sem gasto no período é um resultado legítimo; a escrita vazia ainda
		// limpa linhas obsoletas de uma carga anterior do intervalo
		logger.Info("Origem sem linhas para o intervalo, limpando dados residuais")
	}

	inserted, err := o.repo.ReplaceRows(ctx, chunk, rows)
	if err != nil {
		logger.WithError(err).Error("Falha ao gravar métricas do chunk, seguindo para o próximo")
		result.Errors = append(result.Errors, &StorageError{Range: chunk, Err: err})
		return
	}

	result.RangesProcessed++
	result.RowsLoaded += int(inserted)

	logger.WithFields(log.Fields{
		"rows_loaded": inserted,
	}).Info("Chunk sincronizado com sucesso")
}

// saveRunAudit persiste o registro de auditoria da execução (melhor esforço)
func (o *Orchestrator) saveRunAudit(ctx context.Context, result *domain.SyncResult) {
	if o.runRepo == nil {
		return
	}

	if err := o.runRepo.EnsureTable(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível garantir a tabela de auditoria de execuções")
		return
	}

	run := &domain.SyncRun{
		RunID:           result.RunID,
		StartedAt:       result.StartedAt,
		FinishedAt:      result.FinishedAt,
		RangesProcessed: result.RangesProcessed,
		RowsLoaded:      result.RowsLoaded,
		ErrorCount:      len(result.Errors),
		ErrorSummary:    strings.Join(result.ErrorMessages(), "; "),
	}

	if err := o.runRepo.Save(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível salvar a auditoria da execução")
	}
}
