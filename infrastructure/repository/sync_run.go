package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
)

const syncRunsTable = "sync_runs"

// SyncRunRepository registra a auditoria das execuções de sincronização
type SyncRunRepository interface {
	EnsureTable(ctx context.Context) error
	Save(ctx context.Context, run *domain.SyncRun) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn postgres.Conn
}

func NewSyncRunRepository(conn postgres.Conn) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) EnsureTable(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS sync_runs (
			run_id           TEXT PRIMARY KEY,
			started_at       TIMESTAMPTZ NOT NULL,
			finished_at      TIMESTAMPTZ NOT NULL,
			ranges_processed INTEGER NOT NULL DEFAULT 0,
			rows_loaded      BIGINT NOT NULL DEFAULT 0,
			error_count      INTEGER NOT NULL DEFAULT 0,
			error_summary    TEXT NOT NULL DEFAULT ''
		)`

	if _, err := r.conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("erro ao criar tabela sync_runs: %w", err)
	}

	return nil
}

func (r *syncRunRepository) Save(ctx context.Context, run *domain.SyncRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(syncRunsTable).
		Columns("run_id", "started_at", "finished_at", "ranges_processed", "rows_loaded", "error_count", "error_summary").
		Values(
			run.RunID,
			run.StartedAt,
			run.FinishedAt,
			run.RangesProcessed,
			run.RowsLoaded,
			run.ErrorCount,
			run.ErrorSummary,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução %s: %w", run.RunID, err)
	}

	return nil
}

func (r *syncRunRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncRun, error) {
	query, args, err := squirrel.
		Select("run_id", "started_at", "finished_at", "ranges_processed", "rows_loaded", "error_count", "error_summary").
		From(syncRunsTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar execuções: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run := &domain.SyncRun{}
		err := rows.Scan(
			&run.RunID,
			&run.StartedAt,
			&run.FinishedAt,
			&run.RangesProcessed,
			&run.RowsLoaded,
			&run.ErrorCount,
			&run.ErrorSummary,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
