package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// insertBatchSize limita o número de linhas por INSERT
const insertBatchSize = 500

// AdMetricsRepository é o colaborador de armazenamento da tabela analítica
// de métricas de anúncios, particionada logicamente pela coluna date.
type AdMetricsRepository interface {
	TableExists(ctx context.Context) (bool, error)
	CreateTable(ctx context.Context) error
	QueryDates(ctx context.Context, since time.Time) ([]time.Time, error)
	ReplaceRows(ctx context.Context, dateRange domain.DateRange, rows []*domain.AdMetricRow) (int64, error)
	Stats(ctx context.Context) (*domain.CoverageStats, error)
}

type adMetricsRepository struct {
	conn      postgres.Conn
	tableName string
}

func NewAdMetricsRepository(conn postgres.Conn, tableName string) AdMetricsRepository {
	return &adMetricsRepository{
		conn:      conn,
		tableName: tableName,
	}
}

func (r *adMetricsRepository) TableExists(ctx context.Context) (bool, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr(
			"EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)",
			r.tableName,
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var exists bool
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar existência da tabela %s: %w", r.tableName, err)
	}

	return exists, nil
}

func (r *adMetricsRepository) CreateTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			account_name        TEXT NOT NULL DEFAULT '',
			campaign            TEXT NOT NULL DEFAULT '',
			adset_name          TEXT NOT NULL DEFAULT '',
			ad_name             TEXT NOT NULL DEFAULT '',
			date                DATE NOT NULL,
			impressions         BIGINT NOT NULL DEFAULT 0,
			clicks              BIGINT NOT NULL DEFAULT 0,
			spend               DOUBLE PRECISION NOT NULL DEFAULT 0,
			cpc                 DOUBLE PRECISION NOT NULL DEFAULT 0,
			cpm                 DOUBLE PRECISION NOT NULL DEFAULT 0,
			ctr                 DOUBLE PRECISION NOT NULL DEFAULT 0,
			frequency           DOUBLE PRECISION NOT NULL DEFAULT 0,
			unique_ctr          DOUBLE PRECISION NOT NULL DEFAULT 0,
			conversions         BIGINT NOT NULL DEFAULT 0,
			cost_per_conversion DOUBLE PRECISION NOT NULL DEFAULT 0,
			unique_conversions  BIGINT NOT NULL DEFAULT 0
		)`, pq.QuoteIdentifier(r.tableName))

	if _, err := r.conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.tableName, err)
	}

	// Índice na chave de particionamento: toda escrita e leitura filtra por data
	indexDDL := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s ON %s (date)",
		pq.QuoteIdentifier(r.tableName+"_date_idx"),
		pq.QuoteIdentifier(r.tableName),
	)
	if _, err := r.conn.Exec(ctx, indexDDL); err != nil {
		return fmt.Errorf("erro ao criar índice de data em %s: %w", r.tableName, err)
	}

	return nil
}

func (r *adMetricsRepository) QueryDates(ctx context.Context, since time.Time) ([]time.Time, error) {
	query, args, err := squirrel.
		Select("DISTINCT date").
		From(r.tableName).
		Where(squirrel.GtOrEq{"date": since.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar datas persistidas: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("erro ao escanear data: %w", err)
		}
		dates = append(dates, utils.Day(date))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dates, nil
}

// ReplaceRows apaga as linhas existentes do intervalo e insere as recém
// buscadas em uma única transação, para que uma falha no meio não deixe o
// intervalo apagado sem os dados novos.
func (r *adMetricsRepository) ReplaceRows(
	ctx context.Context,
	dateRange domain.DateRange,
	rows []*domain.AdMetricRow,
) (int64, error) {
	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete(r.tableName).
			Where(squirrel.GtOrEq{"date": dateRange.Start.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"date": dateRange.End.Format(time.DateOnly)}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de remoção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover linhas do intervalo %s: %w", dateRange, err)
		}

		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}

			if err := r.insertBatch(ctx, tx, rows[start:end]); err != nil {
				return err
			}

			inserted += int64(end - start)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *adMetricsRepository) insertBatch(ctx context.Context, tx *sql.Tx, rows []*domain.AdMetricRow) error {
	builder := squirrel.StatementBuilder.
		Insert(r.tableName).
		Columns(
			"account_name", "campaign", "adset_name", "ad_name", "date",
			"impressions", "clicks", "spend", "cpc", "cpm", "ctr",
			"frequency", "unique_ctr", "conversions", "cost_per_conversion", "unique_conversions",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(
			row.AccountName,
			row.Campaign,
			row.AdsetName,
			row.AdName,
			row.Date.Format(time.DateOnly),
			row.Impressions,
			row.Clicks,
			row.Spend,
			row.CPC,
			row.CPM,
			row.CTR,
			row.Frequency,
			row.UniqueCTR,
			row.Conversions,
			row.CostPerConversion,
			row.UniqueConversions,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir linhas: %w", err)
	}

	return nil
}

func (r *adMetricsRepository) Stats(ctx context.Context) (*domain.CoverageStats, error) {
	query, args, err := squirrel.
		Select(
			"MIN(date)",
			"MAX(date)",
			"COUNT(DISTINCT date)",
			"COUNT(*)",
			"COALESCE(SUM(spend), 0)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
		).
		From(r.tableName).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stats := &domain.CoverageStats{}
	var earliest, latest sql.NullTime

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&earliest,
		&latest,
		&stats.TotalDays,
		&stats.TotalRows,
		&stats.TotalSpend,
		&stats.TotalImpressions,
		&stats.TotalClicks,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar totais da tabela %s: %w", r.tableName, err)
	}

	if earliest.Valid {
		d := utils.Day(earliest.Time)
		stats.EarliestDate = &d
	}
	if latest.Valid {
		d := utils.Day(latest.Time)
		stats.LatestDate = &d
	}

	return stats, nil
}
