package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-warehouse-sync/infrastructure/repository"
	"github.com/vfg2006/ads-warehouse-sync/internal/api"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/internal/scheduler"
	syncer "github.com/vfg2006/ads-warehouse-sync/internal/sync"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// app agrupa os colaboradores construídos para uma execução
type app struct {
	conn         *postgres.Connection
	orchestrator *syncer.Orchestrator
	reporter     *syncer.StatusReporter
	dailySync    *scheduler.DailySyncService
	syncRunRepo  repository.SyncRunRepository
	cfg          *config.Config
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	adMetricsRepo := repository.NewAdMetricsRepository(conn, cfg.AdsSync.TableName)
	syncRunRepo := repository.NewSyncRunRepository(conn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	orchestrator := syncer.NewOrchestrator(cfg, metaIntegrator, adMetricsRepo, syncRunRepo)
	reporter := syncer.NewStatusReporter(cfg, adMetricsRepo)
	dailySync := scheduler.NewDailySyncService(orchestrator, cfg)

	return &app{
		conn:         conn,
		orchestrator: orchestrator,
		reporter:     reporter,
		dailySync:    dailySync,
		syncRunRepo:  syncRunRepo,
		cfg:          cfg,
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "ads-warehouse-sync",
		Short:         "Sincronização incremental de métricas de anúncios do Meta para o Postgres",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDailyCmd(cfg),
		newBackfillCmd(cfg),
		newCustomCmd(cfg),
		newStatusCmd(cfg),
		newServeCmd(cfg),
	)

	return root
}

func newDailyCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Sincroniza a janela diária padrão (ontem menos lookback até ontem)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			end := utils.Yesterday(time.Now())
			start := end.AddDate(0, 0, -cfg.AdsSync.LookbackDays)

			return runSync(ctx, a, domain.NewDateRange(start, end), syncer.SyncOptions{
				RewriteLastNDays: cfg.AdsSync.RewriteLastNDays,
			})
		},
	}
}

func newBackfillCmd(cfg *config.Config) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Carrega o histórico dos últimos N dias (sem reescrita)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			end := utils.Yesterday(time.Now())
			start := end.AddDate(0, 0, -days)

			// Backfill não reescreve dias já cobertos
			return runSync(ctx, a, domain.NewDateRange(start, end), syncer.SyncOptions{})
		},
	}

	cmd.Flags().IntVar(&days, "days", 365, "Número de dias do histórico a carregar")

	return cmd
}

func newCustomCmd(cfg *config.Config) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "custom <data-inicial> <data-final>",
		Short: "Sincroniza um intervalo arbitrário de datas (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			start, err := utils.ParseDate(args[0])
			if err != nil {
				return errors.Wrapf(err, "data inicial inválida: %s", args[0])
			}

			end, err := utils.ParseDate(args[1])
			if err != nil {
				return errors.Wrapf(err, "data final inválida: %s", args[1])
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return runSync(ctx, a, domain.NewDateRange(*start, *end), syncer.SyncOptions{
				Force: force,
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reescreve todas as datas do intervalo, mesmo as já cobertas")

	return cmd
}

func runSync(ctx context.Context, a *app, requested domain.DateRange, opts syncer.SyncOptions) error {
	result, err := a.orchestrator.Run(ctx, requested, opts)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":           result.RunID,
		"ranges_processed": result.RangesProcessed,
		"rows_loaded":      result.RowsLoaded,
	}).Info("Execução finalizada")

	if result.HasErrors() {
		for _, chunkErr := range result.Errors {
			logrus.WithError(chunkErr).Error("Falha por chunk")
		}
		return errors.Errorf("sincronização concluída com %d falha(s) por chunk", len(result.Errors))
	}

	return nil
}

func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Exibe a cobertura atual e os totais da tabela analítica",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.reporter.Report(ctx)
			if err != nil {
				return err
			}

			printStatusReport(report, cfg)

			// As últimas execuções são informativas: a ausência da tabela de
			// auditoria não deve derrubar o comando
			runs, err := a.syncRunRepo.ListRecent(ctx, 5)
			if err != nil {
				logrus.WithError(err).Debug("Não foi possível listar as execuções recentes")
				return nil
			}
			printRecentRuns(runs)

			return nil
		},
	}
}

func printRecentRuns(runs []*domain.SyncRun) {
	if len(runs) == 0 {
		return
	}

	fmt.Println("\nÚltimas execuções:")
	for _, run := range runs {
		fmt.Printf("  - %s  %s  chunks=%d linhas=%d erros=%d\n",
			run.RunID,
			run.StartedAt.Format(time.RFC3339),
			run.RangesProcessed,
			run.RowsLoaded,
			run.ErrorCount,
		)
	}
}

func printStatusReport(report *domain.StatusReport, cfg *config.Config) {
	fmt.Println("Relatório de cobertura da tabela analítica")
	fmt.Println("==========================================")

	if !report.TableExists {
		fmt.Printf("Tabela %s ainda não existe (cold start). Rode 'daily' ou 'backfill' para criar.\n", cfg.AdsSync.TableName)
		return
	}

	stats := report.Stats
	if stats.EarliestDate != nil && stats.LatestDate != nil {
		fmt.Printf("Período:            %s a %s\n",
			stats.EarliestDate.Format(time.DateOnly),
			stats.LatestDate.Format(time.DateOnly),
		)
	}
	fmt.Printf("Dias distintos:     %d\n", stats.TotalDays)
	fmt.Printf("Total de linhas:    %d\n", stats.TotalRows)
	fmt.Printf("Gasto total:        %.2f\n", stats.TotalSpend)
	fmt.Printf("Impressões totais:  %d\n", stats.TotalImpressions)
	fmt.Printf("Cliques totais:     %d\n", stats.TotalClicks)

	if len(report.MissingRanges) == 0 {
		fmt.Printf("\nSem datas ausentes nos últimos %d dias\n", cfg.AdsSync.MonitoringWindowDays)
		return
	}

	fmt.Printf("\nDatas ausentes nos últimos %d dias:\n", cfg.AdsSync.MonitoringWindowDays)
	for _, gap := range report.MissingRanges {
		fmt.Printf("  - %s\n", gap)
	}
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia o agendador da sincronização diária e o servidor de operação",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.dailySync.Start(ctx); err != nil {
				return errors.Wrap(err, "erro ao iniciar o agendador de sincronização diária")
			}
			logrus.Info("Agendador de sincronização diária iniciado com sucesso")

			server, err := api.New(cfg, a.reporter, a.dailySync)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}
