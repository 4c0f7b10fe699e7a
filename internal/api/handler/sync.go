package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-warehouse-sync/internal/scheduler"
	syncer "github.com/vfg2006/ads-warehouse-sync/internal/sync"
	"github.com/vfg2006/ads-warehouse-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSyncStatus devolve o relatório de cobertura da tabela analítica e o
// estado do agendador
func GetSyncStatus(reporter *syncer.StatusReporter, dailySync *scheduler.DailySyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := reporter.Report(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar relatório de status da sincronização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o status da sincronização", nil)
			return
		}

		response := map[string]any{
			"coverage":  report,
			"scheduler": dailySync.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao serializar o relatório de status")
		}
	})
}

// TriggerSync dispara manualmente uma sincronização diária
func TriggerSync(dailySync *scheduler.DailySyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		if !dailySync.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "sincronização diária disparada",
		})
	})
}
