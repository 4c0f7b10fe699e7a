package handler

import (
	"net/http"

	"github.com/vfg2006/ads-warehouse-sync/internal/api/handler/router"
	"github.com/vfg2006/ads-warehouse-sync/internal/scheduler"
	syncer "github.com/vfg2006/ads-warehouse-sync/internal/sync"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(reporter *syncer.StatusReporter, dailySync *scheduler.DailySyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(reporter, dailySync),
		},
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: TriggerSync(dailySync),
		},
	}
}
