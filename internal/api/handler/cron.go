package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/internal/scheduler"
	"github.com/adscope/keyword-guardian-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDetection = "detection"
	CronJobTypeSweep     = "expiration-sweep"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os agendadores acionáveis manualmente
type CronJobServices struct {
	DetectionSyncService   *scheduler.DetectionSyncService
	ExpirationSweepService *scheduler.ExpirationSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDetection:
			if services.DetectionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de detecção não disponível", nil)
				return
			}
			services.DetectionSyncService.TriggerManualSync()

		case CronJobTypeSweep:
			if services.ExpirationSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura não disponível", nil)
				return
			}
			services.ExpirationSweepService.TriggerManualSweep()

		case CronJobTypeAll:
			if services.DetectionSyncService != nil {
				services.DetectionSyncService.TriggerManualSync()
			}
			if services.ExpirationSweepService != nil {
				services.ExpirationSweepService.TriggerManualSweep()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: detection, expiration-sweep, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.DetectionSyncService != nil {
			status["detection"] = services.DetectionSyncService.GetSyncStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
