package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/scheduler"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/apiErrors"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReports = "reports"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ReportGenerationService *scheduler.ReportGenerationService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReports:
			if services.ReportGenerationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de geração de relatórios não disponível", nil)
				return
			}
			if !services.ReportGenerationService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerConflict, "Geração de relatórios já em andamento", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reports", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}
		if services.ReportGenerationService != nil {
			status["reports"] = services.ReportGenerationService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
