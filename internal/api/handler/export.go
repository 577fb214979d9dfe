package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/empresas-dashboard/internal/scheduler"
	"github.com/vfg2006/empresas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/empresas-dashboard/pkg/log"
	"github.com/vfg2006/empresas-dashboard/pkg/middleware"
)

// ExportScheduler é o agendador da exportação estática visto pelos handlers
type ExportScheduler interface {
	TriggerManualExport() error
	GetStatus() map[string]any
}

// RunExport dispara manualmente a exportação de gráficos em segundo plano
func RunExport(exports ExportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		operator := ""
		if claims, ok := middleware.OperatorFromContext(r.Context()); ok {
			operator = claims.Username
		}

		if err := exports.TriggerManualExport(); err != nil {
			if errors.Is(err, scheduler.ErrExportRunning) {
				apiErrors.WriteError(w, apiErrors.ErrExportRunning, "Exportação de gráficos já em andamento", nil)
				return
			}
			logger.WithError(err).Error("Erro ao disparar exportação de gráficos")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao disparar exportação de gráficos", nil)
			return
		}

		logger.WithField("operator_user", operator).Info("Exportação de gráficos disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":      "Exportação iniciada com sucesso",
			"requested_by": operator,
		})
	}
}

// GetExportStatus retorna o status do agendador e o último relatório de exportação
func GetExportStatus(exports ExportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, exports.GetStatus())
	}
}
