package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

const (
	CronJobTypeAnomalyWatch = "anomaly-watch"
	CronJobTypeAll          = "all"
)

// CronJob é implementado pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices associa o tipo usado na URL ao job
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for jobType := range s {
		types = append(types, jobType)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch job, ok := services[cronType]; {
		case cronType == CronJobTypeAll:
			for _, job := range services {
				job.TriggerManualSync(r.Context())
			}
		case ok && job != nil:
			job.TriggerManualSync(r.Context())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		logger.WithField("job_type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job != nil {
				status[jobType] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
