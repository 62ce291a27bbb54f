package handler

import (
	"net/http"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/simulating"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
)

// simulationBody distingue custo ausente de custo zero
type simulationBody struct {
	Target         string   `json:"target" validate:"required,oneof=inactive active"`
	CostPerMessage *float64 `json:"cost_per_message" validate:"required,gte=0"`
}

// RunSimulation calcula o retorno estimado de uma campanha sobre o snapshot admin.
// Falhas de cálculo voltam com status 200 e o painel preenchido com "Erro".
func RunSimulation(dashboards dashboarding.Dashboarder, simulator simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var body simulationBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(body); err != nil {
			details := validationDetails(err)
			if _, badTarget := details["target"]; badTarget {
				apiErrors.WriteError(w, apiErrors.ErrUnknownSegment, "Público-alvo desconhecido", details)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Custo por mensagem inválido", details)
			return
		}

		request := domain.SimulationRequest{Target: body.Target, CostPerMessage: *body.CostPerMessage}

		dataset, err := dashboards.Dataset(r.Context(), claims.SessionID(), domain.DatasetScopeAdmin)
		if err != nil {
			handleDashboardError(w, r, err, "simulation")
			return
		}

		writeJSON(w, r, http.StatusOK, simulator.Run(r.Context(), request, dataset))
	}
}
