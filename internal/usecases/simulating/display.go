package simulating

import (
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

const errorDisplay = "Erro"

// FailedDisplay é exibido quando a simulação falha
var FailedDisplay = domain.SimulationDisplay{
	TotalCost:               errorDisplay,
	TotalRevenue:            errorDisplay,
	TotalProfit:             errorDisplay,
	ROI:                     errorDisplay,
	AudienceCount:           errorDisplay,
	PredictedConversionRate: errorDisplay,
	AverageTicket:           errorDisplay,
}

// Display formata o resultado para o painel: moeda em R$ 1.160,00, ROI em 5,700.0%,
// audiência em 1.234 e taxa em 11.6%
func Display(result domain.SimulationResult) domain.SimulationDisplay {
	if result.AudienceCount == 0 {
		return domain.SimulationDisplay{
			TotalCost:               utils.FormatBRL(0),
			TotalRevenue:            utils.FormatBRL(0),
			TotalProfit:             utils.FormatBRL(0),
			ROI:                     "0%",
			AudienceCount:           "0",
			PredictedConversionRate: "0%",
			AverageTicket:           utils.FormatBRL(0),
		}
	}

	return domain.SimulationDisplay{
		TotalCost:               utils.FormatBRL(result.TotalCost),
		TotalRevenue:            utils.FormatBRL(result.TotalRevenue),
		TotalProfit:             utils.FormatBRL(result.TotalProfit),
		ROI:                     utils.FormatNumber(result.ROI, 1, ",", ".") + "%",
		AudienceCount:           utils.FormatCount(result.AudienceCount),
		PredictedConversionRate: utils.FormatNumber(result.PredictedConversionRate, 1, "", ".") + "%",
		AverageTicket:           utils.FormatBRL(result.AverageTicket),
	}
}
