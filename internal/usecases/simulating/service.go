package simulating

import (
	"context"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

type Simulator interface {
	Run(ctx context.Context, request domain.SimulationRequest, dataset *domain.Dataset) domain.SimulationOutcome
}

type Service struct{}

func NewService() Simulator {
	return &Service{}
}

// Run nunca falha para quem chama: erros de cálculo são registrados em log e viram o
// painel de erro
func (s *Service) Run(ctx context.Context, request domain.SimulationRequest, dataset *domain.Dataset) domain.SimulationOutcome {
	logger := log.ForContext(ctx)

	result, err := Simulate(request.Target, request.CostPerMessage, dataset)
	if err != nil {
		logger.WithError(err).WithField("simulation_target", request.Target).
			Error("simulation: erro na simulação de campanha")
		return domain.SimulationOutcome{Failed: true, Display: FailedDisplay}
	}

	logger.WithFields(log.Fields{
		"simulation_target":   result.Target,
		"simulation_audience": result.AudienceCount,
	}).Info("simulation: simulação calculada")

	return domain.SimulationOutcome{Result: &result, Display: Display(result)}
}
