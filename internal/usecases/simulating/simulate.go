// Package simulating estima o retorno de uma campanha de mensagens para um segmento de
// clientes a partir de taxas de conversão fixas por segmento.
package simulating

import (
	"math"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

const (
	SegmentInactive = "inactive"
	SegmentActive   = "active"

	// DefaultAverageTicket é usado quando não há nenhum pedido concluído
	DefaultAverageTicket = 65.0
)

type segmentProfile struct {
	customerStatus int
	conversionRate float64
}

// Taxas de conversão previstas por segmento, em porcentagem. A tabela é fixa.
var segmentProfiles = map[string]segmentProfile{
	SegmentInactive: {customerStatus: domain.CustomerStatusInactive, conversionRate: 11.6},
	SegmentActive:   {customerStatus: domain.CustomerStatusActive, conversionRate: 3.0},
}

// PredictedConversionRate devolve a taxa fixa do segmento
func PredictedConversionRate(segment string) (float64, bool) {
	profile, ok := segmentProfiles[segment]
	return profile.conversionRate, ok
}

// Simulate calcula audiência, ticket médio e resultado financeiro da campanha
func Simulate(segment string, costPerMessage float64, dataset *domain.Dataset) (domain.SimulationResult, error) {
	profile, ok := segmentProfiles[segment]
	if !ok {
		return domain.SimulationResult{}, newComputationError(ErrUnknownSegment, segment)
	}

	if math.IsNaN(costPerMessage) || math.IsInf(costPerMessage, 0) || costPerMessage < 0 {
		return domain.SimulationResult{}, newComputationError(ErrInvalidCost, "")
	}

	if dataset == nil || dataset.Customers == nil || dataset.Orders == nil {
		return domain.SimulationResult{}, newComputationError(ErrMissingData, "")
	}

	audience := make(map[string]struct{})
	for _, customer := range dataset.Customers {
		if customer.Status == profile.customerStatus {
			audience[customer.ID] = struct{}{}
		}
	}

	result := domain.SimulationResult{Target: segment}
	if len(audience) == 0 {
		return result, nil
	}

	result.AudienceCount = len(audience)
	result.PredictedConversionRate = profile.conversionRate
	result.AverageTicket = averageTicket(dataset.Orders, audience)
	result.TotalCost = float64(result.AudienceCount) * costPerMessage
	result.TotalConversions = float64(result.AudienceCount) * profile.conversionRate / 100
	result.TotalRevenue = result.TotalConversions * result.AverageTicket
	result.TotalProfit = result.TotalRevenue - result.TotalCost
	if result.TotalCost > 0 {
		result.ROI = utils.RoundWithTwoDecimalPlace(result.TotalProfit / result.TotalCost * 100)
	}

	return result, nil
}

// averageTicket usa os pedidos concluídos da audiência; sem eles, todos os pedidos
// concluídos; sem nenhum, o ticket padrão
func averageTicket(orders []domain.Order, audience map[string]struct{}) float64 {
	audienceSum, audienceCount := 0.0, 0
	allSum, allCount := 0.0, 0

	for _, order := range orders {
		if !order.IsConcluded() {
			continue
		}
		allSum += order.TotalAmount
		allCount++

		if _, ok := audience[order.CustomerID.String]; ok && order.CustomerID.Valid {
			audienceSum += order.TotalAmount
			audienceCount++
		}
	}

	switch {
	case audienceCount > 0:
		return audienceSum / float64(audienceCount)
	case allCount > 0:
		return allSum / float64(allCount)
	default:
		return DefaultAverageTicket
	}
}
