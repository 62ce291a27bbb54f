package analyzing

import (
	"fmt"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

const (
	// Receita mínima da janela anterior para que a queda seja avaliada
	anomalyRevenueFloor = 200.0
	// Variação relativa abaixo da qual a queda é anômala
	anomalyDropThreshold = -0.30
	anomalyWindowDays    = 7

	lowReadRateThreshold       = 0.30
	lowReadRateMinSent         = 100
	lowConversionRateThreshold = 0.10
	lowConversionRateMinReads  = 50
)

// RevenueWindowsEndingAt soma a receita dos 7 dias terminando em end ([end-6, end]) e dos
// 7 dias anteriores ([end-13, end-7])
func RevenueWindowsEndingAt(concluded []domain.Order, end time.Time) domain.RevenueWindows {
	endDate := domain.CalendarDate(end)
	recent := domain.NewDateRange(endDate.AddDate(0, 0, -(anomalyWindowDays-1)), endDate)
	previous := domain.NewDateRange(
		endDate.AddDate(0, 0, -(2*anomalyWindowDays-1)),
		endDate.AddDate(0, 0, -anomalyWindowDays),
	)

	var windows domain.RevenueWindows
	for _, order := range concluded {
		switch {
		case recent.Contains(order.CreatedAt):
			windows.Recent += order.TotalAmount
		case previous.Contains(order.CreatedAt):
			windows.Previous += order.TotalAmount
		}
	}

	return windows
}

// EvaluateAnomaly aplica a regra de queda: janela anterior acima do piso e variação
// relativa abaixo de -30%
func EvaluateAnomaly(windows domain.RevenueWindows) (*domain.Alert, bool) {
	if windows.Previous <= anomalyRevenueFloor {
		return nil, false
	}

	change := (windows.Recent - windows.Previous) / windows.Previous
	if change >= anomalyDropThreshold {
		return nil, false
	}

	return &domain.Alert{
		Level: domain.AlertLevelCritical,
		Title: fmt.Sprintf("Alerta de Variação Anômala (Queda de %s)", utils.FormatPercent(-change, 0)),
		Message: fmt.Sprintf(
			"A receita dos últimos 7 dias (%s) foi significativamente menor que a dos 7 dias anteriores (%s).",
			utils.FormatBRL(windows.Recent),
			utils.FormatBRL(windows.Previous),
		),
	}, true
}

// DetectAnomaly produz no máximo um alerta para o intervalo terminando em dateRange.End
func DetectAnomaly(concluded []domain.Order, dateRange domain.DateRange) []domain.Alert {
	if !dateRange.IsSet() || len(concluded) == 0 {
		return []domain.Alert{}
	}

	alert, ok := EvaluateAnomaly(RevenueWindowsEndingAt(concluded, dateRange.End))
	if !ok {
		return []domain.Alert{}
	}
	return []domain.Alert{*alert}
}

// Suggestions avalia as regras de leitura e conversão na ordem; sem nenhuma disparada
// devolve a mensagem de taxas saudáveis
func Suggestions(funnel domain.Funnel) []domain.Alert {
	rates := ComputeRates(funnel)
	suggestions := make([]domain.Alert, 0, 2)

	if rates.ReadRate < lowReadRateThreshold && funnel.Sent > lowReadRateMinSent {
		suggestions = append(suggestions, domain.Alert{
			Level: domain.AlertLevelWarning,
			Title: "Alerta: Taxa de Leitura Baixa",
			Message: fmt.Sprintf(
				"Apenas %s dos clientes leram as mensagens neste período/loja. Otimizar horário.",
				utils.FormatPercent(rates.ReadRate, 1),
			),
		})
	}

	if rates.ConversionRate < lowConversionRateThreshold && funnel.Read > lowConversionRateMinReads {
		suggestions = append(suggestions, domain.Alert{
			Level: domain.AlertLevelCritical,
			Title: "Alerta: Taxa de Conversão Baixa",
			Message: fmt.Sprintf(
				"Apenas %s dos leitores converteram. Melhorar a oferta.",
				utils.FormatPercent(rates.ConversionRate, 1),
			),
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, domain.Alert{
			Level:   domain.AlertLevelSuccess,
			Title:   "Tudo Certo!",
			Message: "As taxas de leitura e conversão estão saudáveis para este filtro.",
		})
	}

	return suggestions
}
