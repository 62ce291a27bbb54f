package domain

type SimulationRequest struct {
	Target         string  `json:"target" validate:"required,oneof=inactive active"`
	CostPerMessage float64 `json:"cost_per_message" validate:"gte=0"`
}

type SimulationResult struct {
	Target                  string  `json:"target"`
	AudienceCount           int     `json:"audience_count"`
	PredictedConversionRate float64 `json:"predicted_conversion_rate"`
	AverageTicket           float64 `json:"avg_ticket"`
	TotalCost               float64 `json:"total_cost"`
	TotalConversions        float64 `json:"total_conversions"`
	TotalRevenue            float64 `json:"total_revenue"`
	TotalProfit             float64 `json:"total_profit"`
	ROI                     float64 `json:"roi"`
}

// SimulationDisplay são os sete campos exibidos no painel de simulação
type SimulationDisplay struct {
	TotalCost               string `json:"total_cost"`
	TotalRevenue            string `json:"total_revenue"`
	TotalProfit             string `json:"total_profit"`
	ROI                     string `json:"roi"`
	AudienceCount           string `json:"audience_count"`
	PredictedConversionRate string `json:"predicted_conversion_rate"`
	AverageTicket           string `json:"avg_ticket"`
}

// SimulationOutcome é o que o painel recebe. Em falha Result é nulo e todos os campos
// exibidos valem "Erro".
type SimulationOutcome struct {
	Failed  bool              `json:"failed"`
	Result  *SimulationResult `json:"result,omitempty"`
	Display SimulationDisplay `json:"display"`
}
