package domain

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	OrderStatusConcluded = "CONCLUDED"

	OrderTypeDelivery = "DELIVERY"
	OrderTypeIndoor   = "INDOOR"
	OrderTypeTakeout  = "TAKEOUT"

	// DefaultSalesChannel substitui salesChannel nulo em filtros, agrupamentos e exportação
	DefaultSalesChannel = "PDV"
)

// FidelizeLaunchDate marca o início das campanhas FIDELIZE. Pedidos anteriores não
// entram no comparativo campanha x orgânico.
var FidelizeLaunchDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type Order struct {
	ID                  string      `json:"id"`
	CreatedAt           time.Time   `json:"created_at"`
	TotalAmount         float64     `json:"total_amount"`
	Status              string      `json:"status"`
	SalesChannel        null.String `json:"sales_channel"`
	OrderType           string      `json:"order_type"`
	GeneratedByCampaign bool        `json:"generated_by_campaign"`
	CustomerID          null.String `json:"customer"`
	CompanyID           null.String `json:"company_id"`
}

// Channel retorna o canal de venda com o padrão aplicado
func (o Order) Channel() string {
	if !o.SalesChannel.Valid || o.SalesChannel.String == "" {
		return DefaultSalesChannel
	}
	return o.SalesChannel.String
}

func (o Order) IsConcluded() bool {
	return o.Status == OrderStatusConcluded
}
