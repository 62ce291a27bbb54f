package domain

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Status da fila de envio. Enviado significa status >= 2, lido significa status == 4.
const (
	QueueStatusSent = 2
	QueueStatusRead = 4

	// UnknownStore é usado nas opções de filtro quando a campanha não tem loja
	UnknownStore = "Loja Desconhecida"
)

type Campaign struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	StoreID   null.String `json:"store_id"`
	CreatedAt time.Time   `json:"created_at"`
}

type CampaignQueueEntry struct {
	ID         string      `json:"id"`
	CampaignID string      `json:"campaign_id"`
	CustomerID null.String `json:"customer_id"`
	StoreID    null.String `json:"store_id"`
	CreatedAt  time.Time   `json:"created_at"`
	SendAt     null.Time   `json:"send_at"`
	Status     int         `json:"status"`
}

func (e CampaignQueueEntry) IsSent() bool {
	return e.Status >= QueueStatusSent
}

func (e CampaignQueueEntry) IsRead() bool {
	return e.Status == QueueStatusRead
}
