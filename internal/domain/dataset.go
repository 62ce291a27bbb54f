package domain

import "time"

type DatasetScope string

const (
	// DatasetScopeClient carrega apenas pedidos e clientes
	DatasetScopeClient DatasetScope = "client"
	// DatasetScopeAdmin carrega também campanhas e fila de envio
	DatasetScopeAdmin DatasetScope = "admin"
)

func (s DatasetScope) IsValid() bool {
	return s == DatasetScopeClient || s == DatasetScopeAdmin
}

// Dataset é o snapshot imutável que uma sessão consulta. Nenhuma etapa do pipeline
// altera os slices depois do carregamento.
type Dataset struct {
	SnapshotID string               `json:"snapshot_id"`
	Scope      DatasetScope         `json:"scope"`
	FetchedAt  time.Time            `json:"fetched_at"`
	Orders     []Order              `json:"orders"`
	Customers  []Customer           `json:"customers"`
	Campaigns  []Campaign           `json:"campaigns,omitempty"`
	Queue      []CampaignQueueEntry `json:"campaign_queue,omitempty"`
}

// RowLimits define quantas linhas de cada tabela entram no snapshot
type RowLimits struct {
	Orders    uint64
	Customers uint64
	Campaigns uint64
	Queue     uint64
}

// SnapshotInfo resume um snapshot recarregado
type SnapshotInfo struct {
	SnapshotID string       `json:"snapshot_id"`
	Scope      DatasetScope `json:"scope"`
	FetchedAt  time.Time    `json:"fetched_at"`
	Orders     int          `json:"orders"`
	Customers  int          `json:"customers"`
	Campaigns  int          `json:"campaigns"`
	Queue      int          `json:"campaign_queue"`
}

func (d *Dataset) Info() SnapshotInfo {
	return SnapshotInfo{
		SnapshotID: d.SnapshotID,
		Scope:      d.Scope,
		FetchedAt:  d.FetchedAt,
		Orders:     len(d.Orders),
		Customers:  len(d.Customers),
		Campaigns:  len(d.Campaigns),
		Queue:      len(d.Queue),
	}
}
