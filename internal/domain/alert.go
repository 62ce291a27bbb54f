package domain

import "time"

// StoreAlert é o alerta de queda de receita detectado para uma loja pelo job diário
type StoreAlert struct {
	StoreID       string         `json:"store_id"`
	ReferenceDate time.Time      `json:"reference_date"`
	DetectedAt    time.Time      `json:"detected_at"`
	Windows       RevenueWindows `json:"windows"`
	Alert         Alert          `json:"alert"`
}
