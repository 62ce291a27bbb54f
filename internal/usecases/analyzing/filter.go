// Package analyzing implementa o pipeline de métricas dos dashboards: filtro por data e
// categoria, recorte por status e agregações. Todas as funções são puras e nunca
// alteram os slices recebidos.
package analyzing

import (
	"errors"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

// ErrNotReady indica que o intervalo de datas ainda não foi informado
var ErrNotReady = errors.New("intervalo de datas não informado")

// FilterOrders mantém os pedidos do intervalo, do canal e da loja (companyId) selecionados
func FilterOrders(orders []domain.Order, filters domain.DashboardFilters) ([]domain.Order, error) {
	if !filters.Range.IsSet() {
		return nil, ErrNotReady
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if !filters.Range.Contains(order.CreatedAt) {
			continue
		}
		if !filters.AllowsChannel(order.Channel()) {
			continue
		}
		if !filters.AllowsStore(order.CompanyID.String, order.CompanyID.Valid) {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered, nil
}

// FilterQueue mantém as mensagens do intervalo e da loja selecionada
func FilterQueue(queue []domain.CampaignQueueEntry, filters domain.DashboardFilters) ([]domain.CampaignQueueEntry, error) {
	if !filters.Range.IsSet() {
		return nil, ErrNotReady
	}

	filtered := make([]domain.CampaignQueueEntry, 0, len(queue))
	for _, entry := range queue {
		if !filters.Range.Contains(entry.CreatedAt) {
			continue
		}
		if !filters.AllowsStore(entry.StoreID.String, entry.StoreID.Valid) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered, nil
}

// FilterCampaigns mantém as campanhas criadas no intervalo, na loja selecionada
func FilterCampaigns(campaigns []domain.Campaign, filters domain.DashboardFilters) ([]domain.Campaign, error) {
	if !filters.Range.IsSet() {
		return nil, ErrNotReady
	}

	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if !filters.Range.Contains(campaign.CreatedAt) {
			continue
		}
		if !filters.AllowsStore(campaign.StoreID.String, campaign.StoreID.Valid) {
			continue
		}
		filtered = append(filtered, campaign)
	}

	return filtered, nil
}

// FilterCustomers mantém os clientes cadastrados no intervalo. Clientes não têm loja,
// então o filtro de loja não se aplica.
func FilterCustomers(customers []domain.Customer, dateRange domain.DateRange) ([]domain.Customer, error) {
	if !dateRange.IsSet() {
		return nil, ErrNotReady
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if dateRange.Contains(customer.CreatedAt) {
			filtered = append(filtered, customer)
		}
	}

	return filtered, nil
}

// Concluded recorta os pedidos com status CONCLUDED
func Concluded(orders []domain.Order) []domain.Order {
	concluded := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.IsConcluded() {
			concluded = append(concluded, order)
		}
	}
	return concluded
}

// Reads recorta as mensagens lidas (status 4)
func Reads(queue []domain.CampaignQueueEntry) []domain.CampaignQueueEntry {
	reads := make([]domain.CampaignQueueEntry, 0, len(queue))
	for _, entry := range queue {
		if entry.IsRead() {
			reads = append(reads, entry)
		}
	}
	return reads
}

// CountSent conta as mensagens enviadas (status >= 2)
func CountSent(queue []domain.CampaignQueueEntry) int {
	sent := 0
	for _, entry := range queue {
		if entry.IsSent() {
			sent++
		}
	}
	return sent
}
