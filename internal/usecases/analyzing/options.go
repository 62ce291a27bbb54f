package analyzing

import (
	"sort"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

// ClientFilterOptions devolve o intervalo de datas dos pedidos e os canais disponíveis
func ClientFilterOptions(dataset *domain.Dataset) domain.FilterOptions {
	options := orderDateBounds(dataset.Orders)

	channels := make(map[string]struct{})
	for _, order := range dataset.Orders {
		channels[order.Channel()] = struct{}{}
	}
	options.Channels = sortedKeys(channels)

	return options
}

// AdminFilterOptions devolve o intervalo de datas dos pedidos e as lojas das campanhas
func AdminFilterOptions(dataset *domain.Dataset) domain.FilterOptions {
	options := orderDateBounds(dataset.Orders)

	stores := make(map[string]struct{})
	for _, campaign := range dataset.Campaigns {
		store := domain.UnknownStore
		if campaign.StoreID.Valid && campaign.StoreID.String != "" {
			store = campaign.StoreID.String
		}
		stores[store] = struct{}{}
	}
	options.Stores = sortedKeys(stores)

	return options
}

func orderDateBounds(orders []domain.Order) domain.FilterOptions {
	var options domain.FilterOptions
	for i, order := range orders {
		date := domain.CalendarDate(order.CreatedAt)
		if i == 0 || date.Before(options.MinDate) {
			options.MinDate = date
		}
		if i == 0 || date.After(options.MaxDate) {
			options.MaxDate = date
		}
	}
	return options
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
