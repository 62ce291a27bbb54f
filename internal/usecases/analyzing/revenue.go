package analyzing

import (
	"sort"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

// ComputeRevenueKPI soma a receita dos pedidos concluídos. Ticket médio é 0 sem pedidos.
func ComputeRevenueKPI(concluded []domain.Order) domain.RevenueKPI {
	revenue := 0.0
	for _, order := range concluded {
		revenue += order.TotalAmount
	}

	return domain.RevenueKPI{
		Revenue:       revenue,
		Orders:        len(concluded),
		AverageTicket: utils.SafeDivide(revenue, float64(len(concluded))),
	}
}

type monthChannel struct {
	month   string
	channel string
}

// MonthlyRevenueByChannel agrupa a receita por mês (YYYY-MM) e canal de venda
func MonthlyRevenueByChannel(concluded []domain.Order) []domain.ChannelRevenue {
	totals := make(map[monthChannel]float64)
	for _, order := range concluded {
		key := monthChannel{month: utils.MonthKey(order.CreatedAt), channel: order.Channel()}
		totals[key] += order.TotalAmount
	}

	series := make([]domain.ChannelRevenue, 0, len(totals))
	for key, revenue := range totals {
		series = append(series, domain.ChannelRevenue{
			Month:   key.month,
			Channel: key.channel,
			Revenue: revenue,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		if series[i].Month != series[j].Month {
			return series[i].Month < series[j].Month
		}
		return series[i].Channel < series[j].Channel
	})

	return series
}

// ContainsLaunch indica se o intervalo inclui o início da Cannoli
func ContainsLaunch(dateRange domain.DateRange) bool {
	return dateRange.IsSet() && dateRange.Contains(domain.FidelizeLaunchDate)
}

// BuildRevenueChart monta a série mensal com o marcador de lançamento
func BuildRevenueChart(concluded []domain.Order, dateRange domain.DateRange) domain.RevenueChart {
	chart := domain.RevenueChart{
		Series:       MonthlyRevenueByChannel(concluded),
		LaunchMarker: ContainsLaunch(dateRange),
	}
	if chart.LaunchMarker {
		chart.LaunchMonth = utils.MonthKey(domain.FidelizeLaunchDate)
	}
	return chart
}

type monthCustomerType struct {
	month        string
	customerType string
}

// AcquisitionRevenue separa a receita de clientes novos e recorrentes. O primeiro pedido
// de cada cliente é o de menor createdAt entre os pedidos concluídos recebidos; pedidos
// com o mesmo instante do primeiro também contam como novos. Pedidos sem cliente nunca
// são considerados primeiro pedido.
func AcquisitionRevenue(concluded []domain.Order) []domain.AcquisitionRevenue {
	firstOrder := make(map[string]time.Time)
	for _, order := range concluded {
		if !order.CustomerID.Valid {
			continue
		}
		first, ok := firstOrder[order.CustomerID.String]
		if !ok || order.CreatedAt.Before(first) {
			firstOrder[order.CustomerID.String] = order.CreatedAt
		}
	}

	totals := make(map[monthCustomerType]float64)
	for _, order := range concluded {
		customerType := domain.CustomerTypeReturning
		if first, ok := firstOrder[order.CustomerID.String]; ok && order.CustomerID.Valid && order.CreatedAt.Equal(first) {
			customerType = domain.CustomerTypeNew
		}

		key := monthCustomerType{month: utils.MonthKey(order.CreatedAt), customerType: customerType}
		totals[key] += order.TotalAmount
	}

	result := make([]domain.AcquisitionRevenue, 0, len(totals))
	for key, revenue := range totals {
		result = append(result, domain.AcquisitionRevenue{
			Month:        key.month,
			CustomerType: key.customerType,
			Revenue:      revenue,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].CustomerType < result[j].CustomerType
	})

	return result
}
