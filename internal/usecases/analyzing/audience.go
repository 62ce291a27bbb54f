package analyzing

import (
	"sort"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

type ageBucket struct {
	label string
	min   float64
	max   float64
}

// Faixas fechadas à esquerda: [0,18) [18,25) [25,35) [35,45) [45,65) [65,100)
var ageBuckets = []ageBucket{
	{label: "<18", min: 0, max: 18},
	{label: "18-25", min: 18, max: 25},
	{label: "26-35", min: 25, max: 35},
	{label: "36-45", min: 35, max: 45},
	{label: "46-65", min: 45, max: 65},
	{label: "65+", min: 65, max: 100},
}

// AgeBucket retorna a faixa etária da idade. Idades fora de [0,100) não têm faixa.
func AgeBucket(age float64) (string, bool) {
	for _, bucket := range ageBuckets {
		if age >= bucket.min && age < bucket.max {
			return bucket.label, true
		}
	}
	return "", false
}

// AgeRevenue soma a receita dos pedidos concluídos por faixa etária do cliente. Todas as
// faixas aparecem no resultado, mesmo zeradas. Pedidos sem cliente correspondente ou sem
// data de nascimento são descartados; matched informa quantos pedidos entraram na soma.
func AgeRevenue(concluded []domain.Order, customers []domain.Customer, now time.Time) (result []domain.AgeBucketRevenue, matched int) {
	byID := make(map[string]domain.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}

	totals := make(map[string]float64, len(ageBuckets))
	dropped := 0
	for _, order := range concluded {
		customer, ok := byID[order.CustomerID.String]
		if !ok || !order.CustomerID.Valid {
			dropped++
			continue
		}

		age, ok := customer.AgeAt(now)
		if !ok {
			dropped++
			continue
		}

		label, ok := AgeBucket(age)
		if !ok {
			dropped++
			continue
		}

		totals[label] += order.TotalAmount
		matched++
	}

	if dropped > 0 {
		log.L.WithFields(log.Fields{
			"analysis_dropped": dropped,
			"analysis_matched": matched,
		}).Debug("analyzing: pedidos sem cliente ou idade válida descartados da análise por faixa etária")
	}

	result = make([]domain.AgeBucketRevenue, 0, len(ageBuckets))
	for _, bucket := range ageBuckets {
		result = append(result, domain.AgeBucketRevenue{Bucket: bucket.label, Revenue: totals[bucket.label]})
	}

	return result, matched
}

// Segunda a domingo, na ordem do eixo do heatmap
var weekdayLabels = []struct {
	day   time.Weekday
	label string
}{
	{time.Monday, "Segunda"},
	{time.Tuesday, "Terça"},
	{time.Wednesday, "Quarta"},
	{time.Thursday, "Quinta"},
	{time.Friday, "Sexta"},
	{time.Saturday, "Sábado"},
	{time.Sunday, "Domingo"},
}

type weekdayHour struct {
	day  time.Weekday
	hour int
}

// OrderHeatmap conta os pedidos (qualquer status) por dia da semana e hora do dia
func OrderHeatmap(orders []domain.Order) []domain.HeatmapCell {
	counts := make(map[weekdayHour]int)
	for _, order := range orders {
		counts[weekdayHour{day: order.CreatedAt.Weekday(), hour: order.CreatedAt.Hour()}]++
	}

	cells := make([]domain.HeatmapCell, 0, len(counts))
	for _, weekday := range weekdayLabels {
		for hour := 0; hour < 24; hour++ {
			count, ok := counts[weekdayHour{day: weekday.day, hour: hour}]
			if !ok {
				continue
			}
			cells = append(cells, domain.HeatmapCell{Weekday: weekday.label, Hour: hour, Orders: count})
		}
	}

	return cells
}

// OrderTypeBreakdown conta os pedidos concluídos por tipo (DELIVERY, INDOOR, TAKEOUT)
func OrderTypeBreakdown(concluded []domain.Order) []domain.CategoryCount {
	counts := make(map[string]int)
	for _, order := range concluded {
		if order.OrderType == "" {
			continue
		}
		counts[order.OrderType]++
	}
	return sortedCounts(counts)
}

// CampaignOrigin compara pedidos concluídos gerados por campanha com os orgânicos,
// considerando apenas pedidos a partir do lançamento do FIDELIZE
func CampaignOrigin(concluded []domain.Order) []domain.CategoryCount {
	counts := make(map[string]int)
	for _, order := range concluded {
		if domain.CalendarDate(order.CreatedAt).Before(domain.FidelizeLaunchDate) {
			continue
		}
		if order.GeneratedByCampaign {
			counts[domain.OriginCampaign]++
		} else {
			counts[domain.OriginOrganic]++
		}
	}
	return sortedCounts(counts)
}

func sortedCounts(counts map[string]int) []domain.CategoryCount {
	result := make([]domain.CategoryCount, 0, len(counts))
	for label, count := range counts {
		result = append(result, domain.CategoryCount{Label: label, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})

	return result
}
