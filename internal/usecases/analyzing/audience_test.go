package analyzing

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

func TestAgeBucket(t *testing.T) {
	tests := []struct {
		name     string
		age      float64
		expected string
		ok       bool
	}{
		{name: "17.9 anos - deve cair em <18", age: 17.9, expected: "<18", ok: true},
		{name: "18 anos - limite inferior inclusivo", age: 18.0, expected: "18-25", ok: true},
		{name: "25 anos - início de 26-35", age: 25.0, expected: "26-35", ok: true},
		{name: "44.99 anos", age: 44.99, expected: "36-45", ok: true},
		{name: "65 anos", age: 65, expected: "65+", ok: true},
		{name: "100 anos - fora das faixas", age: 100, ok: false},
		{name: "Idade negativa - fora das faixas", age: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := AgeBucket(tt.age)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestAgeRevenue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	birthForAge := func(years float64) null.Time {
		return null.TimeFrom(now.Add(-time.Duration(years * 365.25 * 24 * float64(time.Hour))))
	}

	customers := []domain.Customer{
		{ID: "jovem", DateOfBirth: birthForAge(17.5)},
		{ID: "adulto", DateOfBirth: birthForAge(30)},
		{ID: "quase-18", DateOfBirth: null.TimeFrom(now.Add(-(6574*24*time.Hour + 18*time.Hour)))},
		{ID: "sem-data"},
	}
	concluded := []domain.Order{
		withCustomer(concludedOrder("1", day(2025, 5, 1), 10), "jovem"),
		withCustomer(concludedOrder("2", day(2025, 5, 1), 40), "adulto"),
		withCustomer(concludedOrder("3", day(2025, 5, 1), 60), "adulto"),
		withCustomer(concludedOrder("7", day(2025, 5, 1), 5), "quase-18"),
		withCustomer(concludedOrder("4", day(2025, 5, 1), 99), "sem-data"),
		withCustomer(concludedOrder("5", day(2025, 5, 1), 99), "desconhecido"),
		concludedOrder("6", day(2025, 5, 1), 99),
	}

	result, matched := AgeRevenue(concluded, customers, now)

	assert.Equal(t, 4, matched)
	assert.Equal(t, []domain.AgeBucketRevenue{
		{Bucket: "<18", Revenue: 15},
		{Bucket: "18-25", Revenue: 0},
		{Bucket: "26-35", Revenue: 100},
		{Bucket: "36-45", Revenue: 0},
		{Bucket: "46-65", Revenue: 0},
		{Bucket: "65+", Revenue: 0},
	}, result)
}

func TestOrderHeatmap(t *testing.T) {
	// 2025-01-06 é segunda-feira
	orders := []domain.Order{
		order("1", time.Date(2025, 1, 6, 12, 10, 0, 0, time.UTC), 10, "CANCELED"),
		concludedOrder("2", time.Date(2025, 1, 13, 12, 50, 0, 0, time.UTC), 10),
		concludedOrder("3", time.Date(2025, 1, 12, 20, 0, 0, 0, time.UTC), 10),
	}

	assert.Equal(t, []domain.HeatmapCell{
		{Weekday: "Segunda", Hour: 12, Orders: 2},
		{Weekday: "Domingo", Hour: 20, Orders: 1},
	}, OrderHeatmap(orders))
}

func TestOrderTypeBreakdown(t *testing.T) {
	indoor := concludedOrder("2", day(2025, 1, 1), 10)
	indoor.OrderType = domain.OrderTypeIndoor
	concluded := []domain.Order{
		concludedOrder("1", day(2025, 1, 1), 10),
		indoor,
		concludedOrder("3", day(2025, 1, 1), 10),
	}

	assert.Equal(t, []domain.CategoryCount{
		{Label: domain.OrderTypeDelivery, Count: 2},
		{Label: domain.OrderTypeIndoor, Count: 1},
	}, OrderTypeBreakdown(concluded))
}

func TestCampaignOrigin(t *testing.T) {
	fromCampaign := concludedOrder("2", day(2025, 1, 1), 10)
	fromCampaign.GeneratedByCampaign = true
	beforeLaunch := concludedOrder("1", day(2024, 12, 31), 10)
	beforeLaunch.GeneratedByCampaign = true

	result := CampaignOrigin([]domain.Order{
		beforeLaunch,
		fromCampaign,
		concludedOrder("3", day(2025, 2, 1), 10),
		concludedOrder("4", day(2025, 2, 2), 10),
	})

	assert.Equal(t, []domain.CategoryCount{
		{Label: domain.OriginOrganic, Count: 2},
		{Label: domain.OriginCampaign, Count: 1},
	}, result)

	assert.Empty(t, CampaignOrigin([]domain.Order{beforeLaunch}))
}
