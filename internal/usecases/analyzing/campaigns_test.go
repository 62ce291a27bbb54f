package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

func TestBuildFunnelAndRates(t *testing.T) {
	base := day(2025, 1, 10)
	queue := append(queueEntries("c1", 2, 6, base), queueEntries("c1", 4, 4, base)...)
	queue = append(queue, queueEntries("c1", 1, 5, base)...)

	converted := concludedOrder("1", base, 50)
	converted.GeneratedByCampaign = true
	concluded := []domain.Order{converted, concludedOrder("2", base, 20)}

	funnel := BuildFunnel(queue, concluded)
	assert.Equal(t, domain.Funnel{Sent: 10, Read: 4, Converted: 1}, funnel)

	rates := ComputeRates(funnel)
	assert.InDelta(t, 0.4, rates.ReadRate, 1e-9)
	assert.InDelta(t, 0.25, rates.ConversionRate, 1e-9)

	assert.Equal(t, domain.Rates{}, ComputeRates(domain.Funnel{}))
}

func TestReadsByCampaign(t *testing.T) {
	base := day(2025, 1, 10)
	var queue []domain.CampaignQueueEntry
	queue = append(queue, queueEntries("natal", 4, 3, base)...)
	queue = append(queue, queueEntries("volta", 4, 5, base)...)
	queue = append(queue, queueEntries("pascoa", 4, 3, base)...)
	queue = append(queue, queueEntries("sem-leitura", 2, 7, base)...)
	queue = append(queue, queueEntries("removida", 4, 9, base)...)

	campaigns := []domain.Campaign{
		{ID: "natal", Name: "Natal"},
		{ID: "volta", Name: "Volta às aulas"},
		{ID: "pascoa", Name: "Páscoa"},
		{ID: "sem-leitura", Name: "Sem leitura"},
	}

	assert.Equal(t, []domain.CampaignReads{
		{CampaignID: "volta", CampaignName: "Volta às aulas", Reads: 5},
		{CampaignID: "natal", CampaignName: "Natal", Reads: 3},
		{CampaignID: "pascoa", CampaignName: "Páscoa", Reads: 3},
	}, ReadsByCampaign(queue, campaigns))
}

func TestComputeAdminKPIs(t *testing.T) {
	base := day(2025, 1, 10)
	queue := append(queueEntries("c1", 2, 3, base), queueEntries("c1", 0, 2, base)...)

	kpis := ComputeAdminKPIs(make([]domain.Customer, 4), make([]domain.Campaign, 2), queue)

	assert.Equal(t, domain.AdminKPIs{Customers: 4, Campaigns: 2, Sends: 3}, kpis)
}
