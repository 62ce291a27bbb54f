package analyzing

import (
	"sort"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

// BuildFunnel conta enviados, lidos e convertidos de forma independente. Convertidos são
// os pedidos concluídos marcados como gerados por campanha.
func BuildFunnel(queue []domain.CampaignQueueEntry, concluded []domain.Order) domain.Funnel {
	converted := 0
	for _, order := range concluded {
		if order.GeneratedByCampaign {
			converted++
		}
	}

	return domain.Funnel{
		Sent:      CountSent(queue),
		Read:      len(Reads(queue)),
		Converted: converted,
	}
}

// ComputeRates calcula leitura (lidos/enviados) e conversão (convertidos/lidos)
func ComputeRates(funnel domain.Funnel) domain.Rates {
	return domain.Rates{
		ReadRate:       utils.SafeDivide(float64(funnel.Read), float64(funnel.Sent)),
		ConversionRate: utils.SafeDivide(float64(funnel.Converted), float64(funnel.Read)),
	}
}

// ReadsByCampaign conta as mensagens lidas por campanha, em ordem decrescente. Campanhas
// sem leitura não aparecem, e leituras de campanhas desconhecidas são descartadas.
func ReadsByCampaign(queue []domain.CampaignQueueEntry, campaigns []domain.Campaign) []domain.CampaignReads {
	counts := make(map[string]int)
	for _, entry := range Reads(queue) {
		counts[entry.CampaignID]++
	}

	names := make(map[string]string, len(campaigns))
	for _, campaign := range campaigns {
		names[campaign.ID] = campaign.Name
	}

	result := make([]domain.CampaignReads, 0, len(counts))
	dropped := 0
	for campaignID, reads := range counts {
		name, ok := names[campaignID]
		if !ok {
			dropped += reads
			continue
		}
		result = append(result, domain.CampaignReads{CampaignID: campaignID, CampaignName: name, Reads: reads})
	}

	if dropped > 0 {
		log.L.WithField("analysis_dropped", dropped).
			Debug("analyzing: leituras de campanhas inexistentes descartadas")
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Reads != result[j].Reads {
			return result[i].Reads > result[j].Reads
		}
		return result[i].CampaignID < result[j].CampaignID
	})

	return result
}

// ComputeAdminKPIs resume clientes e campanhas criados no período e envios realizados
func ComputeAdminKPIs(customers []domain.Customer, campaigns []domain.Campaign, queue []domain.CampaignQueueEntry) domain.AdminKPIs {
	return domain.AdminKPIs{
		Customers: len(customers),
		Campaigns: len(campaigns),
		Sends:     CountSent(queue),
	}
}
