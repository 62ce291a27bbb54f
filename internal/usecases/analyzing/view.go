package analyzing

import (
	"errors"
	"sync"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

type memo[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.once.Do(func() {
		m.value, m.err = compute()
	})
	return m.value, m.err
}

// View liga filtros, recortes e métricas de um par (snapshot, filtros). Cada nó é
// calculado na primeira leitura e reaproveitado pelos painéis que dependem dele.
type View struct {
	dataset *domain.Dataset
	filters domain.DashboardFilters
	now     func() time.Time

	orders    memo[[]domain.Order]
	concluded memo[[]domain.Order]
	queue     memo[[]domain.CampaignQueueEntry]
	campaigns memo[[]domain.Campaign]
	customers memo[[]domain.Customer]
	funnel    memo[domain.Funnel]
}

func NewView(dataset *domain.Dataset, filters domain.DashboardFilters, now func() time.Time) *View {
	if now == nil {
		now = time.Now
	}
	return &View{dataset: dataset, filters: filters, now: now}
}

func (v *View) Filters() domain.DashboardFilters {
	return v.filters
}

func (v *View) Orders() ([]domain.Order, error) {
	return v.orders.get(func() ([]domain.Order, error) {
		return FilterOrders(v.dataset.Orders, v.filters)
	})
}

func (v *View) ConcludedOrders() ([]domain.Order, error) {
	return v.concluded.get(func() ([]domain.Order, error) {
		orders, err := v.Orders()
		if err != nil {
			return nil, err
		}
		return Concluded(orders), nil
	})
}

func (v *View) Queue() ([]domain.CampaignQueueEntry, error) {
	return v.queue.get(func() ([]domain.CampaignQueueEntry, error) {
		return FilterQueue(v.dataset.Queue, v.filters)
	})
}

func (v *View) Campaigns() ([]domain.Campaign, error) {
	return v.campaigns.get(func() ([]domain.Campaign, error) {
		return FilterCampaigns(v.dataset.Campaigns, v.filters)
	})
}

func (v *View) Customers() ([]domain.Customer, error) {
	return v.customers.get(func() ([]domain.Customer, error) {
		return FilterCustomers(v.dataset.Customers, v.filters.Range)
	})
}

func (v *View) Funnel() (domain.Funnel, error) {
	return v.funnel.get(func() (domain.Funnel, error) {
		queue, err := v.Queue()
		if err != nil {
			return domain.Funnel{}, err
		}
		concluded, err := v.ConcludedOrders()
		if err != nil {
			return domain.Funnel{}, err
		}
		return BuildFunnel(queue, concluded), nil
	})
}

// ClientDashboard monta todos os painéis do dashboard do cliente
func (v *View) ClientDashboard() domain.ClientDashboard {
	dashboard := domain.ClientDashboard{
		Filters:    v.filters,
		SnapshotID: v.dataset.SnapshotID,
		Alerts:     []domain.Alert{},
	}

	orders, err := v.Orders()
	if errors.Is(err, ErrNotReady) {
		dashboard.KPI = domain.NotReadyPanel[domain.RevenueKPI]()
		dashboard.Revenue = domain.NotReadyPanel[domain.RevenueChart]()
		dashboard.Heatmap = domain.NotReadyPanel[[]domain.HeatmapCell]()
		dashboard.OrderTypes = domain.NotReadyPanel[[]domain.CategoryCount]()
		dashboard.Origin = domain.NotReadyPanel[[]domain.CategoryCount]()
		dashboard.Acquisition = domain.NotReadyPanel[[]domain.AcquisitionRevenue]()
		dashboard.Age = domain.NotReadyPanel[[]domain.AgeBucketRevenue]()
		return dashboard
	}
	concluded, _ := v.ConcludedOrders()

	dashboard.KPI = domain.ReadyPanel(ComputeRevenueKPI(concluded))

	if len(orders) == 0 {
		dashboard.Heatmap = domain.EmptyPanel[[]domain.HeatmapCell](domain.MessageNoOrders)
	} else {
		dashboard.Heatmap = domain.ReadyPanel(OrderHeatmap(orders))
	}

	if len(concluded) == 0 {
		dashboard.Revenue = domain.EmptyPanel[domain.RevenueChart](domain.MessageNoOrders)
		dashboard.OrderTypes = domain.EmptyPanel[[]domain.CategoryCount](domain.MessageNoOrders)
		dashboard.Origin = domain.EmptyPanel[[]domain.CategoryCount](domain.MessageNoOrders)
		dashboard.Acquisition = domain.EmptyPanel[[]domain.AcquisitionRevenue](domain.MessageNoOrders)
		dashboard.Age = domain.EmptyPanel[[]domain.AgeBucketRevenue](domain.MessageNoOrders)
		return dashboard
	}

	dashboard.Revenue = domain.ReadyPanel(BuildRevenueChart(concluded, v.filters.Range))
	dashboard.OrderTypes = domain.ReadyPanel(OrderTypeBreakdown(concluded))
	dashboard.Acquisition = domain.ReadyPanel(AcquisitionRevenue(concluded))
	dashboard.Alerts = DetectAnomaly(concluded, v.filters.Range)

	if origin := CampaignOrigin(concluded); len(origin) == 0 {
		dashboard.Origin = domain.EmptyPanel[[]domain.CategoryCount](domain.MessageNoPostLaunch)
	} else {
		dashboard.Origin = domain.ReadyPanel(origin)
	}

	if age, matched := AgeRevenue(concluded, v.dataset.Customers, v.now()); matched == 0 {
		dashboard.Age = domain.EmptyPanel[[]domain.AgeBucketRevenue](domain.MessageNoOrders)
	} else {
		dashboard.Age = domain.ReadyPanel(age)
	}

	return dashboard
}

// AdminDashboard monta os painéis de campanhas do administrador
func (v *View) AdminDashboard() domain.AdminDashboard {
	dashboard := domain.AdminDashboard{
		Filters:    v.filters,
		SnapshotID: v.dataset.SnapshotID,
	}

	funnel, err := v.Funnel()
	if errors.Is(err, ErrNotReady) {
		dashboard.KPIs = domain.NotReadyPanel[domain.AdminKPIs]()
		dashboard.Funnel = domain.NotReadyPanel[domain.Funnel]()
		dashboard.Rates = domain.NotReadyPanel[domain.Rates]()
		dashboard.Suggestions = domain.NotReadyPanel[[]domain.Alert]()
		dashboard.ReadsByCampaign = domain.NotReadyPanel[[]domain.CampaignReads]()
		return dashboard
	}

	queue, _ := v.Queue()
	campaigns, _ := v.Campaigns()
	customers, _ := v.Customers()

	dashboard.KPIs = domain.ReadyPanel(ComputeAdminKPIs(customers, campaigns, queue))
	dashboard.Funnel = domain.ReadyPanel(funnel)
	dashboard.Rates = domain.ReadyPanel(ComputeRates(funnel))
	dashboard.Suggestions = domain.ReadyPanel(Suggestions(funnel))

	// Nomes vêm de todas as campanhas do snapshot, não só das criadas no período
	if reads := ReadsByCampaign(queue, v.dataset.Campaigns); len(reads) == 0 {
		dashboard.ReadsByCampaign = domain.EmptyPanel[[]domain.CampaignReads](domain.MessageNoReads)
	} else {
		dashboard.ReadsByCampaign = domain.ReadyPanel(reads)
	}

	return dashboard
}
