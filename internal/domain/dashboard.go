package domain

type ClientDashboard struct {
	Filters     DashboardFilters            `json:"filters"`
	SnapshotID  string                      `json:"snapshot_id"`
	KPI         Panel[RevenueKPI]           `json:"kpi"`
	Revenue     Panel[RevenueChart]         `json:"revenue"`
	Heatmap     Panel[[]HeatmapCell]        `json:"heatmap"`
	OrderTypes  Panel[[]CategoryCount]      `json:"order_types"`
	Origin      Panel[[]CategoryCount]      `json:"origin"`
	Alerts      []Alert                     `json:"alerts"`
	Acquisition Panel[[]AcquisitionRevenue] `json:"acquisition"`
	Age         Panel[[]AgeBucketRevenue]   `json:"age"`
}

type AdminDashboard struct {
	Filters         DashboardFilters       `json:"filters"`
	SnapshotID      string                 `json:"snapshot_id"`
	KPIs            Panel[AdminKPIs]       `json:"kpis"`
	Funnel          Panel[Funnel]          `json:"funnel"`
	Rates           Panel[Rates]           `json:"rates"`
	Suggestions     Panel[[]Alert]         `json:"suggestions"`
	ReadsByCampaign Panel[[]CampaignReads] `json:"reads_by_campaign"`
}
