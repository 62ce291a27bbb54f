package domain

// PanelState descreve o estado de renderização de cada painel do dashboard
type PanelState string

const (
	PanelReady    PanelState = "ready"
	PanelNotReady PanelState = "not_ready"
	PanelEmpty    PanelState = "empty"
)

const (
	MessageAwaitingFilters = "Aguardando filtros..."
	MessageNoOrders        = "Nenhum pedido encontrado para estes filtros"
	MessageNoReads         = "Nenhuma mensagem lida encontrada para estes filtros"
	MessageNoPostLaunch    = "Nenhum dado Pós-FIDELIZE para estes filtros"
)

// Panel envolve o resultado de uma métrica com o estado em que ela deve ser exibida
type Panel[T any] struct {
	State   PanelState `json:"state"`
	Message string     `json:"message,omitempty"`
	Data    T          `json:"data,omitempty"`
}

func ReadyPanel[T any](data T) Panel[T] {
	return Panel[T]{State: PanelReady, Data: data}
}

func EmptyPanel[T any](message string) Panel[T] {
	return Panel[T]{State: PanelEmpty, Message: message}
}

func NotReadyPanel[T any]() Panel[T] {
	return Panel[T]{State: PanelNotReady, Message: MessageAwaitingFilters}
}

type RevenueKPI struct {
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	AverageTicket float64 `json:"average_ticket"`
}

type ChannelRevenue struct {
	Month   string  `json:"month"`
	Channel string  `json:"channel"`
	Revenue float64 `json:"revenue"`
}

type RevenueChart struct {
	Series []ChannelRevenue `json:"series"`
	// LaunchMarker indica que o intervalo contém o início da Cannoli (2025-01)
	LaunchMarker bool   `json:"launch_marker"`
	LaunchMonth  string `json:"launch_month,omitempty"`
}

type Funnel struct {
	Sent      int `json:"sent"`
	Read      int `json:"read"`
	Converted int `json:"converted"`
}

type Rates struct {
	ReadRate       float64 `json:"read_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

type CampaignReads struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Reads        int    `json:"reads"`
}

const (
	CustomerTypeNew       = "Novo"
	CustomerTypeReturning = "Recorrente"
)

type AcquisitionRevenue struct {
	Month        string  `json:"month"`
	CustomerType string  `json:"customer_type"`
	Revenue      float64 `json:"revenue"`
}

type AgeBucketRevenue struct {
	Bucket  string  `json:"bucket"`
	Revenue float64 `json:"revenue"`
}

type HeatmapCell struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Orders  int    `json:"orders"`
}

type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

const (
	OriginCampaign = "Gerado por Campanha"
	OriginOrganic  = "Orgânico"
)

type AdminKPIs struct {
	Customers int `json:"customers"`
	Campaigns int `json:"campaigns"`
	Sends     int `json:"sends"`
}

// Níveis das mensagens exibidas no painel
const (
	AlertLevelSuccess  = "sucesso"
	AlertLevelWarning  = "alerta"
	AlertLevelCritical = "critico"
)

type Alert struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// RevenueWindows guarda as receitas comparadas pela detecção de anomalia
type RevenueWindows struct {
	Recent   float64 `json:"recent"`
	Previous float64 `json:"previous"`
}
