package domain

import (
	"slices"
	"time"
)

// DateRange é um intervalo fechado de datas de calendário. Os limites são guardados à
// meia-noite UTC e comparados com a data local de cada registro.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: CalendarDate(start), End: CalendarDate(end)}
}

// IsSet é falso quando algum dos limites não foi informado
func (r DateRange) IsSet() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Contains compara apenas a data de calendário de t, no fuso do próprio t
func (r DateRange) Contains(t time.Time) bool {
	d := CalendarDate(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// CalendarDate descarta o horário de t preservando o dia do seu fuso
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type DashboardFilters struct {
	Range    DateRange `json:"range"`
	Channels []string  `json:"channels,omitempty"`
	Stores   []string  `json:"stores,omitempty"`
}

// AllowsChannel aceita qualquer canal quando nenhum foi selecionado
func (f DashboardFilters) AllowsChannel(channel string) bool {
	return len(f.Channels) == 0 || slices.Contains(f.Channels, channel)
}

// AllowsStore aceita qualquer loja quando nenhuma foi selecionada. Registros sem loja
// só passam quando não há filtro.
func (f DashboardFilters) AllowsStore(store string, valid bool) bool {
	if len(f.Stores) == 0 {
		return true
	}
	return valid && slices.Contains(f.Stores, store)
}

type FilterOptions struct {
	MinDate  time.Time `json:"min_date"`
	MaxDate  time.Time `json:"max_date"`
	Channels []string  `json:"channels,omitempty"`
	Stores   []string  `json:"stores,omitempty"`
}
