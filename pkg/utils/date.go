package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// timestampLayouts cobre os formatos devolvidos pelo PostgREST para timestamp com e
// sem fuso
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// ParseTimestamp aceita timestamps com ou sem fuso. Sem fuso o horário é tratado como UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", value)
}

// MonthKey trunca a data para o mês no formato YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
