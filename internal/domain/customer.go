package domain

import (
	"math"
	"time"

	"github.com/aarondl/null/v8"
)

const (
	CustomerStatusActive   = 1
	CustomerStatusInactive = 2
)

type Customer struct {
	ID          string    `json:"id"`
	DateOfBirth null.Time `json:"date_of_birth"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AgeAt calcula a idade em anos a partir dos dias completos vividos, com 365.25 dias
// por ano. Retorna false quando a data de nascimento não é conhecida.
func (c Customer) AgeAt(now time.Time) (float64, bool) {
	if !c.DateOfBirth.Valid {
		return 0, false
	}
	days := math.Floor(now.Sub(c.DateOfBirth.Time).Hours() / 24)
	return days / 365.25, true
}
