package simulating

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSegment = errors.New("segmento desconhecido")
	ErrMissingData    = errors.New("dados de clientes ou pedidos ausentes")
	ErrInvalidCost    = errors.New("custo por mensagem inválido")
)

// ComputationError representa uma simulação que não pôde ser calculada
type ComputationError struct {
	Err     error
	Details string
}

func (e *ComputationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("falha na simulação: %s: %s", e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("falha na simulação: %s", e.Err.Error())
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

func newComputationError(err error, details string) *ComputationError {
	return &ComputationError{Err: err, Details: details}
}
