package dashboarding

import (
	"errors"
	"fmt"
)

// Erros de validação das interações com o dashboard
var (
	ErrUnknownColumn        = errors.New("unknown table column")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidPage          = errors.New("invalid page")
	ErrInvalidSalesRange    = errors.New("invalid sales range")
)

// QueryError é um erro de validação com o código da API
type QueryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError cria um novo QueryError
func NewQueryError(err error, code string, details string) *QueryError {
	return &QueryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
