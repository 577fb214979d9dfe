package spreadsheet

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetUnreadable = errors.New("dataset file is unreadable")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrEmptyFile         = errors.New("spreadsheet has no header row")
)

// LoadError é o erro fatal de carga do dataset, com o arquivo envolvido
type LoadError struct {
	Err   error  // Erro base (ErrDatasetUnreadable ou domain.ErrMissingColumn)
	Path  string // Arquivo lido
	Cause error  // Erro original da biblioteca, quando houver
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(err error, path string, cause error) *LoadError {
	return &LoadError{
		Err:   err,
		Path:  path,
		Cause: cause,
	}
}
