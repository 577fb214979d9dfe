package exporting

import (
	"context"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_exporter.go -package=mocks

// Exporter gera os gráficos estáticos e a planilha de resumo do dataset completo
type Exporter interface {
	Export(ctx context.Context) (*domain.ExportReport, error)
}
