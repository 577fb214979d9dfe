package dashboarding

import (
	"fmt"
	"math"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/pkg/apiErrors"
)

// Service implementa Dashboarder sobre o dataset carregado na inicialização
type Service struct {
	dataset *domain.Dataset
}

// NewService cria o serviço do dashboard; o dataset nunca é alterado
func NewService(dataset *domain.Dataset) Dashboarder {
	return &Service{
		dataset: dataset,
	}
}

func (s *Service) Options() *domain.FilterOptions {
	return &domain.FilterOptions{
		Sectors:        s.dataset.Sectors(),
		Municipalities: s.dataset.Municipalities(),
		SalesBounds:    s.dataset.SalesBounds(),
		Columns:        s.dataset.Columns(),
		RecordCount:    s.dataset.Len(),
	}
}

// Render recalcula toda a visão derivada a partir do dataset e dos filtros atuais
func (s *Service) Render(filters domain.FilterState, query domain.TableQuery) (*domain.DerivedView, error) {
	if r := filters.SalesRange; r != nil {
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
			return nil, NewQueryError(ErrInvalidSalesRange, apiErrors.ErrInvalidFormat, "intervalo com NaN")
		}
		if r.Min > r.Max {
			return nil, NewQueryError(ErrInvalidSalesRange, apiErrors.ErrInvalidRequest, fmt.Sprintf("min %g > max %g", r.Min, r.Max))
		}
	}

	filtered := ApplyFilters(s.dataset, filters)

	table, err := ProjectTable(s.dataset.Columns(), filtered, query)
	if err != nil {
		return nil, err
	}

	return &domain.DerivedView{
		Filters:       filters,
		FilteredCount: len(filtered),
		KPIs:          ComputeKPIs(filtered),
		Charts: domain.Charts{
			Histogram:       BuildHistogram(filtered, HistogramBins),
			BoxPlot:         BuildBoxPlot(filtered),
			GenderPie:       BuildGenderPie(filtered),
			MunicipalityBar: BuildMunicipalityBar(filtered, TopMunicipalities),
			Scatter:         BuildScatter(filtered),
		},
		Table: table,
	}, nil
}
