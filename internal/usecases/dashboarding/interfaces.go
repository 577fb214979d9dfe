package dashboarding

import (
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_dashboarder.go -package=mocks

// Dashboarder define a interface do motor de filtros e derivações do dashboard
type Dashboarder interface {
	// Options retorna os valores selecionáveis nos filtros
	Options() *domain.FilterOptions

	// Render aplica os filtros ao dataset e recalcula KPIs, gráficos e tabela
	Render(filters domain.FilterState, query domain.TableQuery) (*domain.DerivedView, error)
}
