package dashboarding

import (
	"github.com/montanaflynn/stats"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// ComputeKPIs calcula os quatro indicadores do topo do dashboard.
// Entradas degeneradas resultam em zero, nunca em NaN.
func ComputeKPIs(records []domain.Record) domain.KPIs {
	sales := make([]float64, 0, len(records))
	employees := make([]float64, 0, len(records))
	sectors := make(map[string]struct{})

	for _, r := range records {
		if r.MonthlySales.Valid {
			sales = append(sales, r.MonthlySales.Float64)
		}
		if r.EmployeeCount.Valid {
			employees = append(employees, r.EmployeeCount.Float64)
		}
		if r.Sector != "" {
			sectors[r.Sector] = struct{}{}
		}
	}

	kpis := domain.KPIs{
		TotalCompanies:    len(records),
		TotalEmployees:    floats.Sum(employees),
		ActiveSectorCount: len(sectors),
	}

	if len(sales) > 0 {
		if mean, err := stats.Mean(sales); err == nil {
			kpis.AverageMonthlySales = mean
		}
	}

	return kpis
}
