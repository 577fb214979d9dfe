package dashboarding

import (
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

// ApplyFilters retorna, na ordem original, os registros que atendem a todos os critérios definidos
func ApplyFilters(dataset *domain.Dataset, filters domain.FilterState) []domain.Record {
	municipalities := make(map[string]struct{}, len(filters.Municipalities))
	for _, m := range filters.Municipalities {
		municipalities[m] = struct{}{}
	}

	filtered := make([]domain.Record, 0, dataset.Len())
	for i := 0; i < dataset.Len(); i++ {
		record := dataset.At(i)
		if matches(record, filters, municipalities) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matches(record domain.Record, filters domain.FilterState, municipalities map[string]struct{}) bool {
	if filters.Sector != "" && record.Sector != filters.Sector {
		return false
	}

	if len(municipalities) > 0 {
		if _, ok := municipalities[record.Municipality]; !ok {
			return false
		}
	}

	if filters.SalesRange != nil && !filters.SalesRange.Contains(record.MonthlySales) {
		return false
	}

	return true
}
