package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

func TestApplyFilters(t *testing.T) {
	dataset := newDataset(t, [][]string{
		{"A", "Agro", "Tunja", "10", "5", "F"},
		{"B", "Agro", "Duitama", "", "3", "M"},
		{"C", "Textil", "Sogamoso", "50", "20", "F"},
		{"D", "", "Tunja", "30", "2", ""},
		{"E", "Textil", "", "25", "", "M"},
		{"F", "Turismo", "Paipa", "60", "7", "F"},
	})

	filterStates := []struct {
		name     string
		filters  domain.FilterState
		expected []string
	}{
		{"Sem filtros - todos os registros na ordem original", domain.FilterState{}, []string{"A", "B", "C", "D", "E", "F"}},
		{"Setor", domain.FilterState{Sector: "Textil"}, []string{"C", "E"}},
		{"Municípios combinados com OU", domain.FilterState{Municipalities: []string{"Paipa", "Tunja"}}, []string{"A", "D", "F"}},
		{"Lista de municípios vazia não restringe", domain.FilterState{Municipalities: []string{}}, []string{"A", "B", "C", "D", "E", "F"}},
		{"Faixa de vendas exclui nulos", domain.FilterState{SalesRange: &domain.SalesRange{Min: 0, Max: 100}}, []string{"A", "C", "D", "E", "F"}},
		{"Faixa de vendas com limites fechados", domain.FilterState{SalesRange: &domain.SalesRange{Min: 25, Max: 50}}, []string{"C", "D", "E"}},
		{
			"Critérios combinados com E",
			domain.FilterState{
				Sector:         "Textil",
				Municipalities: []string{"Sogamoso", "Tunja"},
				SalesRange:     &domain.SalesRange{Min: 20, Max: 60},
			},
			[]string{"C"},
		},
		{"Nenhum registro atende", domain.FilterState{Sector: "Minería"}, []string{}},
	}

	for _, tt := range filterStates {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilters(dataset, tt.filters)

			names := make([]string, 0, len(filtered))
			for _, r := range filtered {
				names = append(names, r.CompanyName)
			}
			assert.Equal(t, tt.expected, names)

			// necessidade e suficiência
			assert.LessOrEqual(t, len(filtered), dataset.Len())
			satisfying := 0
			for _, r := range dataset.Records() {
				if satisfies(r, tt.filters) {
					satisfying++
				}
			}
			assert.Equal(t, satisfying, len(filtered))
			for _, r := range filtered {
				assert.True(t, satisfies(r, tt.filters))
			}
		})
	}
}

func satisfies(r domain.Record, filters domain.FilterState) bool {
	if filters.Sector != "" && r.Sector != filters.Sector {
		return false
	}
	if len(filters.Municipalities) > 0 {
		found := false
		for _, m := range filters.Municipalities {
			if m == r.Municipality {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if filters.SalesRange != nil {
		if !r.MonthlySales.Valid {
			return false
		}
		if r.MonthlySales.Float64 < filters.SalesRange.Min || r.MonthlySales.Float64 > filters.SalesRange.Max {
			return false
		}
	}
	return true
}

func TestComputeKPIs(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected domain.KPIs
	}{
		{
			name:     "Sem registros",
			rows:     nil,
			expected: domain.KPIs{},
		},
		{
			name: "Todas as vendas nulas - média zero",
			rows: [][]string{
				{"A", "Agro", "Tunja", "", "", "F"},
				{"B", "Textil", "Tunja", "x", "4", "M"},
			},
			expected: domain.KPIs{TotalCompanies: 2, AverageMonthlySales: 0, TotalEmployees: 4, ActiveSectorCount: 2},
		},
		{
			name: "Setor vazio não conta como ativo",
			rows: [][]string{
				{"A", "Agro", "Tunja", "10", "2", "F"},
				{"B", "", "Tunja", "20", "3", "M"},
				{"C", "Agro", "Paipa", "30", "", "F"},
			},
			expected: domain.KPIs{TotalCompanies: 3, AverageMonthlySales: 20, TotalEmployees: 5, ActiveSectorCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeKPIs(records(t, tt.rows)))
		})
	}
}
