package dashboarding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

var headers = []string{
	domain.ColumnCompanyName,
	domain.ColumnSector,
	domain.ColumnMunicipality,
	domain.ColumnMonthlySales,
	domain.ColumnEmployees,
	domain.ColumnGender,
}

func newDataset(t *testing.T, rows [][]string) *domain.Dataset {
	t.Helper()

	schema, err := domain.NewSchema(headers)
	require.NoError(t, err)

	return domain.NewDataset(schema, rows)
}

// scenarioDataset reproduz o conjunto Agro/Agro/Textil usado nos cenários do dashboard
func scenarioDataset(t *testing.T) *domain.Dataset {
	return newDataset(t, [][]string{
		{"Lácteos del Valle", "Agro", "Tunja", "10", "5", "F"},
		{"Papas Boyacá", "Agro", "Tunja", "", "3", "M"},
		{"Ruanas Sogamoso", "Textil", "Sogamoso", "50", "20", "F"},
	})
}

func records(t *testing.T, rows [][]string) []domain.Record {
	return newDataset(t, rows).Records()
}

func salesRecords(t *testing.T, sector string, values ...float64) []domain.Record {
	rows := make([][]string, 0, len(values))
	for i, v := range values {
		rows = append(rows, []string{fmt.Sprintf("Empresa %d", i), sector, "Tunja", fmt.Sprint(v), "1", "F"})
	}
	return records(t, rows)
}
