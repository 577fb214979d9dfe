package exporting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

var headers = []string{
	domain.ColumnCompanyName,
	domain.ColumnSector,
	domain.ColumnMunicipality,
	domain.ColumnMonthlySales,
	domain.ColumnEmployees,
	domain.ColumnGender,
	"Anio",
}

func newDataset(t *testing.T, rows [][]string) *domain.Dataset {
	t.Helper()
	schema, err := domain.NewSchema(headers)
	require.NoError(t, err)
	return domain.NewDataset(schema, rows)
}

func sampleDataset(t *testing.T) *domain.Dataset {
	return newDataset(t, [][]string{
		{"Lácteos", "Agro", "Tunja", "10", "5", "F", "2022"},
		{"Papas", "Agro", "Tunja", "", "3", "M", "2022"},
		{"Ruanas", "Textil", "Sogamoso", "50", "20", "F", "2022"},
		{"Hotel Paipa", "Turismo", "Paipa", "30", "12", "", "2022"},
		{"Quesos", "Agro", "Duitama", "15", "6", "F", "2022"},
	})
}

func newTestService(t *testing.T, dataset *domain.Dataset) (*Service, string) {
	dir := t.TempDir()
	return &Service{
		dataset:   dataset,
		outputDir: dir,
		now:       func() time.Time { return time.Date(2024, 1, 16, 2, 0, 0, 0, time.UTC) },
		newID:     func() (string, error) { return "AbC123", nil },
	}, dir
}

func TestService_Export(t *testing.T) {
	service, dir := newTestService(t, sampleDataset(t))

	report, err := service.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AbC123", report.RunID)
	assert.Equal(t, filepath.Join(dir, "20240116-020000-AbC123"), report.Directory)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Skipped)
	assert.ElementsMatch(t, []string{
		FileHistogram, FileBoxPlot, FileGenderPie, FileMunicipalityBar, FileScatter, FileSummary,
	}, report.Files)

	for _, file := range report.Files {
		info, err := os.Stat(filepath.Join(report.Directory, file))
		require.NoError(t, err, file)
		assert.Greater(t, info.Size(), int64(0), file)
	}

	table, err := spreadsheet.NewReader(filepath.Join(report.Directory, FileSummary), "Municipios").ReadTable()
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, []string{"Tunja", "2"}, table.Rows[0])
}

func TestService_ExportEmptyDataset(t *testing.T) {
	service, _ := newTestService(t, newDataset(t, nil))

	report, err := service.Export(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		FileHistogram, FileBoxPlot, FileGenderPie, FileMunicipalityBar, FileScatter,
	}, report.Skipped)
	assert.Equal(t, []string{FileSummary}, report.Files)
	assert.Empty(t, report.Errors)
}

func TestService_ExportCancelled(t *testing.T) {
	service, _ := newTestService(t, sampleDataset(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.Len(t, report.Errors, 1)
}

func TestService_ExportRunIDFailure(t *testing.T) {
	service, _ := newTestService(t, sampleDataset(t))
	service.newID = func() (string, error) { return "", errors.New("sem entropia") }

	_, err := service.Export(context.Background())
	assert.True(t, errors.Is(err, ErrGenerateRunID))
}

func TestCorrelationMatrix(t *testing.T) {
	dataset := newDataset(t, [][]string{
		{"A", "Agro", "Tunja", "10", "1", "F", "2022"},
		{"B", "Agro", "Tunja", "20", "2", "F", "2022"},
		{"C", "Agro", "Tunja", "30", "3", "F", "2022"},
		{"D", "Agro", "Tunja", "", "4", "F", "2022"},
	})

	names, matrix := CorrelationMatrix(dataset.Columns(), dataset.Records())

	assert.Equal(t, []string{domain.ColumnMonthlySales, domain.ColumnEmployees, "Anio"}, names)
	require.Len(t, matrix, 3)

	assert.InDelta(t, 1.0, matrix[0][0].Float64, 1e-9)
	assert.InDelta(t, 1.0, matrix[0][1].Float64, 1e-9)
	assert.Equal(t, matrix[0][1], matrix[1][0])

	// coluna constante não tem variância
	assert.False(t, matrix[0][2].Valid)
	assert.False(t, matrix[2][2].Valid)
}

func TestChartData(t *testing.T) {
	records := sampleDataset(t).Records()

	names, series := boxSeries(records)
	assert.Equal(t, []string{"Agro", "Textil", "Turismo"}, names)
	assert.Len(t, series[0], 2)

	values := pieValues(records)
	require.Len(t, values, 3)
	assert.Equal(t, "F (60.0%)", values[0].Label)
	assert.Equal(t, 3.0, values[0].Value)

	bars, maxCount := barValues(records)
	assert.Len(t, bars, 4)
	assert.Equal(t, 2.0, maxCount)
}
