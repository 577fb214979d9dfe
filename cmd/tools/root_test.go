package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

func TestCleanThenCharts(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)

	rawPath := filepath.Join(dir, "bruto.xlsx")
	cleanPath := filepath.Join(dir, "limpio.xlsx")
	exportDir := filepath.Join(dir, "graficos")

	require.NoError(t, spreadsheet.WriteTable(rawPath, "Datos", &spreadsheet.Table{
		Headers: []string{
			domain.ColumnCompanyName,
			domain.ColumnSector,
			domain.ColumnMunicipality,
			domain.ColumnMonthlySales,
			domain.ColumnEmployees,
			domain.ColumnGender,
		},
		Rows: [][]string{
			{"Lácteos", "Agro", "Tunja", "12.5", "5", "F"},
			{"Papas", "Agro", "Duitama", "n/d", "3", "M"},
			{"Ruanas", "Textil", "Sogamoso", "40", "20", "F"},
			{"Quesos", "Agro", "Tunja", "25", "8", ""},
		},
	}))

	rootCmd.SetArgs([]string{"clean", "--raw", rawPath, "--raw-sheet", "Datos", "--dataset", cleanPath})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	dataset, err := spreadsheet.LoadDataset(cleanPath, "")
	require.NoError(t, err)
	assert.Equal(t, 4, dataset.Len())
	assert.False(t, dataset.At(1).MonthlySales.Valid)

	rootCmd.SetArgs([]string{"charts", "--dataset", cleanPath, "--out", exportDir})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	runs, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	files, err := os.ReadDir(filepath.Join(exportDir, runs[0].Name()))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}

func TestChartsFailsWithoutDataset(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)

	rootCmd.SetArgs([]string{"charts", "--dataset", filepath.Join(dir, "inexistente.xlsx"), "--out", dir})
	err := rootCmd.ExecuteContext(context.Background())

	assert.ErrorIs(t, err, spreadsheet.ErrDatasetUnreadable)
}
