package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeaders = []string{
	ColumnCompanyName,
	ColumnSector,
	ColumnMunicipality,
	ColumnMonthlySales,
	ColumnEmployees,
	ColumnGender,
	"Direccion",
}

func TestNewSchema(t *testing.T) {
	t.Run("cabeçalho completo", func(t *testing.T) {
		schema, err := NewSchema(testHeaders)
		require.NoError(t, err)
		assert.Equal(t, testHeaders, schema.Columns())
	})

	t.Run("espaços no cabeçalho são ignorados", func(t *testing.T) {
		headers := append([]string{}, testHeaders...)
		headers[1] = "  " + ColumnSector + " "

		schema, err := NewSchema(headers)
		require.NoError(t, err)
		assert.Equal(t, ColumnSector, schema.Columns()[1])
	})

	t.Run("coluna obrigatória ausente", func(t *testing.T) {
		_, err := NewSchema([]string{ColumnCompanyName, ColumnSector})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))
		assert.Contains(t, err.Error(), ColumnMunicipality)
	})
}

func TestSchema_ParseRecord(t *testing.T) {
	schema, err := NewSchema(testHeaders)
	require.NoError(t, err)

	record := schema.ParseRecord([]string{"Lácteos SAS", "Agro", "Tunja", " 12.5 ", "abc", "F"})

	assert.Equal(t, "Lácteos SAS", record.CompanyName)
	assert.Equal(t, "Agro", record.Sector)
	assert.Equal(t, "Tunja", record.Municipality)
	assert.Equal(t, "F", record.Gender)
	assert.Equal(t, Float(12.5), record.MonthlySales)
	assert.False(t, record.EmployeeCount.Valid)
	assert.Equal(t, "", record.Cell(6))
	assert.Equal(t, "", record.Cell(99))
	assert.Len(t, record.Cells(), len(testHeaders))
}

func TestParseNullFloat(t *testing.T) {
	tests := []struct {
		raw      string
		expected NullFloat
	}{
		{"10", Float(10)},
		{" -3.25", Float(-3.25)},
		{"", NullFloat{}},
		{"   ", NullFloat{}},
		{"Sin datos", NullFloat{}},
		{"NaN", NullFloat{}},
		{"Inf", NullFloat{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseNullFloat(tt.raw), tt.raw)
	}
}

func TestNullFloat_MarshalJSON(t *testing.T) {
	b, err := NullFloat{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = Float(1.5).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(b))
}

func TestDataset(t *testing.T) {
	schema, err := NewSchema(testHeaders)
	require.NoError(t, err)

	dataset := NewDataset(schema, [][]string{
		{"A", "Textil", "Sogamoso", "50", "20", "F"},
		{"B", "Agro", "Tunja", "", "3", "M"},
		{"C", "", "Duitama", "-2", "1", ""},
		{"D", "Agro", "", "10", "5", "F"},
	})

	assert.Equal(t, 4, dataset.Len())
	assert.Equal(t, []string{"Agro", "Textil"}, dataset.Sectors())
	assert.Equal(t, []string{"Duitama", "Sogamoso", "Tunja"}, dataset.Municipalities())
	assert.Equal(t, SalesRange{Min: -2, Max: 50}, dataset.SalesBounds())

	t.Run("cópias não alteram o dataset", func(t *testing.T) {
		records := dataset.Records()
		records[0].Sector = "Alterado"
		cells := records[1].Cells()
		cells[1] = "Alterado"
		columns := dataset.Columns()
		columns[0] = "Alterado"

		assert.Equal(t, "Textil", dataset.At(0).Sector)
		assert.Equal(t, "Agro", dataset.At(1).Cell(1))
		assert.Equal(t, ColumnCompanyName, dataset.Columns()[0])
	})
}

func TestDataset_SalesBoundsFallback(t *testing.T) {
	schema, err := NewSchema(testHeaders)
	require.NoError(t, err)

	dataset := NewDataset(schema, [][]string{
		{"A", "Textil", "Sogamoso", "", "20", "F"},
		{"B", "Agro", "Tunja", "n/a", "3", "M"},
	})

	assert.Equal(t, SalesRange{Min: 0, Max: 100}, dataset.SalesBounds())
	assert.Equal(t, SalesRange{Min: 0, Max: 100}, NewDataset(schema, nil).SalesBounds())
}

func TestSalesRange_Contains(t *testing.T) {
	r := SalesRange{Min: 20, Max: 60}

	assert.True(t, r.Contains(Float(20)))
	assert.True(t, r.Contains(Float(60)))
	assert.False(t, r.Contains(Float(19.99)))
	assert.False(t, r.Contains(Float(60.01)))
	assert.False(t, r.Contains(NullFloat{}))
}
