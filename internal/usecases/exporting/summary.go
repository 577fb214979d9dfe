package exporting

import (
	"math"

	"github.com/vfg2006/empresas-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/empresas-dashboard/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

// NumericColumns retorna as colunas em que toda célula preenchida é número (e há ao menos uma)
func NumericColumns(columns []string, records []domain.Record) []int {
	numeric := make([]int, 0)
	for i := range columns {
		filled := 0
		ok := true
		for _, r := range records {
			cell := r.Cell(i)
			if cell == "" {
				continue
			}
			if !domain.ParseNullFloat(cell).Valid {
				ok = false
				break
			}
			filled++
		}
		if ok && filled > 0 {
			numeric = append(numeric, i)
		}
	}
	return numeric
}

// CorrelationMatrix calcula a correlação de Pearson entre colunas numéricas usando,
// para cada par, apenas as linhas em que as duas colunas estão preenchidas.
// Pares sem variância ou com menos de duas linhas ficam nulos.
func CorrelationMatrix(columns []string, records []domain.Record) ([]string, [][]domain.NullFloat) {
	indexes := NumericColumns(columns, records)

	names := make([]string, len(indexes))
	for i, idx := range indexes {
		names[i] = columns[idx]
	}

	matrix := make([][]domain.NullFloat, len(indexes))
	for i := range matrix {
		matrix[i] = make([]domain.NullFloat, len(indexes))
	}

	for i, a := range indexes {
		for j := i; j < len(indexes); j++ {
			b := indexes[j]

			x := make([]float64, 0, len(records))
			y := make([]float64, 0, len(records))
			for _, r := range records {
				va, vb := domain.ParseNullFloat(r.Cell(a)), domain.ParseNullFloat(r.Cell(b))
				if va.Valid && vb.Valid {
					x = append(x, va.Float64)
					y = append(y, vb.Float64)
				}
			}

			value := domain.NullFloat{}
			if len(x) >= 2 {
				if c := stat.Correlation(x, y, nil); !math.IsNaN(c) && !math.IsInf(c, 0) {
					value = domain.Float(c)
				}
			}
			matrix[i][j] = value
			matrix[j][i] = value
		}
	}

	return names, matrix
}

// writeSummary grava a planilha com KPIs, ranking de municípios, caixas por setor e correlações
func writeSummary(path string, columns []string, records []domain.Record) error {
	workbook := spreadsheet.NewWorkbook()
	defer workbook.Close()

	kpis := dashboarding.ComputeKPIs(records)
	err := workbook.AddSheet("KPIs", []string{"Indicador", "Valor"}, [][]any{
		{"Total de empresas", kpis.TotalCompanies},
		{"Promedio de ventas mensuales (Millones)", utils.RoundWithTwoDecimalPlace(kpis.AverageMonthlySales)},
		{"Total de empleados", kpis.TotalEmployees},
		{"Sectores activos", kpis.ActiveSectorCount},
	})
	if err != nil {
		return err
	}

	bar := dashboarding.BuildMunicipalityBar(records, dashboarding.TopMunicipalities)
	municipalities := make([][]any, 0, len(bar.Bars))
	for _, entry := range bar.Bars {
		municipalities = append(municipalities, []any{entry.Label, entry.Count})
	}
	if err := workbook.AddSheet("Municipios", []string{domain.ColumnMunicipality, "Empresas"}, municipalities); err != nil {
		return err
	}

	box := dashboarding.BuildBoxPlot(records)
	sectors := make([][]any, 0, len(box.Groups))
	for _, group := range box.Groups {
		row := []any{group.Sector, group.Count}
		if s := group.Summary; s != nil {
			row = append(row, s.Min, s.Q1, s.Median, s.Q3, s.Max, len(s.Outliers))
		}
		sectors = append(sectors, row)
	}
	err = workbook.AddSheet("Sectores", []string{domain.ColumnSector, "Con ventas", "Min", "Q1", "Mediana", "Q3", "Max", "Atipicos"}, sectors)
	if err != nil {
		return err
	}

	names, matrix := CorrelationMatrix(columns, records)
	correlation := make([][]any, 0, len(names))
	for i, name := range names {
		row := []any{name}
		for _, v := range matrix[i] {
			if v.Valid {
				row = append(row, math.Round(v.Float64*1000)/1000)
			} else {
				row = append(row, nil)
			}
		}
		correlation = append(correlation, row)
	}
	if err := workbook.AddSheet("Correlacion", append([]string{""}, names...), correlation); err != nil {
		return err
	}

	return workbook.SaveAs(path)
}
