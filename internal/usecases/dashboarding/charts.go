package dashboarding

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Parâmetros fixos dos gráficos do dashboard
const (
	HistogramBins     = 25
	TopMunicipalities = 10
	ScatterSizeMax    = 25.0
	WhiskerFactor     = 1.5
)

const orientationHorizontal = "h"

// BuildHistogram distribui as vendas mensais não nulas em bins de mesma largura.
// Quando todos os valores são iguais o intervalo vira [v-0.5, v+0.5].
func BuildHistogram(records []domain.Record, bins int) domain.HistogramSpec {
	spec := domain.HistogramSpec{
		Title:    "Distribución de Ventas Mensuales",
		XLabel:   domain.ColumnMonthlySales,
		BinCount: bins,
		Bins:     []domain.HistogramBin{},
	}

	values := salesValues(records)
	if len(values) == 0 || bins <= 0 {
		return spec
	}

	sort.Float64s(values)
	lo, hi := values[0], values[len(values)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// o último divisor é aberto em stat.Histogram, então o máximo precisa caber nele
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, values, nil)
	for i, count := range counts {
		spec.Bins = append(spec.Bins, domain.HistogramBin{
			Start: edges[i],
			End:   edges[i+1],
			Count: int(count),
		})
	}

	return spec
}

// BuildBoxPlot resume as vendas mensais por setor, na ordem de primeira aparição
func BuildBoxPlot(records []domain.Record) domain.BoxPlotSpec {
	spec := domain.BoxPlotSpec{
		Title:  "Análisis de Ventas por Sector Productivo",
		XLabel: domain.ColumnSector,
		YLabel: domain.ColumnMonthlySales,
		Groups: []domain.BoxGroup{},
	}

	order := make([]string, 0)
	groups := make(map[string][]float64)
	for _, r := range records {
		if r.Sector == "" {
			continue
		}
		if _, seen := groups[r.Sector]; !seen {
			order = append(order, r.Sector)
			groups[r.Sector] = make([]float64, 0)
		}
		if r.MonthlySales.Valid {
			groups[r.Sector] = append(groups[r.Sector], r.MonthlySales.Float64)
		}
	}

	for _, sector := range order {
		values := groups[sector]
		spec.Groups = append(spec.Groups, domain.BoxGroup{
			Sector:  sector,
			Count:   len(values),
			Summary: summarize(values),
		})
	}

	return spec
}

func summarize(values []float64) *domain.BoxSummary {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	minValue, _ := stats.Min(sorted)
	maxValue, _ := stats.Max(sorted)
	median, _ := stats.Median(sorted)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	iqr := q3 - q1
	lowerFence := q1 - WhiskerFactor*iqr
	upperFence := q3 + WhiskerFactor*iqr

	summary := &domain.BoxSummary{
		Min:          minValue,
		Q1:           q1,
		Median:       median,
		Q3:           q3,
		Max:          maxValue,
		LowerWhisker: math.Inf(1),
		UpperWhisker: math.Inf(-1),
		Outliers:     []float64{},
	}

	for _, v := range sorted {
		if v < lowerFence || v > upperFence {
			summary.Outliers = append(summary.Outliers, v)
			continue
		}
		summary.LowerWhisker = math.Min(summary.LowerWhisker, v)
		summary.UpperWhisker = math.Max(summary.UpperWhisker, v)
	}

	if math.IsInf(summary.LowerWhisker, 1) {
		summary.LowerWhisker, summary.UpperWhisker = q1, q3
	}

	return summary
}

// BuildGenderPie conta os registros por gênero do responsável.
// Gênero vazio entra na fatia "No reportado".
func BuildGenderPie(records []domain.Record) domain.PieSpec {
	spec := domain.PieSpec{
		Title:  "Distribución por Género del Responsable",
		Total:  len(records),
		Slices: []domain.PieSlice{},
	}

	if len(records) == 0 {
		return spec
	}

	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, labelOrNotReported(r.Gender))
	}

	for _, ranked := range rankByCount(labels) {
		spec.Slices = append(spec.Slices, domain.PieSlice{
			Label: ranked.value,
			Count: ranked.count,
			Share: utils.Share(ranked.count, len(records)),
		})
	}

	return spec
}

// BuildMunicipalityBar retorna os municípios com mais empresas, limitado a limit barras
func BuildMunicipalityBar(records []domain.Record, limit int) domain.BarSpec {
	spec := domain.BarSpec{
		Title:       "Top 10 Municipios por Número de Empresas",
		Orientation: orientationHorizontal,
		Bars:        []domain.BarEntry{},
	}

	municipalities := make([]string, 0, len(records))
	for _, r := range records {
		if r.Municipality != "" {
			municipalities = append(municipalities, r.Municipality)
		}
	}

	for _, ranked := range rankByCount(municipalities) {
		if len(spec.Bars) >= limit {
			break
		}
		spec.Bars = append(spec.Bars, domain.BarEntry{
			Label: ranked.value,
			Count: ranked.count,
		})
	}

	return spec
}

// BuildScatter cruza empregados (x) e vendas (y) por setor.
// Registros com algum dos eixos nulo ficam fora apenas deste gráfico.
func BuildScatter(records []domain.Record) domain.ScatterSpec {
	spec := domain.ScatterSpec{
		Title:   "Relación Empleados vs Ventas por Sector",
		XLabel:  domain.ColumnEmployees,
		YLabel:  domain.ColumnMonthlySales,
		SizeMax: ScatterSizeMax,
		Series:  []domain.ScatterSeries{},
	}

	points := make([]domain.Record, 0, len(records))
	maxY := 0.0
	for _, r := range records {
		if !r.EmployeeCount.Valid || !r.MonthlySales.Valid {
			continue
		}
		points = append(points, r)
		maxY = math.Max(maxY, r.MonthlySales.Float64)
	}

	index := make(map[string]int)
	for _, r := range points {
		sector := labelOrNotReported(r.Sector)
		i, ok := index[sector]
		if !ok {
			i = len(spec.Series)
			index[sector] = i
			spec.Series = append(spec.Series, domain.ScatterSeries{
				Sector: sector,
				Points: []domain.ScatterPoint{},
			})
		}

		y := r.MonthlySales.Float64
		size := 0.0
		if maxY > 0 {
			size = ScatterSizeMax * math.Max(y, 0) / maxY
		}

		spec.Series[i].Points = append(spec.Series[i].Points, domain.ScatterPoint{
			X:       r.EmployeeCount.Float64,
			Y:       y,
			Size:    size,
			Company: r.CompanyName,
		})
	}

	return spec
}

func salesValues(records []domain.Record) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if r.MonthlySales.Valid {
			values = append(values, r.MonthlySales.Float64)
		}
	}
	return values
}

func labelOrNotReported(value string) string {
	if value == "" {
		return domain.NotReported
	}
	return value
}
