package exporting

import (
	"fmt"
	"os"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var palette = []drawing.Color{
	drawing.ColorFromHex("4e79a7"),
	drawing.ColorFromHex("f28e2b"),
	drawing.ColorFromHex("e15759"),
	drawing.ColorFromHex("76b7b2"),
	drawing.ColorFromHex("59a14f"),
	drawing.ColorFromHex("edc948"),
}

func renderChart(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// pieValues converte a pizza de gênero do dashboard em fatias do go-chart
func pieValues(records []domain.Record) []chart.Value {
	spec := dashboarding.BuildGenderPie(records)

	values := make([]chart.Value, 0, len(spec.Slices))
	for i, slice := range spec.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", slice.Label, slice.Share*100),
			Value: float64(slice.Count),
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}

	return values
}

func renderGenderPie(records []domain.Record, path string) error {
	values := pieValues(records)
	if len(values) == 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Title:  "Distribución por Género del Responsable",
		Width:  900,
		Height: 900,
		Values: values,
	}

	return renderChart(path, func(f *os.File) error {
		return pie.Render(chart.PNG, f)
	})
}

// barValues retorna os 10 municípios com mais empresas e o maior valor, para fixar o eixo Y
func barValues(records []domain.Record) ([]chart.Value, float64) {
	spec := dashboarding.BuildMunicipalityBar(records, dashboarding.TopMunicipalities)

	values := make([]chart.Value, 0, len(spec.Bars))
	maxCount := 0.0
	for _, bar := range spec.Bars {
		values = append(values, chart.Value{
			Label: bar.Label,
			Value: float64(bar.Count),
			Style: chart.Style{FillColor: palette[0], StrokeColor: palette[0]},
		})
		maxCount = max(maxCount, float64(bar.Count))
	}

	return values, maxCount
}

func renderMunicipalityBar(records []domain.Record, path string) error {
	values, maxCount := barValues(records)
	if len(values) == 0 {
		return ErrNoData
	}

	bar := chart.BarChart{
		Title:      "Top 10 Municipios con Más Empresas",
		Width:      1200,
		Height:     700,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 16, Right: 16, Bottom: 90}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  "Número de empresas",
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount * 1.1},
		},
		Bars: values,
	}

	return renderChart(path, func(f *os.File) error {
		return bar.Render(chart.PNG, f)
	})
}
