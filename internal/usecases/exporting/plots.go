package exporting

import (
	"image/color"
	"math"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Histograma estático usa 30 bins, como o relatório impresso
const staticHistogramBins = 30

var (
	plotWidth  = 12 * vg.Inch
	plotHeight = 7 * vg.Inch
	barColor   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// renderHistogram grava a distribuição das vendas mensais do dataset completo
func renderHistogram(records []domain.Record, path string) error {
	values := make(plotter.Values, 0, len(records))
	for _, r := range records {
		if r.MonthlySales.Valid {
			values = append(values, r.MonthlySales.Float64)
		}
	}
	if len(values) == 0 {
		return ErrNoData
	}

	p := newPlot("Distribución de Ventas Mensuales", domain.ColumnMonthlySales, "Frecuencia")

	hist, err := plotter.NewHist(values, staticHistogramBins)
	if err != nil {
		return err
	}
	hist.FillColor = barColor
	hist.LineStyle.Width = vg.Length(0)
	p.Add(hist)

	return p.Save(plotWidth, plotHeight, path)
}

// boxSeries separa as vendas por setor, na ordem do gráfico do dashboard, sem setores vazios
func boxSeries(records []domain.Record) ([]string, []plotter.Values) {
	spec := dashboarding.BuildBoxPlot(records)

	values := make(map[string]plotter.Values)
	for _, r := range records {
		if r.Sector != "" && r.MonthlySales.Valid {
			values[r.Sector] = append(values[r.Sector], r.MonthlySales.Float64)
		}
	}

	names := make([]string, 0, len(spec.Groups))
	series := make([]plotter.Values, 0, len(spec.Groups))
	for _, group := range spec.Groups {
		if group.Count == 0 {
			continue
		}
		names = append(names, group.Sector)
		series = append(series, values[group.Sector])
	}

	return names, series
}

func renderBoxPlot(records []domain.Record, path string) error {
	names, series := boxSeries(records)
	if len(series) == 0 {
		return ErrNoData
	}

	p := newPlot("Ventas Mensuales por Sector Productivo", domain.ColumnSector, domain.ColumnMonthlySales)

	for i, values := range series {
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), values)
		if err != nil {
			return err
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p.Save(plotWidth, plotHeight, path)
}

// renderScatter cruza empregados e vendas por setor; o raio acompanha o tamanho do ponto do dashboard
func renderScatter(records []domain.Record, path string) error {
	spec := dashboarding.BuildScatter(records)
	if len(spec.Series) == 0 {
		return ErrNoData
	}

	p := newPlot("Empleados vs Ventas Mensuales por Sector", spec.XLabel, spec.YLabel)
	p.Legend.Top = true

	for i, series := range spec.Series {
		xys := make(plotter.XYs, len(series.Points))
		for j, point := range series.Points {
			xys[j].X = point.X
			xys[j].Y = point.Y
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}

		points := series.Points
		fill := plotutil.Color(i)
		scatter.GlyphStyleFunc = func(j int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  fill,
				Shape:  draw.CircleGlyph{},
				Radius: vg.Points(2 + points[j].Size/2),
			}
		}

		p.Add(scatter)
		p.Legend.Add(series.Sector, scatter)
	}

	return p.Save(plotWidth, plotHeight, path)
}
