package dashboarding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

func TestBuildHistogram(t *testing.T) {
	t.Run("bins de mesma largura incluindo o máximo", func(t *testing.T) {
		spec := BuildHistogram(salesRecords(t, "Agro", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 5)

		require.Len(t, spec.Bins, 5)
		counts := make([]int, 0, 5)
		for _, bin := range spec.Bins {
			counts = append(counts, bin.Count)
		}
		assert.Equal(t, []int{2, 2, 2, 2, 3}, counts)
		assert.Equal(t, 0.0, spec.Bins[0].Start)
		assert.Equal(t, 10.0, spec.Bins[4].End)
	})

	t.Run("valores nulos são ignorados", func(t *testing.T) {
		rs := records(t, [][]string{
			{"A", "Agro", "Tunja", "", "1", "F"},
			{"B", "Agro", "Tunja", "7", "1", "F"},
		})
		spec := BuildHistogram(rs, HistogramBins)

		require.Len(t, spec.Bins, HistogramBins)
		total := 0
		for _, bin := range spec.Bins {
			total += bin.Count
		}
		assert.Equal(t, 1, total)
		assert.Equal(t, 6.5, spec.Bins[0].Start)
		assert.Equal(t, 7.5, spec.Bins[HistogramBins-1].End)
	})

	t.Run("entrada vazia", func(t *testing.T) {
		spec := BuildHistogram(nil, HistogramBins)
		assert.Empty(t, spec.Bins)
		assert.NotNil(t, spec.Bins)
	})
}

func TestBuildBoxPlot(t *testing.T) {
	rs := append(salesRecords(t, "Agro", 4, 1, 100, 3, 2), records(t, [][]string{
		{"Sem vendas", "Turismo", "Paipa", "", "1", "F"},
		{"Sem setor", "", "Paipa", "5", "1", "F"},
	})...)

	spec := BuildBoxPlot(rs)

	require.Len(t, spec.Groups, 2)

	agro := spec.Groups[0]
	assert.Equal(t, "Agro", agro.Sector)
	assert.Equal(t, 5, agro.Count)
	assert.Equal(t, &domain.BoxSummary{
		Min:          1,
		Q1:           2,
		Median:       3,
		Q3:           4,
		Max:          100,
		LowerWhisker: 1,
		UpperWhisker: 4,
		Outliers:     []float64{100},
	}, agro.Summary)

	turismo := spec.Groups[1]
	assert.Equal(t, "Turismo", turismo.Sector)
	assert.Equal(t, 0, turismo.Count)
	assert.Nil(t, turismo.Summary)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.Equal(t, 1.75, quantile(sorted, 0.25))
	assert.Equal(t, 2.5, quantile(sorted, 0.5))
	assert.Equal(t, 3.25, quantile(sorted, 0.75))
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.25))
	assert.Equal(t, 0.0, quantile(nil, 0.5))
}

func TestBuildGenderPie(t *testing.T) {
	rs := records(t, [][]string{
		{"A", "Agro", "Tunja", "1", "1", "M"},
		{"B", "Agro", "Tunja", "1", "1", ""},
		{"C", "Agro", "Tunja", "1", "1", "F"},
		{"D", "Agro", "Tunja", "1", "1", "F"},
	})

	spec := BuildGenderPie(rs)

	assert.Equal(t, 4, spec.Total)
	assert.Equal(t, []domain.PieSlice{
		{Label: "F", Count: 2, Share: 0.5},
		{Label: "M", Count: 1, Share: 0.25},
		{Label: domain.NotReported, Count: 1, Share: 0.25},
	}, spec.Slices)

	sum := 0.0
	for _, slice := range spec.Slices {
		sum += slice.Share
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBuildMunicipalityBar(t *testing.T) {
	t.Run("empates pela ordem de primeira aparição", func(t *testing.T) {
		rs := records(t, [][]string{
			{"1", "Agro", "Paipa", "1", "1", "F"},
			{"2", "Agro", "Duitama", "1", "1", "F"},
			{"3", "Agro", "Tunja", "1", "1", "F"},
			{"4", "Agro", "Duitama", "1", "1", "F"},
			{"5", "Agro", "Paipa", "1", "1", "F"},
			{"6", "Agro", "", "1", "1", "F"},
			{"7", "Agro", "", "1", "1", "F"},
			{"8", "Agro", "", "1", "1", "F"},
		})

		spec := BuildMunicipalityBar(rs, TopMunicipalities)

		assert.Equal(t, "h", spec.Orientation)
		assert.Equal(t, []domain.BarEntry{
			{Label: "Paipa", Count: 2},
			{Label: "Duitama", Count: 2},
			{Label: "Tunja", Count: 1},
		}, spec.Bars)
	})

	t.Run("limitado aos 10 maiores", func(t *testing.T) {
		rows := make([][]string, 0)
		for i := 0; i < 12; i++ {
			for j := 0; j <= i; j++ {
				rows = append(rows, []string{"x", "Agro", fmt.Sprintf("M%02d", i), "1", "1", "F"})
			}
		}

		spec := BuildMunicipalityBar(records(t, rows), TopMunicipalities)

		require.Len(t, spec.Bars, 10)
		assert.Equal(t, "M11", spec.Bars[0].Label)
		for i := 1; i < len(spec.Bars); i++ {
			assert.GreaterOrEqual(t, spec.Bars[i-1].Count, spec.Bars[i].Count)
		}
	})
}

func TestBuildScatter(t *testing.T) {
	rs := records(t, [][]string{
		{"A", "Agro", "Tunja", "50", "10", "F"},
		{"B", "Textil", "Tunja", "25", "4", "M"},
		{"C", "Agro", "Tunja", "", "3", "F"},
		{"D", "Agro", "Tunja", "5", "", "F"},
		{"E", "", "Tunja", "-5", "1", "F"},
	})

	spec := BuildScatter(rs)

	assert.Equal(t, ScatterSizeMax, spec.SizeMax)
	assert.Equal(t, []domain.ScatterSeries{
		{Sector: "Agro", Points: []domain.ScatterPoint{{X: 10, Y: 50, Size: 25, Company: "A"}}},
		{Sector: "Textil", Points: []domain.ScatterPoint{{X: 4, Y: 25, Size: 12.5, Company: "B"}}},
		{Sector: domain.NotReported, Points: []domain.ScatterPoint{{X: 1, Y: -5, Size: 0, Company: "E"}}},
	}, spec.Series)
}
