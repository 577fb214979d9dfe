package domain

// DerivedView é a saída completa de uma interação com o dashboard
type DerivedView struct {
	Filters       FilterState `json:"filters"`
	FilteredCount int         `json:"filtered_count"`
	KPIs          KPIs        `json:"kpis"`
	Charts        Charts      `json:"charts"`
	Table         TableView   `json:"table"`
}

type KPIs struct {
	TotalCompanies      int     `json:"total_companies"`
	AverageMonthlySales float64 `json:"average_monthly_sales"`
	TotalEmployees      float64 `json:"total_employees"`
	ActiveSectorCount   int     `json:"active_sector_count"`
}

type Charts struct {
	Histogram       HistogramSpec `json:"histogram"`
	BoxPlot         BoxPlotSpec   `json:"box_plot"`
	GenderPie       PieSpec       `json:"gender_pie"`
	MunicipalityBar BarSpec       `json:"municipality_bar"`
	Scatter         ScatterSpec   `json:"scatter"`
}

type HistogramSpec struct {
	Title    string         `json:"title"`
	XLabel   string         `json:"x_label"`
	BinCount int            `json:"bin_count"`
	Bins     []HistogramBin `json:"bins"`
}

type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

type BoxPlotSpec struct {
	Title  string     `json:"title"`
	XLabel string     `json:"x_label"`
	YLabel string     `json:"y_label"`
	Groups []BoxGroup `json:"groups"`
}

// BoxGroup é a caixa de um setor; Summary é nil quando o setor não tem vendas preenchidas
type BoxGroup struct {
	Sector  string      `json:"sector"`
	Count   int         `json:"count"`
	Summary *BoxSummary `json:"summary"`
}

type BoxSummary struct {
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

type PieSpec struct {
	Title  string     `json:"title"`
	Total  int        `json:"total"`
	Slices []PieSlice `json:"slices"`
}

type PieSlice struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

type BarSpec struct {
	Title       string     `json:"title"`
	Orientation string     `json:"orientation"`
	Bars        []BarEntry `json:"bars"`
}

type BarEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ScatterSpec struct {
	Title   string          `json:"title"`
	XLabel  string          `json:"x_label"`
	YLabel  string          `json:"y_label"`
	SizeMax float64         `json:"size_max"`
	Series  []ScatterSeries `json:"series"`
}

type ScatterSeries struct {
	Sector string         `json:"sector"`
	Points []ScatterPoint `json:"points"`
}

type ScatterPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Company string  `json:"company"`
}

type TableColumn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableView é a página atual da janela de até 20 linhas da tabela
type TableView struct {
	Columns    []TableColumn       `json:"columns"`
	Rows       []map[string]string `json:"rows"`
	WindowSize int                 `json:"window_size"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	PageCount  int                 `json:"page_count"`
	SortBy     string              `json:"sort_by,omitempty"`
	SortDir    string              `json:"sort_dir,omitempty"`
}
