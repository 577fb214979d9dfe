package domain

// SalesRange é um intervalo fechado [Min, Max] de vendas mensais
type SalesRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains informa se o valor está no intervalo; nulos nunca estão
func (r SalesRange) Contains(v NullFloat) bool {
	return v.Valid && v.Float64 >= r.Min && v.Float64 <= r.Max
}

// FilterState são os três critérios independentes do dashboard.
// Sector vazio, Municipalities vazio e SalesRange nil não restringem nada.
type FilterState struct {
	Sector         string      `json:"sector,omitempty"`
	Municipalities []string    `json:"municipalities,omitempty"`
	SalesRange     *SalesRange `json:"sales_range,omitempty"`
}

// FilterOptions é o universo de valores que a interface pode oferecer
type FilterOptions struct {
	Sectors        []string   `json:"sectors"`
	Municipalities []string   `json:"municipalities"`
	SalesBounds    SalesRange `json:"sales_bounds"`
	Columns        []string   `json:"columns"`
	RecordCount    int        `json:"record_count"`
}

// Direções de ordenação da tabela
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TableQuery são as operações secundárias aplicadas sobre a janela da tabela
type TableQuery struct {
	SortBy  string            `json:"sort_by,omitempty"`
	SortDir string            `json:"sort_dir,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Page    int               `json:"page"`
}
