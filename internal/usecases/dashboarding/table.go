package dashboarding

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/pkg/apiErrors"
)

// Janela fixa da tabela
const (
	TableRowWindow    = 20
	TableColumnWindow = 8
	TablePageSize     = 10
)

// ProjectTable monta a página da tabela a partir das primeiras 20 linhas filtradas
// e das primeiras 8 colunas. Filtros por coluna e ordenação atuam só dentro dessa janela.
func ProjectTable(columns []string, records []domain.Record, query domain.TableQuery) (domain.TableView, error) {
	visible := columns
	if len(visible) > TableColumnWindow {
		visible = visible[:TableColumnWindow]
	}

	view := domain.TableView{
		Columns:  make([]domain.TableColumn, 0, len(visible)),
		Rows:     []map[string]string{},
		Page:     query.Page,
		PageSize: TablePageSize,
		SortBy:   query.SortBy,
		SortDir:  query.SortDir,
	}

	position := make(map[string]int, len(visible))
	for i, name := range visible {
		view.Columns = append(view.Columns, domain.TableColumn{ID: name, Name: name})
		if _, exists := position[name]; !exists {
			position[name] = i
		}
	}

	if err := validateQuery(query, position); err != nil {
		return domain.TableView{}, err
	}

	window := records
	if len(window) > TableRowWindow {
		window = window[:TableRowWindow]
	}

	rows := make([][]string, 0, len(window))
	for _, r := range window {
		row := make([]string, len(visible))
		for i := range visible {
			row[i] = r.Cell(i)
		}
		rows = append(rows, row)
	}

	rows = filterRows(rows, query.Filters, position)

	if query.SortBy != "" {
		sortRows(rows, position[query.SortBy], query.SortDir == domain.SortDesc)
	}

	view.WindowSize = len(rows)
	view.PageCount = (len(rows) + TablePageSize - 1) / TablePageSize

	start := query.Page * TablePageSize
	if start >= len(rows) {
		return view, nil
	}
	end := min(start+TablePageSize, len(rows))

	for _, row := range rows[start:end] {
		entry := make(map[string]string, len(visible))
		for i, name := range visible {
			if _, exists := entry[name]; !exists {
				entry[name] = row[i]
			}
		}
		view.Rows = append(view.Rows, entry)
	}

	return view, nil
}

func validateQuery(query domain.TableQuery, position map[string]int) error {
	if query.Page < 0 {
		return NewQueryError(ErrInvalidPage, apiErrors.ErrInvalidFormat, fmt.Sprintf("page %d", query.Page))
	}

	switch query.SortDir {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return NewQueryError(ErrInvalidSortDirection, apiErrors.ErrInvalidFormat, query.SortDir)
	}

	if query.SortBy != "" {
		if _, ok := position[query.SortBy]; !ok {
			return NewQueryError(ErrUnknownColumn, apiErrors.ErrUnknownColumn, query.SortBy)
		}
	}

	for column := range query.Filters {
		if _, ok := position[column]; !ok {
			return NewQueryError(ErrUnknownColumn, apiErrors.ErrUnknownColumn, column)
		}
	}

	return nil
}

// filterRows mantém as linhas cujas células contêm o termo de cada filtro, sem diferenciar maiúsculas
func filterRows(rows [][]string, filters map[string]string, position map[string]int) [][]string {
	type term struct {
		column int
		value  string
	}

	terms := make([]term, 0, len(filters))
	for column, value := range filters {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		terms = append(terms, term{column: position[column], value: value})
	}

	if len(terms) == 0 {
		return rows
	}

	filtered := make([][]string, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, t := range terms {
			if !strings.Contains(strings.ToLower(row[t.column]), t.value) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// sortRows ordena de forma estável pela coluna; células vazias ficam sempre no final
func sortRows(rows [][]string, column int, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][column], rows[j][column]
		if a == "" || b == "" {
			return a != "" && b == ""
		}

		cmp := compareCells(a, b)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compareCells compara numericamente quando as duas células são números, senão como texto
func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}
