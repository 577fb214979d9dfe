package domain

import (
	"sort"
)

// Limites usados no filtro de vendas quando todos os valores são nulos
const (
	FallbackSalesMin = 0
	FallbackSalesMax = 100
)

// Dataset é a tabela de empresas carregada uma única vez na inicialização.
// Não existe nenhuma operação de escrita após NewDataset.
type Dataset struct {
	schema  Schema
	records []Record
}

// NewDataset cria o dataset a partir do schema e das linhas brutas
func NewDataset(schema Schema, rows [][]string) *Dataset {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, schema.ParseRecord(row))
	}

	return &Dataset{
		schema:  schema,
		records: records,
	}
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// At retorna o registro na posição i
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records retorna uma cópia da sequência completa de registros
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) Columns() []string {
	return d.schema.Columns()
}

// Sectors retorna os setores distintos não nulos, em ordem alfabética
func (d *Dataset) Sectors() []string {
	return d.distinct(func(r Record) string { return r.Sector })
}

// Municipalities retorna os municípios distintos não nulos, em ordem alfabética
func (d *Dataset) Municipalities() []string {
	return d.distinct(func(r Record) string { return r.Municipality })
}

// SalesBounds retorna o intervalo observado de vendas mensais,
// ou [0, 100] quando não há nenhum valor preenchido
func (d *Dataset) SalesBounds() SalesRange {
	bounds := SalesRange{}
	found := false

	for _, r := range d.records {
		if !r.MonthlySales.Valid {
			continue
		}
		v := r.MonthlySales.Float64
		if !found {
			bounds.Min, bounds.Max = v, v
			found = true
			continue
		}
		if v < bounds.Min {
			bounds.Min = v
		}
		if v > bounds.Max {
			bounds.Max = v
		}
	}

	if !found {
		return SalesRange{Min: FallbackSalesMin, Max: FallbackSalesMax}
	}

	return bounds
}

func (d *Dataset) distinct(field func(Record) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range d.records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
