// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Colunas obrigatórias da planilha do censo empresarial
const (
	ColumnSector       = "SectorProductivo"
	ColumnMunicipality = "Municipio"
	ColumnMonthlySales = "Ventas mensuales (Millones)"
	ColumnEmployees    = "Numero empleados"
	ColumnGender       = "Genero responsable"
	ColumnCompanyName  = "NombreEmpresa"
)

// NotReported é o rótulo usado para valores categóricos ausentes
const NotReported = "No reportado"

// RequiredColumns lista as colunas que toda derivação do dashboard assume existir
var RequiredColumns = []string{
	ColumnSector,
	ColumnMunicipality,
	ColumnMonthlySales,
	ColumnEmployees,
	ColumnGender,
	ColumnCompanyName,
}

var ErrMissingColumn = errors.New("missing required column")

// NullFloat é um número que pode estar ausente na planilha
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// ParseNullFloat converte o texto de uma célula; vazio ou inválido vira nulo
func ParseNullFloat(raw string) NullFloat {
	value := strings.TrimSpace(raw)
	if value == "" {
		return NullFloat{}
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NullFloat{}
	}

	return NullFloat{Float64: f, Valid: true}
}

func Float(f float64) NullFloat {
	return NullFloat{Float64: f, Valid: true}
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return jsoniter.Marshal(n.Float64)
}

// Record é uma linha da planilha de empresas
type Record struct {
	CompanyName   string
	Sector        string
	Municipality  string
	Gender        string
	MonthlySales  NullFloat
	EmployeeCount NullFloat
	cells         []string
}

// Cell retorna o valor bruto da coluna na posição i, ou vazio
func (r Record) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Cells retorna uma cópia de todas as células na ordem declarada
func (r Record) Cells() []string {
	out := make([]string, len(r.cells))
	copy(out, r.cells)
	return out
}

// Schema guarda a ordem das colunas e a posição de cada coluna obrigatória
type Schema struct {
	columns      []string
	sector       int
	municipality int
	sales        int
	employees    int
	gender       int
	company      int
}

// NewSchema valida o cabeçalho e localiza as colunas obrigatórias
func NewSchema(headers []string) (Schema, error) {
	columns := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[i] = strings.TrimSpace(h)
		if _, exists := index[columns[i]]; !exists {
			index[columns[i]] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return -1, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return i, nil
	}

	schema := Schema{columns: columns}
	targets := []struct {
		name string
		dst  *int
	}{
		{ColumnSector, &schema.sector},
		{ColumnMunicipality, &schema.municipality},
		{ColumnMonthlySales, &schema.sales},
		{ColumnEmployees, &schema.employees},
		{ColumnGender, &schema.gender},
		{ColumnCompanyName, &schema.company},
	}

	for _, target := range targets {
		i, err := lookup(target.name)
		if err != nil {
			return Schema{}, err
		}
		*target.dst = i
	}

	return schema, nil
}

// Columns retorna uma cópia do cabeçalho
func (s Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// ParseRecord monta um Record a partir das células de uma linha.
// Linhas curtas são completadas com vazio e células extras são descartadas.
func (s Schema) ParseRecord(row []string) Record {
	cells := make([]string, len(s.columns))
	for i := range cells {
		if i < len(row) {
			cells[i] = strings.TrimSpace(row[i])
		}
	}

	return Record{
		CompanyName:   cells[s.company],
		Sector:        cells[s.sector],
		Municipality:  cells[s.municipality],
		Gender:        cells[s.gender],
		MonthlySales:  ParseNullFloat(cells[s.sales]),
		EmployeeCount: ParseNullFloat(cells[s.employees]),
		cells:         cells,
	}
}
