package cleaning

import (
	"strings"

	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

// Colunas tratadas pela limpeza, além das colunas do domínio
const (
	ColumnProduct       = "ProductoElaborado"
	ColumnProgram       = "ProgramaVinculado"
	ColumnAccompaniment = "AcompanamientoRecibido"
	noDataMarker        = "Sin datos"
	programSeparatorBug = ";x|"
	programSeparatorFix = ";"
)

// Rule transforma as células de uma coluna; changed indica se o valor mudou
type Rule struct {
	Name   string
	Column string
	Apply  func(value string) (cleaned string, changed bool)
}

// DefaultRules são as regras aplicadas à planilha bruta do censo
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "producto_sin_datos",
			Column: ColumnProduct,
			Apply: func(v string) (string, bool) {
				if v == noDataMarker {
					return "", true
				}
				return v, false
			},
		},
		{
			Name:   "programa_separador",
			Column: ColumnProgram,
			Apply: func(v string) (string, bool) {
				cleaned := strings.ReplaceAll(v, programSeparatorBug, programSeparatorFix)
				return cleaned, cleaned != v
			},
		},
		{
			Name:   "acompanamiento_no_reportado",
			Column: ColumnAccompaniment,
			Apply: func(v string) (string, bool) {
				if strings.TrimSpace(v) == "" {
					return domain.NotReported, true
				}
				return v, false
			},
		},
		{
			Name:   "ventas_numericas",
			Column: domain.ColumnMonthlySales,
			Apply: func(v string) (string, bool) {
				if strings.TrimSpace(v) == "" {
					return "", false
				}
				if !domain.ParseNullFloat(v).Valid {
					return "", true
				}
				return strings.TrimSpace(v), false
			},
		},
	}
}
