// Package cleaning normaliza a planilha bruta do censo antes de ela alimentar o dashboard
package cleaning

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/empresas-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
)

// OutputSheet é o nome da aba gravada na planilha limpa
const OutputSheet = "Sheet1"

var ErrReadRawDataset = errors.New("error reading raw dataset")

type Cleaner interface {
	Clean(ctx context.Context) (*domain.CleaningReport, error)
}

type Service struct {
	source      string
	sheet       string
	destination string
	rules       []Rule
}

func NewService(cfg *config.Config) Cleaner {
	return &Service{
		source:      cfg.Cleaning.RawPath,
		sheet:       cfg.Cleaning.RawSheet,
		destination: cfg.Dataset.Path,
		rules:       DefaultRules(),
	}
}

// Clean lê a planilha bruta, aplica as regras e grava a planilha limpa
func (s *Service) Clean(ctx context.Context) (*domain.CleaningReport, error) {
	table, err := spreadsheet.NewReader(s.source, s.sheet).ReadTable()
	if err != nil {
		return nil, errors.Wrap(ErrReadRawDataset, err.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, report := Apply(table, s.rules)
	report.Source = s.source
	report.Destination = s.destination

	if err := spreadsheet.WriteRows(s.destination, OutputSheet, table.Headers, rows); err != nil {
		return nil, errors.Wrap(err, "falha ao gravar planilha limpa")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_source":      s.source,
		"dataset_destination": s.destination,
		"records":             report.Rows,
	}).Info("Limpeza concluída")

	return report, nil
}

// Apply executa as regras sobre a tabela e devolve as linhas com células tipadas.
// Regras cuja coluna não existe são ignoradas e listadas no relatório.
func Apply(table *spreadsheet.Table, rules []Rule) ([][]any, *domain.CleaningReport) {
	report := &domain.CleaningReport{
		Rows:         len(table.Rows),
		ChangedCells: make(map[string]int),
	}

	position := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		if _, exists := position[h]; !exists {
			position[h] = i
		}
	}

	active := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if _, ok := position[rule.Column]; !ok {
			report.SkippedRules = append(report.SkippedRules, rule.Name)
			logrus.WithField("dataset_column", rule.Column).Warnf("Regra %s ignorada: coluna ausente", rule.Name)
			continue
		}
		active = append(active, rule)
		report.ChangedCells[rule.Name] = 0
	}

	salesColumn, hasSales := position[domain.ColumnMonthlySales]
	cleaned := make([][]any, 0, len(table.Rows))

	for _, row := range table.Rows {
		cells := make([]string, len(table.Headers))
		copy(cells, row)

		for _, rule := range active {
			i := position[rule.Column]
			value, changed := rule.Apply(cells[i])
			if !changed {
				continue
			}
			report.ChangedCells[rule.Name]++
			if hasSales && i == salesColumn && value == "" {
				report.CoercedToNull++
			}
			cells[i] = value
		}

		typed := make([]any, len(cells))
		for i, v := range cells {
			typed[i] = typedCell(v)
		}
		cleaned = append(cleaned, typed)
	}

	return cleaned, report
}

// typedCell grava números como números; códigos com zero à esquerda continuam texto
func typedCell(value string) any {
	if value == "" {
		return nil
	}
	if len(value) > 1 && strings.HasPrefix(value, "0") && !strings.HasPrefix(value, "0.") {
		return value
	}
	if n := domain.ParseNullFloat(value); n.Valid {
		return n.Float64
	}
	return value
}
