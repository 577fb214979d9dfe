// Package spreadsheet lê e escreve as planilhas do censo empresarial (xlsx e csv)
package spreadsheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	formatXLSX = "xlsx"
	formatCSV  = "csv"
)

// Table é o conteúdo bruto de uma aba: cabeçalho e linhas de dados
type Table struct {
	Headers []string
	Rows    [][]string
}

// Reader lê uma planilha xlsx (aba escolhida ou a primeira) ou um arquivo csv
type Reader struct {
	path   string
	sheet  string
	format string
}

func NewReader(path, sheet string) *Reader {
	format := formatXLSX
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		format = formatCSV
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
	default:
		format = ""
	}

	return &Reader{
		path:   path,
		sheet:  sheet,
		format: format,
	}
}

// ReadTable lê o arquivo inteiro; a primeira linha é o cabeçalho
func (r *Reader) ReadTable() (*Table, error) {
	start := time.Now()

	var (
		rows [][]string
		err  error
	)

	switch r.format {
	case formatXLSX:
		rows, err = r.readExcel()
	case formatCSV:
		rows, err = r.readCSV()
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "arquivo %s", r.path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptyFile, "arquivo %s", r.path)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	// Linhas em branco no meio da aba não são empresas
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if !isBlankRow(row) {
			data = append(data, row)
		}
	}

	logrus.WithFields(logrus.Fields{
		"dataset_path": r.path,
		"records":      len(data),
		"blank_rows":   len(rows) - 1 - len(data),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Debug("Planilha lida")

	return &Table{
		Headers: headers,
		Rows:    data,
	}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (r *Reader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir planilha")
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrapf(ErrEmptyFile, "arquivo %s", r.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler a aba %q", sheet)
	}

	return rows, nil
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir csv")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler csv")
	}

	return rows, nil
}

// LoadDataset lê a planilha limpa e valida as colunas obrigatórias.
// Qualquer erro aqui impede a inicialização do dashboard.
func LoadDataset(path, sheet string) (*domain.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, newLoadError(ErrDatasetUnreadable, path, err)
	}

	table, err := NewReader(path, sheet).ReadTable()
	if err != nil {
		return nil, newLoadError(ErrDatasetUnreadable, path, err)
	}

	schema, err := domain.NewSchema(table.Headers)
	if err != nil {
		return nil, newLoadError(domain.ErrMissingColumn, path, err)
	}

	dataset := domain.NewDataset(schema, table.Rows)

	logrus.WithFields(logrus.Fields{
		"dataset_path":    path,
		"dataset_columns": len(table.Headers),
		"records":         dataset.Len(),
	}).Info("Dataset carregado")

	return dataset, nil
}
