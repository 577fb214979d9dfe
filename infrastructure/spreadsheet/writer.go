package spreadsheet

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook monta um arquivo xlsx aba por aba
type Workbook struct {
	file   *excelize.File
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// AddSheet cria uma aba com cabeçalho na linha 1 e os dados a partir da linha 2
func (w *Workbook) AddSheet(name string, headers []string, rows [][]any) error {
	if w.sheets == 0 {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return errors.Wrapf(err, "falha ao renomear aba para %q", name)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return errors.Wrapf(err, "falha ao criar aba %q", name)
	}
	w.sheets++

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(name, cell, header); err != nil {
			return errors.Wrapf(err, "falha ao escrever cabeçalho %q", header)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(name, cell, &row); err != nil {
			return errors.Wrapf(err, "falha ao escrever linha %d da aba %q", i+2, name)
		}
	}

	return nil
}

// SaveAs grava o arquivo, criando o diretório de destino se necessário
func (w *Workbook) SaveAs(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "falha ao criar diretório %s", dir)
		}
	}

	if err := w.file.SaveAs(path); err != nil {
		return errors.Wrapf(err, "falha ao salvar %s", path)
	}
	return nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// WriteTable grava uma única aba com células de texto
func WriteTable(path, sheet string, table *Table) error {
	rows := make([][]any, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		rows = append(rows, cells)
	}

	return WriteRows(path, sheet, table.Headers, rows)
}

// WriteRows grava uma única aba com células tipadas (números continuam números)
func WriteRows(path, sheet string, headers []string, rows [][]any) error {
	workbook := NewWorkbook()
	defer workbook.Close()

	if err := workbook.AddSheet(sheet, headers, rows); err != nil {
		return err
	}

	return workbook.SaveAs(path)
}
