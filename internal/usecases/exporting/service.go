// Package exporting gera a versão estática do relatório: PNGs dos gráficos e planilha de resumo
package exporting

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/pkg/utils"
)

// Arquivos gerados em cada execução
const (
	FileHistogram       = "histograma_ventas.png"
	FileBoxPlot         = "boxplot_ventas_sector.png"
	FileGenderPie       = "torta_genero.png"
	FileMunicipalityBar = "top_municipios.png"
	FileScatter         = "dispersion_empleados_ventas.png"
	FileSummary         = "resumen.xlsx"
)

type artifact struct {
	file   string
	render func(records []domain.Record, path string) error
}

var artifacts = []artifact{
	{FileHistogram, renderHistogram},
	{FileBoxPlot, renderBoxPlot},
	{FileGenderPie, renderGenderPie},
	{FileMunicipalityBar, renderMunicipalityBar},
	{FileScatter, renderScatter},
}

type Service struct {
	dataset   *domain.Dataset
	outputDir string
	now       func() time.Time
	newID     func() (string, error)
}

func NewService(cfg *config.Config, dataset *domain.Dataset) Exporter {
	return &Service{
		dataset:   dataset,
		outputDir: cfg.ChartExport.Dir,
		now:       time.Now,
		newID:     utils.GenerateRunID,
	}
}

// Export grava os gráficos do dataset completo em <EXPORT_DIR>/<timestamp>-<id>/.
// Falhas de um gráfico não interrompem os demais; só a criação do diretório é fatal.
func (s *Service) Export(ctx context.Context) (*domain.ExportReport, error) {
	startedAt := s.now()

	runID, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateRunID, err.Error())
	}

	dir := filepath.Join(s.outputDir, startedAt.Format("20060102-150405")+"-"+runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(ErrCreateOutputDir, err.Error())
	}

	report := &domain.ExportReport{
		RunID:     runID,
		Directory: dir,
		Files:     []string{},
		StartedAt: startedAt,
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"export_dir": dir,
	})
	logger.Info("Iniciando exportação de gráficos")

	records := s.dataset.Records()

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			report.Errors = append(report.Errors, "exportação cancelada: "+err.Error())
			break
		}

		path := filepath.Join(dir, a.file)
		if err := a.render(records, path); err != nil {
			if errors.Is(err, ErrNoData) {
				logger.Warnf("Gráfico %s ignorado: sem dados", a.file)
				report.Skipped = append(report.Skipped, a.file)
				continue
			}
			logger.WithError(err).Errorf("Erro ao gerar %s", a.file)
			report.Errors = append(report.Errors, a.file+": "+err.Error())
			continue
		}
		report.Files = append(report.Files, a.file)
	}

	if ctx.Err() == nil {
		if err := writeSummary(filepath.Join(dir, FileSummary), s.dataset.Columns(), records); err != nil {
			logger.WithError(err).Error("Erro ao gerar planilha de resumo")
			report.Errors = append(report.Errors, FileSummary+": "+err.Error())
		} else {
			report.Files = append(report.Files, FileSummary)
		}
	}

	report.FinishedAt = s.now()

	logger.WithFields(logrus.Fields{
		"export_files":  len(report.Files),
		"export_errors": len(report.Errors),
		"duration_ms":   report.FinishedAt.Sub(startedAt).Milliseconds(),
	}).Info("Exportação de gráficos concluída")

	return report, nil
}
