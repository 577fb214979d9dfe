// Package scheduler contém os serviços agendados do dashboard
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/exporting"
)

var ErrExportRunning = errors.New("chart export already running")

type ChartExportConfig struct {
	CronSchedule string
	Enabled      bool
}

// ChartExportService agenda a exportação estática dos gráficos e permite disparo manual
type ChartExportService struct {
	scheduler           *gocron.Scheduler
	exporter            exporting.Exporter
	config              ChartExportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.ExportReport
	lastError           string
}

func NewChartExportService(exporter exporting.Exporter, cfg *config.Config) *ChartExportService {
	exportConfig := ChartExportConfig{
		CronSchedule: cfg.ChartExport.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.ChartExport.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"export_cron":    exportConfig.CronSchedule,
		"export_enabled": exportConfig.Enabled,
	}).Info("Configuração do agendador de exportação de gráficos carregada")

	return &ChartExportService{
		scheduler: gocron.NewScheduler(time.Local),
		exporter:  exporter,
		config:    exportConfig,
	}
}

func (s *ChartExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de exportação de gráficos desabilitada por configuração")
		return nil
	}

	logrus.WithField("export_cron", s.config.CronSchedule).Info("Iniciando cron de exportação de gráficos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunExport(ctx); err != nil && !errors.Is(err, ErrExportRunning) {
			logrus.WithError(err).Error("Erro na exportação agendada de gráficos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de gráficos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de exportação de gráficos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunExport executa uma exportação; se já houver uma em andamento retorna ErrExportRunning
func (s *ChartExportService) RunExport(ctx context.Context) (*domain.ExportReport, error) {
	if !s.beginRun() {
		logrus.Warn("Exportação de gráficos já está em execução")
		return nil, ErrExportRunning
	}

	return s.runExport(ctx)
}

// TriggerManualExport reserva a execução e dispara a exportação em segundo plano
func (s *ChartExportService) TriggerManualExport() error {
	if !s.beginRun() {
		logrus.Info("Exportação de gráficos já em andamento, ignorando solicitação manual")
		return ErrExportRunning
	}

	logrus.Info("Iniciando exportação manual de gráficos")
	go func() {
		if _, err := s.runExport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na exportação manual de gráficos")
		}
	}()

	return nil
}

// beginRun marca a exportação como em andamento; false se outra já está rodando
func (s *ChartExportService) beginRun() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

// runExport só pode ser chamado por quem obteve beginRun; libera a marca ao terminar
func (s *ChartExportService) runExport(ctx context.Context) (*domain.ExportReport, error) {
	report, err := s.exporter.Export(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}
	s.lastError = ""
	s.lastReport = report

	return report, nil
}

// GetStatus retorna o status atual do agendador
func (s *ChartExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"export_enabled":           s.config.Enabled,
		"export_cron":              s.config.CronSchedule,
		"export_running":           s.syncRunning,
		"last_export_started_at":   s.lastSyncStartedAt,
		"last_export_completed_at": s.lastSyncCompletedAt,
		"last_export_error":        s.lastError,
		"last_export_report":       s.lastReport,
	}
}
