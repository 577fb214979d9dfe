package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/empresas-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/empresas-dashboard/internal/api"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/internal/scheduler"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/empresas-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem dataset não há dashboard
	dataset, err := spreadsheet.LoadDataset(cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		logrus.WithError(err).WithField("dataset_path", cfg.Dataset.Path).Fatal("Erro ao carregar o dataset")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_path":    cfg.Dataset.Path,
		"dataset_records": dataset.Len(),
	}).Info("Dataset carregado com sucesso")

	dashboardService := dashboarding.NewService(dataset)
	authenticator := authenticating.NewService(cfg)
	exporter := exporting.NewService(cfg, dataset)

	chartExportService := scheduler.NewChartExportService(exporter, cfg)
	if err := chartExportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação de gráficos")
	} else {
		logrus.Info("Agendador de exportação de gráficos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		authenticator,
		chartExportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
