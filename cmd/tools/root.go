package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/pkg/log"
)

var (
	flagDatasetPath string
	flagSheet       string
)

var rootCmd = &cobra.Command{
	Use:           "tools",
	Short:         "Ferramentas offline do dashboard de empresas de Boyacá",
	Long:          "Limpa a planilha bruta do censo e exporta os gráficos estáticos do dataset limpo.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute é o ponto de entrada chamado pelo main
func Execute() {
	// Ctrl+C interrompe a exportação entre um gráfico e outro
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logrus.WithError(err).Error("Comando falhou")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatasetPath, "dataset", "", "Planilha limpa (padrão: DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "Aba da planilha limpa (padrão: DATASET_SHEET)")
}

// loadConfig carrega a configuração e aplica os flags globais por cima do ambiente
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel)

	if flagDatasetPath != "" {
		cfg.Dataset.Path = flagDatasetPath
	}
	if flagSheet != "" {
		cfg.Dataset.Sheet = flagSheet
	}

	return cfg, nil
}
