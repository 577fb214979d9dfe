package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/cleaning"
)

var (
	flagRawPath  string
	flagRawSheet string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Limpa a planilha bruta e grava o dataset usado pelo dashboard",
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&flagRawPath, "raw", "", "Planilha bruta (padrão: RAW_DATASET_PATH)")
	cleanCmd.Flags().StringVar(&flagRawSheet, "raw-sheet", "", "Aba da planilha bruta (padrão: RAW_DATASET_SHEET)")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagRawPath != "" {
		cfg.Cleaning.RawPath = flagRawPath
	}
	if flagRawSheet != "" {
		cfg.Cleaning.RawSheet = flagRawSheet
	}

	report, err := cleaning.NewService(cfg).Clean(cmd.Context())
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"dataset_source":      report.Source,
		"dataset_destination": report.Destination,
		"records":             report.Rows,
		"changed_cells":       report.ChangedCells,
		"skipped_rules":       report.SkippedRules,
		"coerced_to_null":     report.CoercedToNull,
	}).Info("Limpeza concluída")

	return nil
}
