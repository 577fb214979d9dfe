package exporting

import "errors"

var (
	ErrNoData          = errors.New("no data to plot")
	ErrCreateOutputDir = errors.New("error creating export directory")
	ErrGenerateRunID   = errors.New("error generating export run ID")
)
