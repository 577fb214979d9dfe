package domain

import "time"

// ExportReport descreve uma execução da exportação estática de gráficos
type ExportReport struct {
	RunID      string    `json:"run_id"`
	Directory  string    `json:"directory"`
	Files      []string  `json:"files"`
	Skipped    []string  `json:"skipped,omitempty"`
	Errors     []string  `json:"errors,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// CleaningReport descreve o resultado da limpeza da planilha bruta
type CleaningReport struct {
	Source        string         `json:"source"`
	Destination   string         `json:"destination"`
	Rows          int            `json:"rows"`
	ChangedCells  map[string]int `json:"changed_cells"`
	SkippedRules  []string       `json:"skipped_rules,omitempty"`
	CoercedToNull int            `json:"coerced_to_null"`
}
