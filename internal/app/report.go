package app

import (
	"encoding/json"
	"os"
)

// runReport summarizes one completed fetch, written as .lastrun.json beside
// the output file.
type runReport struct {
	Exchange   string  `json:"exchange"`
	Symbol     string  `json:"symbol"`
	Interval   string  `json:"interval"`
	Since      string  `json:"since"`
	Bars       int     `json:"bars"`
	Output     string  `json:"output"`
	ElapsedSec float64 `json:"elapsed_sec"`
	FinishedAt string  `json:"finished_at"`
}

func writeRunReport(path string, r runReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
