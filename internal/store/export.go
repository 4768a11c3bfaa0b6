package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/vlasim/internal/config"
	"github.com/san-kum/vlasim/internal/sim"
)

type ExportData struct {
	Spatial   string               `json:"spatial_scheme"`
	Velocity  string               `json:"velocity_scheme"`
	Dt        float64              `json:"dt"`
	Duration  float64              `json:"duration"`
	Steps     int                  `json:"steps"`
	Times     []float64            `json:"times"`
	History   map[string][]float64 `json:"history"`
	Metrics   map[string]float64   `json:"metrics"`
	FinalDist [][]float64          `json:"final_distribution"`
}

func build(cfg *config.Config, result *sim.Result) ExportData {
	data := ExportData{
		Spatial:  cfg.Spatial,
		Velocity: cfg.Velocity,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Steps:    result.StepsTaken,
		Times:    result.Times,
		History:  result.History,
		Metrics:  result.Metrics,
	}
	if f := result.Final; f != nil {
		data.FinalDist = make([][]float64, f.Nx)
		for i := 0; i < f.Nx; i++ {
			data.FinalDist[i] = f.Row(i)
		}
	}
	return data
}

func ExportJSON(path string, cfg *config.Config, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, cfg, result)
}

func ExportJSONStdout(cfg *config.Config, result *sim.Result) error {
	return writeJSON(os.Stdout, cfg, result)
}

func writeJSON(w io.Writer, cfg *config.Config, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(build(cfg, result))
}
