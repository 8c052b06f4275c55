package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"textevolve/evolution"
)

// Recorder writes per-generation metrics to CSV and JSONL artifacts. Each
// recorder carries a fresh run ID so artifacts from different runs can be
// told apart after the fact.
type Recorder struct {
	runID       string
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewRecorder creates a recorder and ensures the artifact directories exist.
func NewRecorder(csvPath, jsonPath string) (*Recorder, error) {
	r := &Recorder{
		runID:    uuid.NewString(),
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return r, nil
}

// RunID returns the identifier stamped on every row this recorder writes.
func (r *Recorder) RunID() string {
	return r.runID
}

// Init opens the artifact files and writes the CSV header.
func (r *Recorder) Init() error {
	var err error

	r.csvFile, err = os.Create(r.csvPath)
	if err != nil {
		return err
	}
	r.csvWriter = csv.NewWriter(r.csvFile)

	header := []string{
		"run_id", "generation", "max_fitness", "mean_fitness", "closest", "target_acquired",
	}
	if err := r.csvWriter.Write(header); err != nil {
		return err
	}

	r.jsonFile, err = os.OpenFile(r.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	r.initialized = true
	return nil
}

// Close flushes and closes the artifact files.
func (r *Recorder) Close() {
	if r.csvWriter != nil {
		r.csvWriter.Flush()
	}
	if r.csvFile != nil {
		r.csvFile.Close()
	}
	if r.jsonFile != nil {
		r.jsonFile.Close()
	}
}

// GenerationRecord is one JSONL row.
type GenerationRecord struct {
	RunID          string  `json:"run_id"`
	Generation     int     `json:"generation"`
	MaxFitness     float64 `json:"max_fitness"`
	MeanFitness    float64 `json:"mean_fitness"`
	Closest        string  `json:"closest"`
	TargetAcquired bool    `json:"target_acquired"`
}

// Record writes one generation snapshot to both artifacts.
func (r *Recorder) Record(snap evolution.Snapshot) {
	if !r.initialized {
		return
	}

	row := []string{
		r.runID,
		strconv.Itoa(snap.Generation),
		fmt.Sprintf("%.4f", snap.MaxFitness),
		fmt.Sprintf("%.4f", snap.MeanFitness),
		snap.Closest,
		strconv.FormatBool(snap.TargetAcquired),
	}
	r.csvWriter.Write(row)
	r.csvWriter.Flush()

	rec := GenerationRecord{
		RunID:          r.runID,
		Generation:     snap.Generation,
		MaxFitness:     snap.MaxFitness,
		MeanFitness:    snap.MeanFitness,
		Closest:        snap.Closest,
		TargetAcquired: snap.TargetAcquired,
	}
	line, _ := json.Marshal(rec)
	r.jsonFile.WriteString(string(line) + "\n")
}

// SaveResult writes the final run result to a JSON file.
func SaveResult(path string, res evolution.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := struct {
		TargetAcquired bool    `json:"target_acquired"`
		Best           string  `json:"best"`
		MaxFitness     float64 `json:"max_fitness"`
		FitnessPercent string  `json:"fitness_percent"`
		Generation     int     `json:"generation"`
	}{
		TargetAcquired: res.TargetAcquired,
		Best:           res.Best,
		MaxFitness:     res.MaxFitness,
		FitnessPercent: res.FitnessPercent(),
		Generation:     res.Generation,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}
