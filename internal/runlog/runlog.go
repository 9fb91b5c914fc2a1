// Package runlog records report runs as JSON lines for troubleshooting.
package runlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Run is one report execution.
type Run struct {
	ID         string            `json:"id"`
	At         time.Time         `json:"at"`
	Tenant     string            `json:"tenant"`
	From       time.Time         `json:"from"`
	To         time.Time         `json:"to"`
	Accounts   []string          `json:"accounts"`
	DurationMS int64             `json:"duration_ms"`
	Errors     map[string]string `json:"errors,omitempty"`
}

const (
	logDir  = "logs"
	logFile = "logs/report-runs.jsonl"
)

// NewRun creates a Run record with a fresh ID and timestamp.
func NewRun(tenant string, from, to time.Time, accounts []string, took time.Duration) Run {
	return Run{
		ID:         uuid.NewString(),
		At:         time.Now().UTC(),
		Tenant:     tenant,
		From:       from,
		To:         to,
		Accounts:   accounts,
		DurationMS: took.Milliseconds(),
	}
}

// Append writes a run to <root>/logs/report-runs.jsonl, creating the file if
// needed.
func Append(root string, run Run) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(root, logFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling run: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s\n", data); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	return nil
}

// Read returns all runs from <root>/logs/report-runs.jsonl. Returns nil if
// the file does not exist.
func Read(root string) ([]Run, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	var runs []Run
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var run Run
		if err := json.Unmarshal(sc.Bytes(), &run); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		runs = append(runs, run)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	return runs, nil
}
