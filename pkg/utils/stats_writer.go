/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats_writer.go
Description: Utility for writing generation statistics snapshots to a stats
directory. Handles timestamped, session-tagged file naming and writes JSON
files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/genrex/pkg/interfaces"
)

// statsSnapshot is the on-disk shape of a statistics dump.
type statsSnapshot struct {
	SessionID           string    `json:"session_id"`
	Pattern             string    `json:"pattern"`
	StartTime           time.Time `json:"start_time"`
	WrittenAt           time.Time `json:"written_at"`
	Attempts            int64     `json:"attempts"`
	LengthRejections    int64     `json:"length_rejections"`
	ValidatorRejections int64     `json:"validator_rejections"`
	Generated           int64     `json:"generated"`
	LastTactic          string    `json:"last_tactic"`
}

// WriteStatsSnapshot writes a generation-statistics snapshot as indented JSON
// into dir, creating it if needed. Returns the path of the written file.
func WriteStatsSnapshot(dir string, pattern string, stats interfaces.GenerationStats) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create stats directory: %w", err)
	}

	// Filename: 2024-06-11_01-30-00_<first 8 of session id>.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	tag := stats.SessionID
	if len(tag) > 8 {
		tag = tag[:8]
	}
	filename := fmt.Sprintf("%s_%s.json", timestamp, tag)
	filePath := filepath.Join(dir, filename)

	snapshot := statsSnapshot{
		SessionID:           stats.SessionID,
		Pattern:             pattern,
		StartTime:           stats.StartTime,
		WrittenAt:           time.Now(),
		Attempts:            stats.Attempts,
		LengthRejections:    stats.LengthRejections,
		ValidatorRejections: stats.ValidatorRejections,
		Generated:           stats.Generated,
		LastTactic:          stats.LastTactic,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal stats snapshot: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write stats file: %w", err)
	}

	return filePath, nil
}
