// Package backup writes dataset snapshots to timestamped JSON files
// and reads them back for restore.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/arijitsen/examdesk/internal/store"
)

// FormatError means a restore file could not be understood. The
// dataset is never touched when Read fails with one.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("backup file %s: %s", e.Path, e.Reason)
}

// Write dumps the snapshot into dir with a timestamped name and
// returns the file path.
func Write(dir string, snap *store.Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	name := fmt.Sprintf("backup_%s.json", snap.CreatedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup file: %w", err)
	}
	return path, nil
}

// Read parses and validates a backup file. Malformed or incompatible
// files come back as a *FormatError.
func Read(path string) (*store.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup file: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}
	if snap.Version == 0 {
		return nil, &FormatError{Path: path, Reason: "missing snapshot version"}
	}
	if snap.Version > store.SnapshotVersion {
		return nil, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("snapshot version %d is newer than supported version %d", snap.Version, store.SnapshotVersion),
		}
	}

	for i, a := range snap.Allocations {
		if a.Person == "" || a.Date == "" || a.Shift == "" {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("allocation %d is missing required fields", i)}
		}
		if _, err := time.Parse("2006-01-02", a.Date); err != nil {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("allocation %d has malformed date %q", i, a.Date)}
		}
	}

	return &snap, nil
}

// SchemaJSON renders the JSON schema of the backup file format, for
// anyone consuming the files outside this tool.
func SchemaJSON() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: false}
	schema := r.Reflect(&store.Snapshot{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return data, nil
}
