package importer

import (
	"encoding/json"
	"fmt"
	"io"
)

// ScheduleFileVersion is the only version of the schedule file format this
// build reads and writes.
const ScheduleFileVersion = 1

// scheduleFile is a snapshot of one schedule's selections: just the ids,
// not the catalog or colors.
type scheduleFile struct {
	Version  int      `json:"version"`
	Schedule []string `json:"schedule"`
}

// WriteScheduleFile writes the selections as a shareable schedule file.
func WriteScheduleFile(w io.Writer, sectionIDs []string) error {
	if sectionIDs == nil {
		sectionIDs = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scheduleFile{Version: ScheduleFileVersion, Schedule: sectionIDs})
}

// ReadScheduleFile parses a schedule file and returns its section ids. A
// version or shape mismatch rejects the whole file; callers must leave the
// active schedule untouched on error.
func ReadScheduleFile(r io.Reader) ([]string, error) {
	var f scheduleFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}
	if f.Version != ScheduleFileVersion {
		return nil, fmt.Errorf("unsupported schedule file version %d", f.Version)
	}
	if f.Schedule == nil {
		return nil, fmt.Errorf("schedule file has no schedule list")
	}
	return f.Schedule, nil
}
