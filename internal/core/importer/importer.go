// Package importer ingests the scraped course payload and reads/writes the
// shareable schedule file format.
package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/internal/core/store"
)

// PayloadType tags the message the bookmarklet scraper posts with the full
// course list.
const PayloadType = "universityCoursesData"

type payload struct {
	Type string              `json:"type"`
	Data []models.RawSection `json:"data"`
}

// Importer replaces the stored catalog from scraped payloads.
type Importer struct {
	db *db.DB
}

// New creates a new importer
func New(database *db.DB) *Importer {
	return &Importer{db: database}
}

// ImportPayload reads one scraped payload and replaces the catalog with its
// data. The arrival of a new catalog also resets the schedule collection to
// a single fresh default, since the old selections reference ids from the
// previous import. Returns the number of sections imported.
func (i *Importer) ImportPayload(r io.Reader) (int, error) {
	var p payload
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return 0, fmt.Errorf("failed to parse payload: %w", err)
	}

	if p.Type != PayloadType {
		return 0, fmt.Errorf("unexpected payload type %q, want %q", p.Type, PayloadType)
	}
	if p.Data == nil {
		return 0, fmt.Errorf("payload has no data")
	}

	if err := i.db.ReplaceRawSections(p.Data); err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}

	if _, err := store.Reset(i.db); err != nil {
		return 0, fmt.Errorf("failed to reset schedules: %w", err)
	}

	return len(p.Data), nil
}
