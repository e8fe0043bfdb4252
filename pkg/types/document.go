package types

import (
	"encoding/json"
	"fmt"
)

// DocumentVersion is the catalog document format version written by Export.
const DocumentVersion = "1.0"

// Document is the portable whole-catalog snapshot produced by Export and
// consumed by Import. Recipe, category and unit ids inside the document
// belong to the exporting store's id-space; Import never treats them as
// authoritative and reconciles by name-keyed identity instead. ExportID
// tags the snapshot itself and is ignored on import.
type Document struct {
	Version    string            `json:"version"`
	ExportID   string            `json:"export_id,omitempty"`
	ExportedAt string            `json:"exported_at"`
	Recipes    []Recipe          `json:"recipes"`
	Categories []Category        `json:"categories"`
	Units      []Unit            `json:"units"`
	Settings   map[string]string `json:"settings"`
}

// ParseDocument decodes a catalog document from JSON. Missing sections are
// tolerated and default to empty; structurally invalid JSON is reported as
// ErrMalformedDocument.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}
