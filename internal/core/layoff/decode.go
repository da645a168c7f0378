package layoff

import (
	"encoding/json"
	"io"

	perr "layoffs/internal/platform/errors"
)

// Document is the on-disk envelope {"layoffs": [...]}
type Document struct {
	Layoffs []Record `json:"layoffs"`
}

// Decode reads a layoffs document
// a missing layoffs key yields an empty, non nil slice
func Decode(r io.Reader) ([]Record, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode layoffs document")
	}
	if doc.Layoffs == nil {
		return []Record{}, nil
	}
	return doc.Layoffs, nil
}

// DecodeRecord reads a single record, as stored per row by database sources
func DecodeRecord(b []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode layoff record")
	}
	return rec, nil
}

// Encode writes records in the document envelope
func Encode(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Layoffs: records})
}
