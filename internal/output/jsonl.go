package output

import (
	"encoding/json"
	"io"
)

// JSONL writes each row as a JSON array of strings on its own line.
type JSONL struct {
	enc *json.Encoder
}

// NewJSONL creates a JSON Lines formatter writing to w.
func NewJSONL(w io.Writer) *JSONL {
	return &JSONL{enc: json.NewEncoder(w)}
}

// WriteRow writes the row as one JSON array line.
func (j *JSONL) WriteRow(row []string) error {
	return j.enc.Encode(row)
}

// Flush is a no-op; rows are written as they arrive.
func (j *JSONL) Flush() error {
	return nil
}
