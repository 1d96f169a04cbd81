package table

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"ycfounders/internal/domain"
)

// Table is a company CSV held fully in memory: the header row in its original
// order plus one Record per data row. A run loads the whole file, transforms
// it, and only then writes, so a failed load never leaves a partial file.
type Table struct {
	Headers []string
	Rows    []domain.Record
}

func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	t := &Table{Headers: recs[0]}
	for _, rec := range recs[1:] {
		row := make(domain.Record, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = "" // short row: missing cells read as empty
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Save rewrites the file with the original column order and every row,
// changed or not. An advisory lock beside the file keeps two runs from
// interleaving their writes.
func (t *Table) Save(path string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		f.Close()
		return err
	}
	rec := make([]string, len(t.Headers))
	for _, row := range t.Rows {
		for i, h := range t.Headers {
			rec[i] = row[h]
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
