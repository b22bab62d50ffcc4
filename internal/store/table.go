package store

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"tractor-backend/internal/apperrors"
)

// Table is one CSV-backed entity table. The file is header-first and is
// only ever mutated by whole-file replace; SaveAll writes a temp file in
// the same directory and renames it over the old one, so a reader never
// observes a partial write and loads need no lock of their own.
//
// A mutex serializes writers per table. Load/modify/save sequences
// against the same table still race at the operation level (last save
// wins); the server runs mutations one at a time.
type Table[T any] struct {
	writeMu sync.Mutex
	path    string
	name    string
	header  []string
	encode  func(T) []string
	decode  func([]string) (T, error)
	hasID   func(T) bool
}

// NewTable creates a table bound to path. encode/decode map a record to
// and from one CSV row in header order; hasID is the identity sanity
// check applied to every loaded row.
func NewTable[T any](path string, header []string, encode func(T) []string, decode func([]string) (T, error), hasID func(T) bool) *Table[T] {
	return &Table[T]{
		path:   path,
		name:   filepath.Base(path),
		header: header,
		encode: encode,
		decode: decode,
		hasID:  hasID,
	}
}

// Path returns the backing file path.
func (t *Table[T]) Path() string {
	return t.path
}

// LoadAll reads every row in storage order. A missing backing file is
// not an error: the table is materialized empty with the correct header
// and an empty slice is returned. An unparsable row fails the whole
// load with a MALFORMED_RECORD error naming the row. Rows whose
// identity column is blank are dropped with a logged count (legacy
// tolerant-read behavior).
func (t *Table[T]) LoadAll() ([]T, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Store] %s not found, creating a new one", t.name)
			return nil, t.SaveAll(nil)
		}
		return nil, apperrors.NewIO("open %s", t.name).WithCause(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err == io.EOF {
		// empty file, treat as empty table
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewMalformedRecord("%s: unreadable header", t.name).WithCause(err)
	}
	if len(head) != len(t.header) {
		return nil, apperrors.NewMalformedRecord("%s: header has %d columns, want %d", t.name, len(head), len(t.header))
	}

	var rows []T
	dropped := 0
	for rowIdx := 1; ; rowIdx++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewMalformedRecord("%s: row %d unreadable", t.name, rowIdx).WithCause(err)
		}
		if len(record) != len(t.header) {
			return nil, apperrors.NewMalformedRecord("%s: row %d has %d fields, want %d", t.name, rowIdx, len(record), len(t.header))
		}
		row, err := t.decode(record)
		if err != nil {
			return nil, apperrors.NewMalformedRecord("%s: row %d: %v", t.name, rowIdx, err)
		}
		if !t.hasID(row) {
			dropped++
			continue
		}
		rows = append(rows, row)
	}
	if dropped > 0 {
		log.Printf("[Store] %s: dropped %d rows without identity", t.name, dropped)
	}
	return rows, nil
}

// SaveAll replaces the entire table with exactly the given rows, in the
// given order.
func (t *Table[T]) SaveAll(rows []T) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewIO("create data dir %s", dir).WithCause(err)
	}

	tmp, err := os.CreateTemp(dir, t.name+".tmp-*")
	if err != nil {
		return apperrors.NewIO("create temp file for %s", t.name).WithCause(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err := w.Write(t.header); err != nil {
		tmp.Close()
		return apperrors.NewIO("write header to %s", t.name).WithCause(err)
	}
	for _, row := range rows {
		record := t.encode(row)
		if len(record) != len(t.header) {
			tmp.Close()
			return apperrors.NewIO("encode row for %s: %d fields, want %d", t.name, len(record), len(t.header))
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return apperrors.NewIO("write row to %s", t.name).WithCause(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return apperrors.NewIO("flush %s", t.name).WithCause(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperrors.NewIO("sync %s", t.name).WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewIO("close %s", t.name).WithCause(err)
	}
	if err := os.Rename(tmpPath, t.path); err != nil {
		return apperrors.NewIO("replace %s", t.name).WithCause(err)
	}
	return nil
}
