// Package csvio reads and writes delivery CSVs under the unified schema.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spraval/cricsheet-etl/models"
)

// Writer appends delivery rows to a CSV file, writing the header once.
type Writer struct {
	file *os.File
	csv  *csv.Writer
	rows int
}

// NewWriter creates (or truncates) a delivery CSV and writes the header.
func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create CSV directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	w := &Writer{file: file, csv: csv.NewWriter(file)}
	if err := w.csv.Write(models.Columns); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return w, nil
}

// Write appends one delivery row.
func (w *Writer) Write(d *models.Delivery) error {
	if err := w.csv.Write(d.Record()); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written so far.
func (w *Writer) Rows() int {
	return w.rows
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return w.file.Close()
}

// ReadRows streams a delivery CSV, calling fn for every data record.
// The header is validated against the unified schema before any row is
// delivered; a column mismatch means the file was produced by a different
// flattener version and must not be loaded.
func ReadRows(path string, fn func(record []string) error) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(models.Columns)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, col := range models.Columns {
		if header[i] != col {
			return 0, fmt.Errorf("unexpected CSV header: column %d is %q, want %q", i, header[i], col)
		}
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if err := fn(record); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
