package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
)

// Delimiter separates report cells.
const Delimiter = '\t'

// FileName returns the report file name of the record kind.
func FileName(kind models.Kind) string {
	return string(kind) + "_data.csv"
}

// Writer writes reports into one directory.
type Writer struct {
	dir string
}

// NewWriter returns new Writer.
func NewWriter(dir string) Writer {
	return Writer{dir: dir}
}

// Write creates or replaces the report file and returns its path.
func (w Writer) Write(name string, layout models.Layout, records []models.Record) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create report directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("can't create report: %w", err)
	}

	if err := Encode(f, layout, records); err != nil {
		_ = f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("can't close report: %w", err)
	}

	return path, nil
}

// Encode writes the header of the layout followed by one row per record.
func Encode(w io.Writer, layout models.Layout, records []models.Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := cw.Write(layout); err != nil {
		return fmt.Errorf("can't write report header: %w", err)
	}

	row := make([]string, len(layout))
	for _, r := range records {
		for ix, column := range layout {
			row[ix] = r.Value(column)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("can't write report row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}

	return nil
}
