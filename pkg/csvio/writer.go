// pkg/csvio/writer.go
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/David-Botos/data-cleanse/pkg/model"
)

// ChunkPath builds the output path for one chunk's records.
func ChunkPath(prefix string, index int) string {
	return fmt.Sprintf("%s_chunk_%d.csv", prefix, index)
}

// FinalPath builds the output path for a consolidated record set.
func FinalPath(prefix string) string {
	return fmt.Sprintf("%s_final.csv", prefix)
}

// WriteRecords writes a column-ordered record set to path as CSV. The
// header row is always written, even for an empty record set. Cells
// absent from a record are written as empty.
func WriteRecords(path string, columns []string, rows []model.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	fields := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			fields[i] = model.CellString(row[col])
		}
		if err := w.Write(fields); err != nil {
			return fmt.Errorf("failed to write record to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file %s: %w", path, err)
	}

	return file.Close()
}
