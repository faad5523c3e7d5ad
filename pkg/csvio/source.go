// pkg/csvio/source.go
package csvio

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/David-Botos/data-cleanse/pkg/model"
)

// ErrInputNotFound marks a missing input file. The pipeline treats it as
// fatal, before any output is written.
var ErrInputNotFound = errors.New("input file not found")

// Source reads a delimited file sequentially in fixed-size groups of
// records. Compressed inputs (.gz, .bz2, .xz, .zst) are decompressed
// transparently based on the file extension.
type Source struct {
	path      string
	chunkSize int
}

// NewSource creates a chunked reader over the file at path. The input
// must exist before a run starts.
func NewSource(path string, chunkSize int) (*Source, error) {
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be positive")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input file %s: %w", path, err)
	}

	return &Source{path: path, chunkSize: chunkSize}, nil
}

// Chunks reads the file in original order and invokes fn once per chunk.
// The first line is consumed as the header row. Read failures and fn
// errors abort the iteration.
func (s *Source) Chunks(ctx context.Context, fn func(*model.Chunk) error) error {
	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", s.path, err)
	}
	defer file.Close()

	reader, closer, err := decompressedReader(file, s.path)
	if err != nil {
		return err
	}
	defer closer()

	cr := csv.NewReader(bufio.NewReader(reader))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return errors.New("input file is empty")
	}
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	columns := headerColumns(header)

	index := 0
	rows := make([]model.Record, 0, s.chunkSize)

	flush := func() error {
		index++
		chunk := &model.Chunk{Index: index, Columns: columns, Rows: rows}
		rows = make([]model.Record, 0, s.chunkSize)
		return fn(chunk)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		rows = append(rows, recordFromFields(columns, fields))

		if len(rows) >= s.chunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if len(rows) > 0 {
		return flush()
	}
	return nil
}

// headerColumns names the columns from the header row. A blank header
// field gets a positional "Unnamed: <i>" name, so a trailing empty
// header survives translation as an identifiable column.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
	}
	return columns
}

// recordFromFields builds a record from one data row. Missing and empty
// cells are nil; extra cells beyond the header are dropped.
func recordFromFields(columns []string, fields []string) model.Record {
	record := make(model.Record, len(columns))
	for i, col := range columns {
		if i < len(fields) && fields[i] != "" {
			record[col] = fields[i]
		} else {
			record[col] = nil
		}
	}
	return record
}

// decompressedReader wraps the file in a decompressor when the path
// carries a known compressed extension.
func decompressedReader(file *os.File, path string) (io.Reader, func(), error) {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".gz"):
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, func() { _ = gzReader.Close() }, nil
	case strings.HasSuffix(lower, ".bz2"):
		return bzip2.NewReader(file), func() {}, nil
	case strings.HasSuffix(lower, ".xz"):
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, func() {}, nil
	case strings.HasSuffix(lower, ".zst"):
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, decoder.Close, nil
	default:
		return file, func() {}, nil
	}
}
