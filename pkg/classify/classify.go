// pkg/classify/classify.go
package classify

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/David-Botos/data-cleanse/pkg/config"
	"github.com/David-Botos/data-cleanse/pkg/model"
	"github.com/David-Botos/data-cleanse/pkg/validate"
)

// Canonical columns the classifier operates on.
const (
	colVIN         = "vin"
	colIDNumber    = "id_number"
	colEmail       = "email"
	colMobilePhone = "mobile_phone"
	colDateOfBirth = "date_of_birth"
	colFullAddress = "full_address"
)

// noEmailLiteral is mapped to a missing value before email validation.
const noEmailLiteral = "no email"

// Result is the outcome of classifying one chunk: a total, exclusive
// partition of its rows into a clean subset and a garbage subset.
type Result struct {
	Index          int
	RowsRead       int
	CleanColumns   []string
	Clean          []model.Record
	GarbageColumns []string
	Garbage        []model.Record
}

// Classifier translates, validates and partitions chunks. It is
// stateless across chunks; duplicate detection never spans two chunks.
type Classifier struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a Classifier.
func New(cfg *config.Config, logger *zap.Logger) (*Classifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Classifier{cfg: cfg, logger: logger}, nil
}

// ClassifyChunk runs the full per-chunk sequence: duplicate keys on the
// raw pre-translation values, header translation, value coercion, flag
// computation, and the clean/garbage split. Every input row lands in
// exactly one of the two subsets.
func (c *Classifier) ClassifyChunk(chunk *model.Chunk) (*Result, error) {
	if chunk == nil {
		return nil, errors.New("chunk cannot be nil")
	}

	// Duplicate keys are computed before translation, from the raw rows.
	keyColumns, err := c.resolveKeyColumns(chunk.Columns)
	if err != nil {
		return nil, err
	}
	duplicates := duplicateFlags(chunk.Rows, keyColumns)

	columns, rows := c.translate(chunk)
	if err := c.checkRequiredColumns(columns); err != nil {
		return nil, err
	}

	result := &Result{
		Index:          chunk.Index,
		RowsRead:       len(rows),
		CleanColumns:   c.cleanColumns(columns),
		GarbageColumns: append(append([]string{}, columns...), model.FlagColumns()...),
	}

	for i, row := range rows {
		// The clean projection keeps the translated values as read;
		// coercion and email cleanup apply to the garbage side only.
		original := row.Clone()

		coerceText(row, colVIN, colIDNumber, colEmail)
		cleanEmail(row)
		fullAddress := c.fullAddress(row)

		flags := model.Flags{
			VINValid:      validate.IsAlphanumeric(row[colVIN]),
			IDNumberValid: validate.IsAlphanumeric(row[colIDNumber]),
			EmailValid:    validate.IsValidEmail(row[colEmail]),
			MobileValid:   validate.IsValidMobile(row[colMobilePhone]),
			BirthdayValid: validate.IsValidDate(row[colDateOfBirth]),
			Duplicate:     duplicates[i],
		}

		if flags.Clean() {
			clean := c.cleanRecord(original)
			clean[colFullAddress] = fullAddress
			result.Clean = append(result.Clean, clean)
		} else {
			flags.Apply(row)
			result.Garbage = append(result.Garbage, row)
		}
	}

	c.logger.Info("Classified chunk",
		zap.Int("chunk", chunk.Index),
		zap.Int("rows", result.RowsRead),
		zap.Int("garbageRows", len(result.Garbage)))

	return result, nil
}

// resolveKeyColumns maps the configured duplicate key columns onto the
// raw header, matching either the source name or its canonical form.
func (c *Classifier) resolveKeyColumns(rawColumns []string) ([]string, error) {
	resolved := make([]string, 0, len(c.cfg.DuplicateKeys))

	for _, key := range c.cfg.DuplicateKeys {
		canonical := c.cfg.Translations.Name(key)
		found := ""
		for _, col := range rawColumns {
			if col == key || c.cfg.Translations.Name(col) == canonical {
				found = col
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("duplicate key column %q not found in header", key)
		}
		resolved = append(resolved, found)
	}

	return resolved, nil
}

// duplicateFlags marks every row whose key occurs more than once in the
// chunk, not just the repeats. Two missing key cells compare equal.
func duplicateFlags(rows []model.Record, keyColumns []string) []bool {
	counts := make(map[string]int, len(rows))
	keys := make([]string, len(rows))

	for i, row := range rows {
		keys[i] = duplicateKey(row, keyColumns)
		counts[keys[i]]++
	}

	flags := make([]bool, len(rows))
	for i := range rows {
		flags[i] = counts[keys[i]] > 1
	}
	return flags
}

// duplicateKey builds a composite key from the raw cell values. Missing
// cells use a sentinel outside the CSV value space.
func duplicateKey(row model.Record, keyColumns []string) string {
	parts := make([]string, len(keyColumns))
	for i, col := range keyColumns {
		if v := row[col]; v != nil {
			parts[i] = model.CellString(v)
		} else {
			parts[i] = "\x00"
		}
	}
	return strings.Join(parts, "\x1f")
}

// translate renames and normalizes the chunk's columns and re-keys every
// row accordingly. When two source columns normalize to the same name
// the later one wins, and the column appears once.
func (c *Classifier) translate(chunk *model.Chunk) ([]string, []model.Record) {
	translated := c.cfg.Translations.Columns(chunk.Columns)

	columns := make([]string, 0, len(translated))
	seen := make(map[string]bool, len(translated))
	for _, col := range translated {
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}

	rows := make([]model.Record, len(chunk.Rows))
	for i, row := range chunk.Rows {
		out := make(model.Record, len(translated))
		for j, rawCol := range chunk.Columns {
			out[translated[j]] = row[rawCol]
		}
		rows[i] = out
	}

	return columns, rows
}

// checkRequiredColumns rejects a chunk whose translated header lacks any
// column the classifier reads. The chunk is skipped, not the run.
func (c *Classifier) checkRequiredColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	required := []string{colVIN, colIDNumber, colEmail, colMobilePhone, colDateOfBirth}
	required = append(required, c.cfg.AddressParts...)

	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("required column %q missing after translation", col)
		}
	}
	return nil
}

// coerceText forces the named cells to their text representation,
// preserving missing values.
func coerceText(row model.Record, columns ...string) {
	for _, col := range columns {
		if v, ok := row[col]; ok && v != nil {
			row[col] = model.CellString(v)
		}
	}
}

// cleanEmail lowercases the email cell and maps the "no email" literal
// to a missing value.
func cleanEmail(row model.Record) {
	v, ok := row[colEmail]
	if !ok || v == nil {
		return
	}

	email := strings.ToLower(model.CellString(v))
	if email == noEmailLiteral {
		row[colEmail] = nil
		return
	}
	row[colEmail] = email
}

// fullAddress joins the configured address components with single
// spaces, skipping missing cells. All components missing yields "".
func (c *Classifier) fullAddress(row model.Record) string {
	parts := make([]string, 0, len(c.cfg.AddressParts))
	for _, col := range c.cfg.AddressParts {
		if v := row[col]; v != nil {
			parts = append(parts, model.CellString(v))
		}
	}
	return strings.Join(parts, " ")
}

// cleanColumns derives the clean output header: translated columns minus
// the drop list and the address components, plus full_address.
func (c *Classifier) cleanColumns(columns []string) []string {
	dropped := make(map[string]bool, len(c.cfg.DropColumns)+len(c.cfg.AddressParts))
	for _, col := range c.cfg.DropColumns {
		dropped[col] = true
	}
	for _, col := range c.cfg.AddressParts {
		dropped[col] = true
	}

	out := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		if dropped[col] || strings.HasPrefix(col, "unnamed:") {
			continue
		}
		out = append(out, col)
	}
	return append(out, colFullAddress)
}

// cleanRecord projects a translated row onto the clean column set.
func (c *Classifier) cleanRecord(row model.Record) model.Record {
	clean := make(model.Record, len(row))
	for k, v := range row {
		clean[k] = v
	}
	for _, col := range c.cfg.DropColumns {
		delete(clean, col)
	}
	for _, col := range c.cfg.AddressParts {
		delete(clean, col)
	}
	for k := range clean {
		if strings.HasPrefix(k, "unnamed:") {
			delete(clean, k)
		}
	}
	return clean
}
