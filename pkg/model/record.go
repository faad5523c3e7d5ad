// pkg/model/record.go
package model

import (
	"fmt"
	"strconv"
)

// Record maps a column name to its cell value. Values are either string
// or nil; nil marks a missing cell. Derived flag columns hold bool.
type Record map[string]interface{}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Chunk is one bounded group of input records, read in file order.
type Chunk struct {
	Index   int      // 1-based position in the input file
	Columns []string // column order as read from the header
	Rows    []Record
}

// CellString renders a cell value for text output and comparisons.
// A nil cell renders as the empty string.
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
