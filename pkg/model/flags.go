// pkg/model/flags.go
package model

// Flags holds the per-record validation outcomes computed once during
// classification. They are never recomputed after the classify step.
type Flags struct {
	VINValid      bool
	IDNumberValid bool
	EmailValid    bool
	MobileValid   bool
	BirthdayValid bool
	Duplicate     bool
}

// Column names for the derived flag columns, in output order.
const (
	ColDuplicate     = "duplicate"
	ColEmailValid    = "email_valid"
	ColVINValid      = "vin_valid"
	ColIDNumberValid = "id_number_valid"
	ColMobileValid   = "mobile_valid"
	ColBirthdayValid = "birthday_valid"
)

// FlagColumns returns the flag column names in the order they are
// appended to garbage output.
func FlagColumns() []string {
	return []string{
		ColDuplicate,
		ColEmailValid,
		ColVINValid,
		ColIDNumberValid,
		ColMobileValid,
		ColBirthdayValid,
	}
}

// AllValid reports whether every field-level check passed. Duplicate
// status is deliberately excluded; it is a separate routing criterion.
func (f Flags) AllValid() bool {
	return f.VINValid && f.IDNumberValid && f.EmailValid && f.MobileValid && f.BirthdayValid
}

// Clean reports whether the record belongs in the clean output: all five
// field checks passed and the record is not part of a duplicate set.
func (f Flags) Clean() bool {
	return f.AllValid() && !f.Duplicate
}

// Apply copies the flag values onto a record under their column names.
func (f Flags) Apply(r Record) {
	r[ColDuplicate] = f.Duplicate
	r[ColEmailValid] = f.EmailValid
	r[ColVINValid] = f.VINValid
	r[ColIDNumberValid] = f.IDNumberValid
	r[ColMobileValid] = f.MobileValid
	r[ColBirthdayValid] = f.BirthdayValid
}
