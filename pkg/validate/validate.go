// pkg/validate/validate.go
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/David-Botos/data-cleanse/pkg/model"
)

var (
	emailPattern        = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)
	mobilePattern       = regexp.MustCompile(`^\d{7,15}$`)
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// dateFormats are tried in order for date-of-birth parsing. The list is
// intentionally lenient; any match makes the value a valid date.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
	"2006/01/02",
}

// IsValidEmail reports whether the value looks like local@domain.tld.
// Lowercasing and the "no email" null-mapping happen upstream; a nil
// value is invalid.
func IsValidEmail(v interface{}) bool {
	if v == nil {
		return false
	}
	return emailPattern.MatchString(model.CellString(v))
}

// IsValidMobile reports whether the value is 7 to 15 decimal digits.
func IsValidMobile(v interface{}) bool {
	if v == nil {
		return false
	}
	return mobilePattern.MatchString(model.CellString(v))
}

// IsAlphanumeric reports whether the value is one or more characters
// drawn only from A-Z, a-z and 0-9.
func IsAlphanumeric(v interface{}) bool {
	if v == nil {
		return false
	}
	return alphanumericPattern.MatchString(model.CellString(v))
}

// IsValidDate reports whether the value parses as a calendar date under
// any of the accepted formats. An unparseable or nil value is invalid,
// never an error.
func IsValidDate(v interface{}) bool {
	if v == nil {
		return false
	}

	s := strings.TrimSpace(model.CellString(v))
	if s == "" {
		return false
	}

	for _, format := range dateFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}
