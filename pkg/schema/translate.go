// pkg/schema/translate.go
package schema

import "strings"

// Translation maps source (foreign-language) column headers to their
// canonical English names. The table is treated as an immutable value;
// callers pass it in rather than mutating shared state.
type Translation map[string]string

// DefaultTranslations returns the fixed header-translation table for
// vehicle-owner exports.
func DefaultTranslations() Translation {
	return Translation{
		"车架号":   "VIN",
		"姓名":    "Name",
		"身份证":   "ID Number",
		"性别":    "Gender",
		"手机":    "Mobile Phone",
		"邮箱":    "Email",
		"省":     "Province",
		"城市":    "City",
		"地址":    "Address",
		"邮编":    "Postal Code",
		"生日":    "Date of Birth",
		"行业":    "Industry",
		"月薪":    "Monthly Salary",
		"婚姻":    "Marital Status",
		"教育":    "Education",
		"BRAND": "Brand",
		"车系":    "Car Series",
		"车型":    "Car Model",
		"配置":    "Configuration",
		"颜色":    "Color",
		"发动机号":  "Engine Number",
	}
}

// Normalize lowercases a column name and replaces spaces with
// underscores. Normalize is idempotent.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Name translates a single column header to its canonical form: rename
// via the table when the header is a known source name, then normalize.
// Headers not in the table pass through under their normalized name, so
// translating an already-canonical header is a no-op.
func (t Translation) Name(col string) string {
	if english, ok := t[col]; ok {
		return Normalize(english)
	}
	return Normalize(col)
}

// Columns translates a full header row, preserving column order. When
// normalization makes two source headers collide, both map to the same
// canonical name and the later column wins on assignment.
func (t Translation) Columns(cols []string) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = t.Name(col)
	}
	return out
}
