package sheets

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one spreadsheet row as returned by the backend. Column keys arrive
// in whatever casing the sheet happens to use, and cell values may be
// strings, JSON numbers or booleans. The accessors below take candidate keys
// in priority order (camelCase first, legacy capitalized form last) and the
// first non-empty match wins.
type Row map[string]any

func (r Row) String(keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return trimFloat(v)
		case bool:
			if v {
				return "true"
			}
			return "false"
		}
	}
	return ""
}

// Decimal parses a numeric cell. Unparsable cells become zero, never an
// error; a sheet full of junk must not take the read path down.
func (r Row) Decimal(keys ...string) decimal.Decimal {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if v == "" {
				continue
			}
			d, err := decimal.NewFromString(v)
			if err != nil {
				return decimal.Zero
			}
			return d
		case float64:
			return decimal.NewFromFloat(v)
		}
	}
	return decimal.Zero
}

func (r Row) Int(keys ...string) int {
	d := r.Decimal(keys...)
	return int(d.IntPart())
}

// Bool accepts the literal string "true" or an actual boolean true; anything
// else is false.
func (r Row) Bool(keys ...string) bool {
	for _, k := range keys {
		switch v := r[k].(type) {
		case bool:
			return v
		case string:
			return v == "true"
		}
	}
	return false
}

// StringList handles the features column, which may be a JSON-encoded array
// or a native list. Malformed JSON is treated as an empty list.
func (r Row) StringList(keys ...string) []string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if v == "" {
				continue
			}
			var out []string
			if err := json.Unmarshal([]byte(v), &out); err != nil {
				return []string{}
			}
			return out
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return []string{}
}

// SplitList turns a comma-separated cell into a list, trimming whitespace
// and dropping empty segments.
func SplitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func trimFloat(f float64) string {
	return decimal.NewFromFloat(f).String()
}
