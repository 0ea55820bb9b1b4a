// Package query implements the shared list semantics of every resource:
// loose key/value filtering, shorthand-aware sorting and limiting over
// raw store records.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"beautestore/internal/store"
)

// Reserved query-string keys that are never treated as filter criteria.
const (
	KeySort  = "sort"
	KeyLimit = "limit"
)

// Criteria describes one list request.
type Criteria struct {
	// Filters maps field names to expected values, compared after string
	// coercion. An empty value matches everything.
	Filters map[string]string
	// Sort is a field name, optionally prefixed with "-" for descending,
	// or one of the shorthands price_asc, price_desc, -views.
	Sort string
	// Limit caps the result length when positive.
	Limit int
}

// sortShorthands are the named sort aliases the storefront uses.
var sortShorthands = map[string]struct {
	key  string
	desc bool
}{
	"price_asc":  {key: "price"},
	"price_desc": {key: "price", desc: true},
	"-views":     {key: "views", desc: true},
}

// Select filters, sorts and truncates records. The input slice is not
// modified and ties keep their input order.
func Select(records []store.Record, c Criteria) []store.Record {
	out := filter(records, c.Filters)
	out = sortRecords(out, c.Sort)
	if c.Limit > 0 && len(out) > c.Limit {
		out = out[:c.Limit]
	}
	return out
}

// filter keeps records whose stringified field equals the stringified
// criterion for every non-empty criterion. A field absent from the
// record stringifies to "undefined", so an unknown criterion key
// excludes the record rather than matching it.
func filter(records []store.Record, filters map[string]string) []store.Record {
	active := map[string]string{}
	for key, value := range filters {
		if key == KeySort || key == KeyLimit || value == "" {
			continue
		}
		active[key] = value
	}
	if len(active) == 0 {
		return append([]store.Record(nil), records...)
	}

	out := make([]store.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, active) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec store.Record, filters map[string]string) bool {
	for key, expected := range filters {
		if stringify(rec[key]) != canonical(expected) {
			return false
		}
	}
	return true
}

// canonical reduces a criterion to the comparison form: numbers lose
// their textual quirks ("01" and "1" compare equal) and booleans keep
// their true/false spelling.
func canonical(value string) string {
	if value == "true" || value == "false" {
		return value
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return formatNumber(n)
	}
	return value
}

// stringify renders a record field the way the comparison expects.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "undefined"
	case string:
		return canonical(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber prints integral floats without a decimal part, matching
// how JSON numbers stringify.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// sortRecords orders records by the requested key. Missing values
// compare as 0 and equal keys return 0 to keep the sort stable.
func sortRecords(records []store.Record, key string) []store.Record {
	if key == "" {
		return records
	}

	field := key
	desc := false
	if config, ok := sortShorthands[key]; ok {
		field, desc = config.key, config.desc
	} else if strings.HasPrefix(key, "-") {
		field, desc = key[1:], true
	}

	out := append([]store.Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		less, equal := compare(out[i][field], out[j][field])
		if equal {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

// compare orders two field values: numerically when both coerce to
// numbers, lexically otherwise. Absent values count as 0.
func compare(a, b any) (less, equal bool) {
	an, aNum := toNumber(a)
	bn, bNum := toNumber(b)
	if aNum && bNum {
		return an < bn, an == bn
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	return as < bs, as == bs
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
