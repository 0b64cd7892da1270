package backend

import (
	"fmt"
	"strconv"
	"time"
)

// String returns the column as a string. Numbers are formatted; missing or
// null columns yield "".
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the column as a bool; missing or non-bool yields false.
func (r Row) Bool(col string) bool {
	v, _ := r[col].(bool)
	return v
}

// Time parses the column as an RFC 3339 timestamp. ok is false when the column
// is missing or unparsable.
func (r Row) Time(col string) (t time.Time, ok bool) {
	switch v := r[col].(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05.999999-07"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
