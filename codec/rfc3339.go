// Package codec provides transform-oriented guards bridging wire strings and
// domain values.
package codec

import (
	"time"

	shapeguard "github.com/okudaira/shapeguard"
)

// TimeRFC3339 returns a guard matching RFC3339 strings whose transform parses
// them into time.Time. Trailing fractional seconds are accepted
// (RFC3339Nano).
func TimeRFC3339() *shapeguard.Guard {
	return shapeguard.New("rfc3339", shapeguard.Config{
		Validate: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := parseRFC3339(s)
			return err == nil
		},
		Transform: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			t, err := parseRFC3339(s)
			if err != nil {
				return v
			}
			return t
		},
	})
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// FormatRFC3339 normalizes t to UTC and formats it canonically
// (RFC3339Nano trims trailing zeros).
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
