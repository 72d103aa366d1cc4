package xcontent

import (
	"fmt"
	"time"
)

// ParseDuration converts a duration token into a time.Duration. String
// tokens use Go duration syntax ("30s", "1m30s"); bare number tokens are
// taken as milliseconds. The field name is attached to every error.
func ParseDuration(tok Token, field string) (time.Duration, error) {
	switch tok.Kind {
	case String:
		d, err := time.ParseDuration(tok.Str)
		if err != nil {
			return 0, fmt.Errorf("invalid duration [%s] for field [%s]", tok.Str, field)
		}
		if d < 0 {
			return 0, fmt.Errorf("negative duration [%s] for field [%s]", tok.Str, field)
		}
		return d, nil
	case Number:
		if tok.Num < 0 {
			return 0, fmt.Errorf("negative duration [%s] for field [%s]", tok.Str, field)
		}
		return time.Duration(tok.Num * float64(time.Millisecond)), nil
	}
	return 0, fmt.Errorf("expected a duration for field [%s] but found [%s]", field, tok.Kind)
}
