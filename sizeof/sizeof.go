// Package sizeof measures cache payloads for budget accounting.
//
// Byte slices and strings count as their literal length. Everything else
// counts as the length of its JSON encoding, which doubles as a check that
// the value is serializable at all.
package sizeof

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Bytes returns the measured size of v in bytes.
//
// The absolute number is an estimate for non-byte payloads; what matters is
// that the same function is used consistently, so the store's running total
// stays exact relative to it.
func Bytes(v any) (int64, error) {
	switch p := v.(type) {
	case nil:
		return 0, nil
	case []byte:
		return int64(len(p)), nil
	case string:
		return int64(len(p)), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return 0, fmt.Errorf("sizeof: value is not measurable: %w", err)
		}
		return int64(len(b)), nil
	}
}
