// Package safe provides checked numeric conversions for values crossing the
// API boundary, where client-supplied integers must not wrap silently.
package safe

import (
	"fmt"
	"math"
)

// Uint32FromInt64 rejects negatives and values beyond uint32.
func Uint32FromInt64(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64FromInt64 rejects negatives.
func Uint64FromInt64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// IntFromInt64 rejects values that do not fit the platform int.
func IntFromInt64(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
