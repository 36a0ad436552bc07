package config

import (
	"errors"
	"math"
	"strings"

	"github.com/spf13/cast"
)

var errOutOfRange = errors.New("value out of range")

// toInt accepts integers, floats and decimal numeric strings. Fractions are
// floored, so -1.5 becomes -2. Strings are always read as base 10: "010" is 10
// and "0x1F" fails. Booleans are not numbers. Results outside the int32 range
// fail for every input type.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case bool:
		return 0, ErrInvalidType
	case float32:
		return floor(float64(v))
	case float64:
		return floor(v)
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		return floor(f)
	case uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToUint64E(v)
		if err != nil {
			return 0, err
		}
		if n > math.MaxInt32 {
			return 0, errOutOfRange
		}
		return int(n), nil
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errOutOfRange
	}
	return int(n), nil
}

func floor(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errOutOfRange
	}
	f = math.Floor(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errOutOfRange
	}
	return int(f), nil
}

// truthy reports false for nil and false only.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	}
	return true
}
