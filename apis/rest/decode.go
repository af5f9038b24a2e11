package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"weather/manager"
)

// Unmarshal decodes body into the result struct v. A body whose shape does
// not match v is manager.ErrParsing; malformed JSON is a decode error.
func Unmarshal(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "response"
		}
		return fmt.Errorf("%w: %s is %s", manager.ErrParsing, field, typeErr.Value)
	}
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Required dereferences a decoded field, failing with manager.ErrParsing
// when the upstream left it out or sent null.
func Required[T any](v *T, field string) (T, error) {
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s missing", manager.ErrParsing, field)
	}
	return *v, nil
}

// Uint16 saturates f into uint16, truncating toward zero.
func Uint16(f float64) uint16 {
	f = math.Trunc(f)
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(f)
}
