package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. HTML form values arrive as strings.
// null and "" decode to zero so that "required" validation reports the field as missing.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw, err := flexLiteral(data)
	if err != nil || raw == "" {
		*f = 0
		return err
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a whole number", raw)
	}
	*f = FlexInt(v)
	return nil
}

// Int64 returns the value as int64
func (f FlexInt) Int64() int64 { return int64(f) }

// Int returns the value as int
func (f FlexInt) Int() int { return int(f) }

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, err := flexLiteral(data)
	if err != nil || raw == "" {
		*f = 0
		return err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the value as float64
func (f FlexFloat) Float64() float64 { return float64(f) }

func flexLiteral(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return "", fmt.Errorf("malformed string: %w", err)
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
