package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The model returns loosely typed JSON: a documented string may arrive as a
// number and a documented number as a quoted string. These scalar types
// accept either form so that decoding never rejects a payload that would
// still render.

// Text is a string that also accepts JSON numbers and booleans.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	// numbers, booleans and anything else are kept verbatim
	*t = Text(data)
	return nil
}

func (t Text) String() string { return string(t) }

// Number is a float64 that also accepts numeric strings. A string that does
// not hold a number decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// String prints the number the way a browser would: no exponent, no
// trailing zeros.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Flag is a bool that also accepts "true"/"false" strings.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b, _ := strconv.ParseBool(strings.TrimSpace(s))
		*f = Flag(b)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil && !bytes.Equal(data, []byte("null")) {
		return err
	}
	*f = Flag(b)
	return nil
}
