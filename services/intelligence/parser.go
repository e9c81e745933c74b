package intelligence

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Only a "```json" at the very start and a "```" at the very end are removed;
// other fence variants are left for the decoder to reject.
var fencePattern = regexp.MustCompile("^```json\\s*|```$")

var errNullPayload = errors.New("response decoded to null")

// StripFences removes a leading ```json marker (and the whitespace after it)
// and a trailing ``` marker.
func StripFences(raw string) string {
	return fencePattern.ReplaceAllString(raw, "")
}

// ParseJSON strips markdown fences from raw and decodes it into a new T.
// A body that decodes to JSON null is treated as a failure.
func ParseJSON[T any](raw string) (*T, error) {
	cleaned := StripFences(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, errors.New("empty response body")
	}
	var out *T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errNullPayload
	}
	return out, nil
}
