package pginterval

import (
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = Interval{}
	_ json.Unmarshaler = (*Interval)(nil)
)

// MarshalJSON encodes ival as an ISO 8601 duration string.
func (ival Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(ival.Format(StyleISO8601))
}

// UnmarshalJSON decodes a JSON string in any notation accepted by Parse.
// JSON null leaves ival unchanged.
func (ival *Interval) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("pginterval: interval must be a JSON string: %w", err)
	}
	return ival.UnmarshalText([]byte(s))
}
