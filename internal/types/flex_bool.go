package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexBool is a bool that can be unmarshaled from a JSON bool or from the
// "Yes"/"No" strings the health-monitoring form submits.
type FlexBool bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "true", "1":
			*f = true
		case "no", "false", "0", "":
			*f = false
		default:
			return fmt.Errorf("FlexBool: unrecognized value %q", s)
		}
		return nil
	}

	return fmt.Errorf("FlexBool: unexpected type, expected bool or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool converts FlexBool back to bool.
func (f FlexBool) Bool() bool {
	return bool(f)
}
