package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidAnswer is returned when a yes/no field holds text that is neither
var ErrInvalidAnswer = errors.New("invalid answer")

// Ternary is a yes/no flag that may not have been answered yet
type Ternary int

const (
	Unspecified Ternary = iota
	Yes
	No
)

// ParseTernary converts case-data text into a Ternary.
// Empty text is Unspecified; unrecognised text is an error.
func ParseTernary(s string) (Ternary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unspecified, nil
	case "yes", "true", "y":
		return Yes, nil
	case "no", "false", "n":
		return No, nil
	default:
		return Unspecified, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
}

// Presence maps an optional free-text answer onto a Ternary. A missing field
// is Unspecified; a blank answer is No.
func Presence(s *string) Ternary {
	switch {
	case s == nil:
		return Unspecified
	case strings.TrimSpace(*s) == "":
		return No
	default:
		return Yes
	}
}

// IsYes reports whether the flag was answered Yes
func (t Ternary) IsYes() bool { return t == Yes }

// IsNo reports whether the flag was answered No
func (t Ternary) IsNo() bool { return t == No }

// IsSpecified reports whether the flag was answered at all
func (t Ternary) IsSpecified() bool { return t == Yes || t == No }

func (t Ternary) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unspecified"
	}
}

// MarshalJSON renders Unspecified as null
func (t Ternary) MarshalJSON() ([]byte, error) {
	if !t.IsSpecified() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts null, "yes"/"no" and booleans
func (t *Ternary) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = Unspecified
	case bool:
		*t = No
		if v {
			*t = Yes
		}
	case string:
		parsed, err := ParseTernary(v)
		if err != nil {
			return err
		}
		*t = parsed
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAnswer, string(data))
	}
	return nil
}

// MarshalYAML renders Unspecified as null
func (t Ternary) MarshalYAML() (interface{}, error) {
	if !t.IsSpecified() {
		return nil, nil
	}
	return t.String(), nil
}

// UnmarshalYAML accepts the same spellings as ParseTernary
func (t *Ternary) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*t = Unspecified
		return nil
	}
	parsed, err := ParseTernary(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
