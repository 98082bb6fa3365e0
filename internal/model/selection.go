package model

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Selection is a list answer that distinguishes "not answered" from "answered with nothing".
// The zero value is unset.
type Selection struct {
	items []string
	set   bool
}

// Select returns a set selection holding items (possibly none)
func Select(items ...string) Selection {
	cp := make([]string, len(items))
	copy(cp, items)
	return Selection{items: cp, set: true}
}

// Unset returns a selection that has not been answered
func Unset() Selection {
	return Selection{}
}

// IsSet reports whether the question was answered
func (s Selection) IsSet() bool { return s.set }

// IsEmpty reports whether the question was answered with no selections
func (s Selection) IsEmpty() bool { return s.set && len(s.items) == 0 }

// IsNotEmpty reports whether at least one item was selected
func (s Selection) IsNotEmpty() bool { return s.set && len(s.items) > 0 }

// Len returns the number of selected items
func (s Selection) Len() int { return len(s.items) }

// Items returns a copy of the selected items, nil when unset
func (s Selection) Items() []string {
	if !s.set {
		return nil
	}
	cp := make([]string, len(s.items))
	copy(cp, s.items)
	return cp
}

// Collate merges two selections. The result is set when either input is set.
func Collate(a, b Selection) Selection {
	if !a.set && !b.set {
		return Unset()
	}
	merged := make([]string, 0, len(a.items)+len(b.items))
	merged = append(merged, a.items...)
	merged = append(merged, b.items...)
	return Selection{items: merged, set: true}
}

func (s Selection) String() string {
	if !s.set {
		return "unspecified"
	}
	return "[" + strings.Join(s.items, ",") + "]"
}

// MarshalJSON renders an unset selection as null and an empty one as []
func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON treats null as unset
func (s *Selection) UnmarshalJSON(data []byte) error {
	var items *[]string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		*s = Unset()
		return nil
	}
	*s = Select(*items...)
	return nil
}

// MarshalYAML renders an unset selection as null
func (s Selection) MarshalYAML() (interface{}, error) {
	if !s.set {
		return nil, nil
	}
	if s.items == nil {
		return []string{}, nil
	}
	return s.items, nil
}

// UnmarshalYAML treats null as unset
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*s = Unset()
		return nil
	}
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*s = Select(items...)
	return nil
}
