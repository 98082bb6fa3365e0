package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		desc  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"A"}, "A"},
		{"pair", []string{"A", "B"}, "A and B"},
		{"three without oxford comma", []string{"A", "B", "C"}, "A, B and C"},
		{"four", []string{"A", "B", "C", "D"}, "A, B, C and D"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.items))
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		desc      string
		satisfied []string
		failed    []string
		want      string
	}{
		{
			desc:      "nothing failed",
			satisfied: []string{"A"},
			want:      "",
		},
		{
			desc:   "only failures",
			failed: []string{"X"},
			want:   "You have X. Please review your previous selection.",
		},
		{
			desc:      "satisfied and two failures",
			satisfied: []string{"A"},
			failed:    []string{"B", "C"},
			want:      "You have A, but have B and C. Please review your previous selection.",
		},
		{
			desc:      "two satisfied and three failures",
			satisfied: []string{"A", "B"},
			failed:    []string{"C", "D", "E"},
			want:      "You have A and B, but have C, D and E. Please review your previous selection.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.satisfied, tt.failed))
		})
	}
}
