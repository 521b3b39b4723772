package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{"2.345", 2, "2.35"},
		{"7.5", 0, "8"},
		{"0.004", 2, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Round(MustMoney(tt.in), tt.places)
			assert.True(t, got.Equal(MustMoney(tt.want)), "got %s", got)
		})
	}
}
