package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil renders empty", in: nil, want: ""},
		{name: "string passes through", in: "FHE + Web3", want: "FHE + Web3"},
		{name: "int", in: 9, want: "9"},
		{name: "negative int", in: -1, want: "-1"},
		{name: "score keeps two decimals", in: 6.15, want: "6.15"},
		{name: "float drops trailing zeros", in: 5.0, want: "5"},
		{name: "negative float", in: -1.5, want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellString(tt.in))
		})
	}
}

func TestCompareCells(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "int less", a: 1, b: 2, want: -1},
		{name: "int greater", a: 3, b: 2, want: 1},
		{name: "int equal", a: 2, b: 2, want: 0},
		{name: "float vs int", a: 5.75, b: 6, want: -1},
		{name: "string less", a: "aztec", b: "zama", want: -1},
		{name: "string equal", a: "zama", b: "zama", want: 0},
		{name: "nil counts as zero", a: nil, b: 1, want: -1},
		{name: "nil vs negative", a: nil, b: -1, want: 1},
		{name: "number sorts before string", a: 10, b: "aztec", want: -1},
		{name: "string sorts after number", a: "aztec", b: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareCells(tt.a, tt.b))
		})
	}
}
