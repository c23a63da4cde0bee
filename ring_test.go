package smiles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRingMapping(t *testing.T) {
	r := NewRing(5)

	type mapping struct {
		Render, Logical int
		Middle          bool
	}
	var got []mapping
	for i := 0; i < r.RenderLen(); i++ {
		got = append(got, mapping{i, r.Logical(i), r.InMiddle(i)})
	}
	want := []mapping{
		{0, 0, false}, {1, 1, false}, {2, 2, false}, {3, 3, false}, {4, 4, false},
		{5, 0, true}, {6, 1, true}, {7, 2, true}, {8, 3, true}, {9, 4, true},
		{10, 0, false}, {11, 1, false}, {12, 2, false}, {13, 3, false}, {14, 4, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestRingStep(t *testing.T) {
	r := NewRing(4)
	tests := []struct {
		logical, delta, want int
	}{
		{0, 1, 1},
		{3, 1, 0},
		{0, -1, 3},
		{2, 6, 0},
		{1, -9, 0},
		{-1, 0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Step(tt.logical, tt.delta), "Step(%d, %d)", tt.logical, tt.delta)
	}
}

func TestRingCandidates(t *testing.T) {
	r := NewRing(24)
	if diff := cmp.Diff([3]int{5, 29, 53}, r.Candidates(5)); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([3]int{23, 47, 71}, r.Candidates(-1)); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestRingNearest(t *testing.T) {
	r := NewRing(24)
	tests := []struct {
		name             string
		current, logical int
		want             int
	}{
		{"middle copy", 24, 1, 25},
		{"first copy", 24, 23, 23},
		{"third copy", 47, 0, 48},
		{"drag target", 24, 5, 29},
		{"stay", 30, 6, 30},
		{"tie keeps earlier", 36, 0, 24},
		{"from the far left", 0, 20, 20},
		{"from the far right", 71, 3, 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Nearest(tt.current, tt.logical))
		})
	}
}

func TestRingEmpty(t *testing.T) {
	r := NewRing(-3)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.RenderLen())
	assert.Equal(t, 0, r.Normalize(7))
	assert.Equal(t, 0, r.Logical(4))
	assert.Equal(t, 0, r.Middle(2))
	assert.False(t, r.InMiddle(0))
}
