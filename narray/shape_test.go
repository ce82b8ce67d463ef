// SPDX-License-Identifier: MIT

package narray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conjugate/narray"
)

// TestBroadcastShapes_Compatible verifies right-aligned size-1
// broadcasting across ranks.
func TestBroadcastShapes_Compatible(t *testing.T) {
	cases := []struct {
		name string
		a, b narray.Shape
		want narray.Shape
	}{
		{"scalar-vs-vector", narray.Shape{}, narray.Shape{3}, narray.Shape{3}},
		{"equal", narray.Shape{2, 3}, narray.Shape{2, 3}, narray.Shape{2, 3}},
		{"ones-expand", narray.Shape{2, 1}, narray.Shape{1, 3}, narray.Shape{2, 3}},
		{"rank-lift", narray.Shape{3}, narray.Shape{4, 3}, narray.Shape{4, 3}},
		{"both-scalar", narray.Shape{}, narray.Shape{}, narray.Shape{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := narray.BroadcastShapes(tc.a, tc.b)
			require.NoError(t, err, "compatible shapes must broadcast")
			assert.Equal(t, tc.want, got, "broadcast result")
		})
	}
}

// TestBroadcastShapes_Incompatible verifies ErrBroadcast on mismatched
// non-1 dimensions.
func TestBroadcastShapes_Incompatible(t *testing.T) {
	_, err := narray.BroadcastShapes(narray.Shape{2, 3}, narray.Shape{4})
	assert.ErrorIs(t, err, narray.ErrBroadcast, "3 vs 4 cannot align")

	_, err = narray.BroadcastShapes(narray.Shape{2}, narray.Shape{3})
	assert.ErrorIs(t, err, narray.ErrBroadcast, "2 vs 3 cannot align")
}

// TestBroadcastAll_Folds verifies folding over several shapes.
func TestBroadcastAll_Folds(t *testing.T) {
	got, err := narray.BroadcastAll(narray.Shape{}, narray.Shape{2, 1}, narray.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, narray.Shape{2, 3}, got, "scalar ∘ (2,1) ∘ (3)")
}

// TestShape_SizeAndEqual covers the trivial shape accessors.
func TestShape_SizeAndEqual(t *testing.T) {
	assert.Equal(t, 1, narray.Shape{}.Size(), "scalar holds one element")
	assert.Equal(t, 6, narray.Shape{2, 3}.Size())
	assert.True(t, narray.Shape{2, 3}.Equal(narray.Shape{2, 3}))
	assert.False(t, narray.Shape{2, 3}.Equal(narray.Shape{3, 2}))
	assert.False(t, narray.Shape{2}.Equal(narray.Shape{2, 1}), "rank matters")
}
