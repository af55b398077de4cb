// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package shades

import (
	"testing"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute(t *testing.T) {
	block, err := NewBlock([]int{3, 5}, 2)
	require.NoError(t, err)

	store, err := Distribute(block, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []int{1, 2, 3}, store.Abscissas())
	assert.Equal(t, []Pair{
		{X: 1, F: 8, G: 235},
		{X: 2, F: 13, G: 225},
		{X: 3, F: 18, G: 215},
	}, store.Pairs())
}

func TestDistributeShareCount(t *testing.T) {
	block, err := NewBlock([]int{7, 11, 13}, 5)
	require.NoError(t, err)

	_, err = Distribute(block, 2)
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	_, err = Distribute(block, gf251.Modulus)
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	store, err := Distribute(block, gf251.Modulus-1)
	require.NoError(t, err)
	assert.Equal(t, 250, store.Len())

	_, err = Distribute(nil, 3)
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	store, err := NewStore([]int{2, 1}, []int{13, 8}, []int{225, 486})
	require.NoError(t, err)

	p, ok := store.Pair(1)
	require.True(t, ok)
	// g value normalized into the field
	assert.Equal(t, Pair{X: 1, F: 8, G: 235}, p)

	_, ok = store.Pair(3)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2}, store.Abscissas())
}

func TestNewStoreLengthMismatch(t *testing.T) {
	_, err := NewStore([]int{1, 2}, []int{8}, []int{235, 225})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewStore([]int{1}, []int{8}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewStoreDuplicateOverwrites(t *testing.T) {
	store, err := NewStore([]int{1, 2, 1}, []int{8, 13, 9}, []int{235, 225, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	p, ok := store.Pair(1)
	require.True(t, ok)
	assert.Equal(t, gf251.Element(9), p.F)
	assert.Equal(t, gf251.Element(1), p.G)
}

func TestStoreSubset(t *testing.T) {
	store := NewStoreFromPairs([]Pair{
		{X: 1, F: 8, G: 235},
		{X: 2, F: 13, G: 225},
		{X: 3, F: 18, G: 215},
	})

	sub := store.Subset([]int{3, 1, 42})
	assert.Equal(t, []int{1, 3}, sub.Abscissas())
	assert.Equal(t, 3, store.Len())
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "(1, 8, 235)", Pair{X: 1, F: 8, G: 235}.String())
}
