package interval_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounded-integer-generator/interval"
	"bounded-integer-generator/primitive"
)

func TestSuccessor(t *testing.T) {
	v := big.NewInt(41)

	assert.Equal(t, "42", interval.Successor(v).String())
	assert.Equal(t, "41", v.String(), "input must not be mutated")
}

func TestRange_Contains(t *testing.T) {
	r := interval.NewInt64(-8, 7)

	assert.True(t, r.Contains(big.NewInt(-8)))
	assert.True(t, r.Contains(big.NewInt(0)))
	assert.True(t, r.Contains(big.NewInt(7)))
	assert.False(t, r.Contains(big.NewInt(-9)))
	assert.False(t, r.Contains(big.NewInt(8)))
}

func TestRange_IsInverted(t *testing.T) {
	assert.False(t, interval.NewInt64(0, 0).IsInverted())
	assert.False(t, interval.NewInt64(-8, 7).IsInverted())
	assert.True(t, interval.NewInt64(7, -8).IsInverted())
}

func TestRange_Each(t *testing.T) {
	// The full domain of u8; the walk must terminate by bound comparison.
	r := interval.NewInt64(0, 255)

	var got []int64
	r.Each(func(v *big.Int) {
		got = append(got, v.Int64())
	})

	require.Len(t, got, 256)
	assert.Equal(t, int64(0), got[0])
	assert.Equal(t, int64(255), got[255])

	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1]+1, got[i])
	}
}

func TestRange_EachSingleValue(t *testing.T) {
	r := interval.NewInt64(5, 5)

	count := 0
	r.Each(func(*big.Int) { count++ })

	assert.Equal(t, 1, count)
}

func TestRender(t *testing.T) {
	lit, err := interval.Render(primitive.KindI8, big.NewInt(-8))
	require.NoError(t, err)
	assert.Equal(t, "-8i8", lit)

	lit, err = interval.Render(primitive.KindU128, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, "100u128", lit)

	_, err = interval.Render(primitive.KindI8, big.NewInt(128))
	assert.ErrorIs(t, err, interval.ErrNotRepresentable)
}

func TestTryRender(t *testing.T) {
	lit, ok := interval.TryRender(primitive.KindU8, big.NewInt(255))
	require.True(t, ok)
	assert.Equal(t, "255u8", lit)

	_, ok = interval.TryRender(primitive.KindU8, big.NewInt(256))
	assert.False(t, ok)

	_, ok = interval.TryRender(primitive.KindI8, big.NewInt(-129))
	assert.False(t, ok)
}
