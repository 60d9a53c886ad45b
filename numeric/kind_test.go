package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	assert.Equal(t, []string{"Byte", "Short", "Int32", "Int64", "Float32", "Float64", "Decimal"}, KindStrings())
	for _, k := range KindValues() {
		assert.True(t, k.IsAKind())
		parsed, err := KindString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := KindString("float64")
	require.NoError(t, err)
	assert.Equal(t, Float64, k)
	_, err = KindString("Complex128")
	assert.Error(t, err)
	assert.False(t, Kind(42).IsAKind())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKindBitSize(t *testing.T) {
	assert.Equal(t, 8, Byte.BitSize())
	assert.Equal(t, 16, Short.BitSize())
	assert.Equal(t, 32, Int32.BitSize())
	assert.Equal(t, 64, Int64.BitSize())
	assert.Equal(t, 32, Float32.BitSize())
	assert.Equal(t, 64, Float64.BitSize())
	assert.Zero(t, Decimal.BitSize())
}

func TestKindIsIntegral(t *testing.T) {
	for _, k := range []Kind{Byte, Short, Int32, Int64} {
		assert.True(t, k.IsIntegral(), k.String())
	}
	for _, k := range []Kind{Float32, Float64, Decimal, Kind(-1)} {
		assert.False(t, k.IsIntegral(), k.String())
	}
}

func TestWidest(t *testing.T) {
	assert.Equal(t, Int32, widest(Byte, Int32))
	assert.Equal(t, Decimal, widest(Decimal, Float32))
	assert.Equal(t, Float64, widest(Float64, Float64))
}
