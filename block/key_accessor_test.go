package block

import (
	"math"
	"testing"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAccessor_ComparatorForms(t *testing.T) {
	k, err := NewKeyAccessor(types.UnboundedVarchar())
	require.NoError(t, err)
	assert.Equal(t, "varchar", k.KeyType().String())

	mapType := types.NewMapType(types.UnboundedVarchar(), types.Bigint)
	a, err := MapBlockOf(mapType, []any{[]byte("x"), []byte("y")}, []any{int64(1), int64(2)})
	require.NoError(t, err)
	b, err := MapBlockOf(mapType, []any{[]byte("y")}, []any{int64(3)})
	require.NoError(t, err)

	assert.True(t, k.NativeEqual([]byte("y"), []byte("y")))
	assert.False(t, k.NativeEqual([]byte("y"), []byte("x")))

	assert.True(t, k.NativeBlockEqual([]byte("y"), a, 2))
	assert.False(t, k.NativeBlockEqual([]byte("y"), a, 0))

	assert.True(t, k.BlockEqual(a, 2, b, 0))
	assert.False(t, k.BlockEqual(a, 0, b, 0))

	assert.Equal(t, k.NativeHash([]byte("y")), k.BlockHash(a, 2))
	assert.Equal(t, k.BlockHash(a, 2), k.BlockHash(b, 0))
}

func TestKeyAccessor_Double(t *testing.T) {
	k, err := NewKeyAccessor(types.Double)
	require.NoError(t, err)

	negZero := math.Copysign(0, -1)
	assert.True(t, k.NativeEqual(negZero, 0.0))
	assert.Equal(t, k.NativeHash(0.0), k.NativeHash(negZero))
	assert.NotEqual(t, k.NativeHash(1.0), k.NativeHash(2.0))
}

func TestKeyAccessor_Row(t *testing.T) {
	rowType, err := types.ParseSchema("a integer, b varchar")
	require.NoError(t, err)
	k, err := NewKeyAccessor(rowType)
	require.NoError(t, err)

	r1 := []any{int32(1), []byte("x")}
	r2 := []any{int32(1), []byte("x")}
	r3 := []any{int32(1), nil}

	assert.True(t, k.NativeEqual(r1, r2))
	assert.Equal(t, k.NativeHash(r1), k.NativeHash(r2))
	assert.False(t, k.NativeEqual(r1, r3))
	assert.True(t, k.NativeEqual(r3, []any{int32(1), nil}))
}

func TestKeyAccessor_Unsupported(t *testing.T) {
	_, err := NewKeyAccessor(types.NewMapType(types.Bigint, types.Bigint))
	assert.ErrorIs(t, err, errno.ErrUnsupportedType)

	_, err = NewKeyAccessor(types.NewArrayType(types.NewMapType(types.Bigint, types.Bigint)))
	assert.ErrorIs(t, err, errno.ErrUnsupportedType)

	_, err = NewKeyAccessor(types.Unknown)
	assert.ErrorIs(t, err, errno.ErrUnsupportedType)
}
