package block

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowType(t *testing.T) {
	cases := []struct {
		signature string
		expected  arrow.DataType
	}{
		{"boolean", arrow.FixedWidthTypes.Boolean},
		{"tinyint", arrow.PrimitiveTypes.Int8},
		{"bigint", arrow.PrimitiveTypes.Int64},
		{"real", arrow.PrimitiveTypes.Float32},
		{"decimal(20,2)", &arrow.Decimal128Type{Precision: 20, Scale: 2}},
		{"varchar(3)", arrow.BinaryTypes.String},
		{"varbinary", arrow.BinaryTypes.Binary},
		{"date", arrow.FixedWidthTypes.Date32},
		{"timestamp", &arrow.TimestampType{Unit: arrow.Millisecond}},
		{"array(integer)", arrow.ListOf(arrow.PrimitiveTypes.Int32)},
		{"map(varchar,double)", arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Float64)},
	}
	for _, c := range cases {
		at, err := ArrowType(types.MustParse(c.signature))
		assert.NoError(t, err, c.signature)
		assert.True(t, arrow.TypeEqual(c.expected, at), "%s: %s", c.signature, at)
	}
}

func TestToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	mapType := types.NewMapType(types.UnboundedVarchar(), types.Integer)
	b, err := NewMapBlockBuilder(mapType, 3)
	require.NoError(t, err)

	require.NoError(t, b.BeginEntry())
	require.NoError(t, b.Append([]byte("x"), int32(10)))
	require.NoError(t, b.Append([]byte("y"), nil))
	require.NoError(t, b.CloseEntry())
	require.NoError(t, b.AppendNull())
	require.NoError(t, b.BeginEntry())
	require.NoError(t, b.Append([]byte("z"), int32(30)))
	require.NoError(t, b.CloseEntry())
	col, err := b.Build()
	require.NoError(t, err)

	arr, err := ToArrow(mem, col)
	require.NoError(t, err)
	defer arr.Release()

	m := arr.(*array.Map)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.IsNull(1))

	keys := m.Keys().(*array.String)
	items := m.Items().(*array.Int32)

	start, end := m.ValueOffsets(0)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(2), end)
	assert.Equal(t, "x", keys.Value(0))
	assert.Equal(t, int32(10), items.Value(0))
	assert.Equal(t, "y", keys.Value(1))
	assert.True(t, items.IsNull(1))

	start, end = m.ValueOffsets(2)
	assert.Equal(t, int64(1), end-start)
	assert.Equal(t, "z", keys.Value(int(start)))
	assert.Equal(t, int32(30), items.Value(int(start)))
}

func TestToArrow_Decimals(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	short := types.Decimal(10, 2)
	long := types.Decimal(30, 2)
	mapType := types.NewMapType(short, long)

	s, err := types.DecimalToNative(short, decimal.RequireFromString("-12.34"))
	require.NoError(t, err)
	l, err := types.DecimalToNative(long, decimal.RequireFromString("12345678901234567890.12"))
	require.NoError(t, err)

	m, err := MapBlockOf(mapType, []any{s}, []any{l})
	require.NoError(t, err)
	col, err := NewMapColumn(mapType, []*MapBlock{m})
	require.NoError(t, err)

	arr, err := ToArrow(mem, col)
	require.NoError(t, err)
	defer arr.Release()

	ma := arr.(*array.Map)
	keys := ma.Keys().(*array.Decimal128)
	items := ma.Items().(*array.Decimal128)
	assert.Equal(t, "-1234", keys.Value(0).BigInt().String())
	assert.Equal(t, "1234567890123456789012", items.Value(0).BigInt().String())
}
