package colvalue

import (
	"testing"
	"time"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPartitionSchema(t *testing.T) *types.RowType {
	schema, err := types.ParseSchema("b boolean, i integer, t tinyint, r real, d double, dec decimal(10,2), s varchar(8), c char(4), ds date, ts timestamp")
	require.NoError(t, err)
	return schema
}

func TestPartitionRowRecord(t *testing.T) {
	ny := mustLocation(t, "America/New_York")
	schema := testPartitionSchema(t)

	record, err := NewPartitionRowRecord(schema, map[string]string{
		"b":   "true",
		"i":   "42",
		"t":   "-3",
		"r":   "1.5",
		"d":   "2.25",
		"dec": "12.30",
		"s":   "hello",
		"c":   "ab  ",
		"ds":  "2024-01-15",
		"ts":  "2024-01-15 10:30:00",
	}, ny)
	require.NoError(t, err)

	assert.Equal(t, schema, record.Schema())
	assert.Equal(t, 10, record.Length())

	b, err := record.GetBoolean("b")
	assert.NoError(t, err)
	assert.True(t, b)

	i, err := record.GetLong("i")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), i)

	tiny, err := record.GetLong("t")
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), tiny)

	r, err := record.GetDouble("r")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, r)

	d, err := record.GetDouble("d")
	assert.NoError(t, err)
	assert.Equal(t, 2.25, d)

	dec, err := record.GetDecimal("dec")
	assert.NoError(t, err)
	assert.Equal(t, "12.3", dec.String())

	s, err := record.GetString("s")
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)

	c, err := record.GetString("c")
	assert.NoError(t, err)
	assert.Equal(t, "ab", c)

	ds, err := record.GetDate("ds")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ds)

	ts, err := record.GetTimestamp("ts")
	assert.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 15, 10, 30, 0, 0, ny).Equal(ts))
	assert.Equal(t, ny, ts.Location())

	lit, err := record.Literal("i")
	assert.NoError(t, err)
	assert.Equal(t, types.LiteralInteger(42), lit)
}

func TestPartitionRowRecord_Nulls(t *testing.T) {
	schema := testPartitionSchema(t)
	record, err := NewPartitionRowRecord(schema, map[string]string{
		"i": DefaultPartitionName,
		"b": "",
	}, nil)
	require.NoError(t, err)

	isNull, err := record.IsNullAt("i")
	assert.NoError(t, err)
	assert.True(t, isNull)

	// missing keys are null as well
	isNull, err = record.IsNullAt("s")
	assert.NoError(t, err)
	assert.True(t, isNull)

	// empty boolean is false, not null
	isNull, err = record.IsNullAt("b")
	assert.NoError(t, err)
	assert.False(t, isNull)

	_, err = record.GetLong("i")
	assert.ErrorIs(t, err, errno.ErrIllegalState)

	v, err := record.Get("i")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestPartitionRowRecord_Errors(t *testing.T) {
	schema := testPartitionSchema(t)

	_, err := NewPartitionRowRecord(schema, map[string]string{"i": "x"}, nil)
	assert.ErrorIs(t, err, errno.ErrInvalidLiteralValue)

	record, err := NewPartitionRowRecord(schema, map[string]string{"i": "1", "s": "a"}, nil)
	require.NoError(t, err)

	_, err = record.GetString("i")
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)

	_, err = record.GetLong("missing")
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)

	_, err = record.IsNullAt("missing")
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)

	_, err = record.Get("missing")
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)
}

func TestPartitionRowRecord_Predicate(t *testing.T) {
	schema := testPartitionSchema(t)
	record, err := NewPartitionRowRecord(schema, map[string]string{"i": "5", "ds": "2024-01-15", "s": "x"}, nil)
	require.NoError(t, err)

	i, err := schema.Column("i")
	require.NoError(t, err)
	ds, err := schema.Column("ds")
	require.NoError(t, err)

	predicate := types.NewAnd(
		types.NewGreaterThan(i, types.LiteralInteger(3)),
		types.NewEqualTo(ds, types.LiteralDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))),
	)
	res, err := predicate.Eval(record)
	assert.NoError(t, err)
	assert.Equal(t, true, res)

	res, err = types.NewIsNull(types.NewColumn("b", types.Boolean)).Eval(record)
	assert.NoError(t, err)
	assert.Equal(t, true, res)
}
