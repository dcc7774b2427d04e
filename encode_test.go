package colvalue

import (
	"math"
	"testing"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		raw      string
		dt       types.DataType
		expected string
	}{
		{"TRUE", types.Boolean, "true"},
		{"-7", types.Tinyint, "-7"},
		{"+42", types.Integer, "42"},
		{"1.5", types.Decimal(5, 2), "1.50"},
		{"123.45BD", types.Decimal(5, 2), "123.45"},
		{"-123456789012345678.91", types.Decimal(20, 2), "-123456789012345678.91"},
		{"ab  ", types.Char(3), "ab"},
		{"2024-1-5", types.Date, "2024-01-05"},
		{"2024-1-5 9:5", types.Timestamp, "2024-01-05 09:05:00.000"},
		{DefaultPartitionName, types.Bigint, DefaultPartitionName},
		{"", types.Bigint, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.raw+" "+tt.dt.String(), func(t *testing.T) {
			v, err := Decode(tt.raw, tt.dt, "p", nil)
			require.NoError(t, err)
			s, err := Encode(v, nil)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	ny := mustLocation(t, "America/New_York")

	tests := []struct {
		raw string
		dt  types.DataType
	}{
		{"false", types.Boolean},
		{"127", types.Tinyint},
		{"-32768", types.Smallint},
		{"2147483647", types.Integer},
		{"-9223372036854775808", types.Bigint},
		{"0.00", types.Decimal(3, 2)},
		{"-99999.99999", types.Decimal(10, 5)},
		{"99999999999999999999999999999999999.999", types.Decimal(38, 3)},
		{"héllo wörld", types.UnboundedVarchar()},
		{"x", types.Char(1)},
		{"0001-01-01", types.Date},
		{"9999-12-31", types.Date},
		{"2024-03-10 01:59:59.999", types.Timestamp},
		{"2024-11-03 00:15:00", types.Timestamp},
		{DefaultPartitionName, types.Timestamp},
	}
	for _, tt := range tests {
		t.Run(tt.raw+" "+tt.dt.String(), func(t *testing.T) {
			first, err := Decode(tt.raw, tt.dt, "p", ny)
			require.NoError(t, err)
			s, err := Encode(first, ny)
			require.NoError(t, err)
			second, err := Decode(s, tt.dt, "p", ny)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestEncode_FloatingPointBits(t *testing.T) {
	for _, f := range []float32{0, 1.5, -3.25, math.MaxFloat32, math.SmallestNonzeroFloat32, 0.1, float32(math.Inf(1)), float32(math.Inf(-1))} {
		v := types.LiteralReal(f)
		s, err := Encode(v, nil)
		require.NoError(t, err)
		back, err := Decode(s, types.Real, "r", nil)
		require.NoError(t, err)
		assert.Equal(t, v.Value, back.Value, s)
	}

	for _, f := range []float64{0, 0.1, -1e300, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Pi, math.Inf(1), math.Inf(-1)} {
		v := types.LiteralDouble(f)
		s, err := Encode(v, nil)
		require.NoError(t, err)
		back, err := Decode(s, types.Double, "d", nil)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(back.Value.(float64)), s)
	}
}

func TestEncode_Infinity(t *testing.T) {
	for _, raw := range []string{"1e40", "-1e40"} {
		v, err := Decode(raw, types.Real, "r", nil)
		require.NoError(t, err)
		s, err := Encode(v, nil)
		require.NoError(t, err)
		back, err := Decode(s, types.Real, "r", nil)
		require.NoError(t, err)
		assert.Equal(t, v.Value, back.Value, s)
	}

	v, err := Decode("1e400", types.Double, "d", nil)
	require.NoError(t, err)
	s, err := Encode(v, nil)
	require.NoError(t, err)
	assert.Equal(t, "+Inf", s)
	back, err := Decode(s, types.Double, "d", nil)
	require.NoError(t, err)
	assert.Equal(t, v.Value, back.Value)
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(types.LiteralVarbinary([]byte("x")), nil)
	assert.ErrorIs(t, err, errno.ErrUnsupportedType)

	_, err = Encode(&types.Literal{Value: "not an int", Type: types.Bigint}, nil)
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)
}
