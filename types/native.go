package types

import (
	"math"
	"math/big"
	"time"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// LongDecimalSize is the byte width of an encoded long decimal.
const LongDecimalSize = 16

const millisPerDay = int64(24 * time.Hour / time.Millisecond)

// RealBits returns the raw bits of f widened to the 64-bit slot REAL values live in.
func RealBits(f float32) int64 {
	return int64(int32(math.Float32bits(f)))
}

func RealFromBits(v int64) float32 {
	return math.Float32frombits(uint32(v))
}

// EncodeUnscaledValue encodes v as 16 bytes of little-endian two's complement.
func EncodeUnscaledValue(v *big.Int) ([]byte, error) {
	if v.BitLen() > LongDecimalSize*8-1 {
		return nil, eris.Wrapf(errno.ErrIllegalArgument, "unscaled value %s does not fit in %d bytes", v.String(), LongDecimalSize)
	}

	abs := new(big.Int).Abs(v)
	be := abs.FillBytes(make([]byte, LongDecimalSize))
	out := make([]byte, LongDecimalSize)
	for i := range be {
		out[i] = be[LongDecimalSize-1-i]
	}
	if v.Sign() < 0 {
		negate(out)
	}
	return out, nil
}

func DecodeUnscaledValue(b []byte) *big.Int {
	buf := make([]byte, len(b))
	copy(buf, b)
	negative := len(buf) > 0 && buf[len(buf)-1]&0x80 != 0
	if negative {
		negate(buf)
	}
	be := make([]byte, len(buf))
	for i := range buf {
		be[i] = buf[len(buf)-1-i]
	}
	v := new(big.Int).SetBytes(be)
	if negative {
		v.Neg(v)
	}
	return v
}

// negate flips a little-endian two's complement number in place.
func negate(b []byte) {
	carry := uint16(1)
	for i := range b {
		s := uint16(^b[i]) + carry
		b[i] = byte(s)
		carry = s >> 8
	}
}

// DecimalFromNative converts a short or long decimal native value to a decimal.Decimal.
func DecimalFromNative(dt *DecimalType, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.New(n, int32(-dt.Scale)), nil
	case []byte:
		return decimal.NewFromBigInt(DecodeUnscaledValue(n), int32(-dt.Scale)), nil
	default:
		return decimal.Decimal{}, eris.Wrapf(errno.ErrIllegalArgument, "%T is not a native %s value", v, dt.String())
	}
}

// DecimalToNative stores the unscaled value of d, which must already carry the scale of dt.
func DecimalToNative(dt *DecimalType, d decimal.Decimal) (any, error) {
	unscaled := d.Shift(int32(dt.Scale)).BigInt()
	if dt.IsShort() {
		if !unscaled.IsInt64() {
			return nil, eris.Wrapf(errno.ErrIllegalArgument, "%s overflows %s", d.String(), dt.String())
		}
		return unscaled.Int64(), nil
	}
	return EncodeUnscaledValue(unscaled)
}

func DateToTime(days int64) time.Time {
	return time.UnixMilli(days * millisPerDay).UTC()
}

func TimeToDate(t time.Time) int64 {
	return floorDiv(t.UnixMilli(), millisPerDay)
}

func TimestampToTime(millis int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(millis).In(loc)
}

func floorDiv(x int64, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// typedValue is implemented by native values that know their own type, such
// as map blocks.
type typedValue interface {
	Type() *MapType
}

// CheckNative verifies that v is a native value of dt. nil is the null of
// every type.
func CheckNative(dt DataType, v any) error {
	if v == nil {
		return nil
	}

	ok := false
	switch t := dt.(type) {
	case *BooleanType:
		_, ok = v.(bool)
	case *TinyintType:
		_, ok = v.(int8)
	case *SmallintType:
		_, ok = v.(int16)
	case *IntegerType:
		_, ok = v.(int32)
	case *BigintType, *RealType, *DateType, *TimestampType:
		_, ok = v.(int64)
	case *DoubleType:
		_, ok = v.(float64)
	case *DecimalType:
		if t.IsShort() {
			_, ok = v.(int64)
		} else {
			b, isBytes := v.([]byte)
			ok = isBytes && len(b) == LongDecimalSize
		}
	case *VarcharType, *CharType, *VarbinaryType:
		_, ok = v.([]byte)
	case *ArrayType:
		elements, isSlice := v.([]any)
		if !isSlice {
			break
		}
		for _, e := range elements {
			if err := CheckNative(t.ElementType, e); err != nil {
				return err
			}
		}
		ok = true
	case *RowType:
		fields, isSlice := v.([]any)
		if !isSlice || len(fields) != len(t.Fields) {
			break
		}
		for i, f := range t.Fields {
			if err := CheckNative(f.DataType, fields[i]); err != nil {
				return err
			}
		}
		ok = true
	case *MapType:
		m, isMap := v.(typedValue)
		ok = isMap && Equals(m.Type(), t)
	}

	if !ok {
		return eris.Wrapf(errno.ErrIllegalArgument, "%T is not a native %s value", v, dt.String())
	}
	return nil
}
