package colvalue

import (
	"strconv"
	"time"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/rotisserie/eris"
)

const (
	encodedDateLayout      = "2006-01-02"
	encodedTimestampLayout = "2006-01-02 15:04:05.000"
)

// Encode renders a decoded value back into partition text, so that Decode of
// the result under the same loc yields the same native value. Null renders as
// DefaultPartitionName.
func Encode(v *types.Literal, loc *time.Location) (string, error) {
	if err := VerifyPartitionTypeSupported("", v.Type); err != nil {
		return "", err
	}
	if v.IsNull() {
		return DefaultPartitionName, nil
	}

	mismatch := func() error {
		return eris.Wrapf(errno.ErrIllegalArgument, "%T is not a native %s value", v.Value, v.Type.String())
	}

	switch t := v.Type.(type) {
	case *types.BooleanType:
		b, ok := v.Value.(bool)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatBool(b), nil
	case *types.TinyintType:
		n, ok := v.Value.(int8)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatInt(int64(n), 10), nil
	case *types.SmallintType:
		n, ok := v.Value.(int16)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatInt(int64(n), 10), nil
	case *types.IntegerType:
		n, ok := v.Value.(int32)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatInt(int64(n), 10), nil
	case *types.BigintType:
		n, ok := v.Value.(int64)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatInt(n, 10), nil
	case *types.RealType:
		bits, ok := v.Value.(int64)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatFloat(float64(types.RealFromBits(bits)), 'g', -1, 32), nil
	case *types.DoubleType:
		f, ok := v.Value.(float64)
		if !ok {
			return "", mismatch()
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case *types.DecimalType:
		d, err := types.DecimalFromNative(t, v.Value)
		if err != nil {
			return "", err
		}
		return d.StringFixed(int32(t.Scale)), nil
	case *types.VarcharType, *types.CharType:
		b, ok := v.Value.([]byte)
		if !ok {
			return "", mismatch()
		}
		return string(b), nil
	case *types.DateType:
		days, ok := v.Value.(int64)
		if !ok {
			return "", mismatch()
		}
		return types.DateToTime(days).Format(encodedDateLayout), nil
	case *types.TimestampType:
		millis, ok := v.Value.(int64)
		if !ok {
			return "", mismatch()
		}
		return types.TimestampToTime(millis, loc).Format(encodedTimestampLayout), nil
	default:
		return "", errno.UnsupportedPartitionType(v.Type.String(), "")
	}
}
