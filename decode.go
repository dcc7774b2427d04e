package colvalue

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/shopspring/decimal"
)

const (
	// DefaultPartitionName marks a partition whose key value is null.
	DefaultPartitionName = "__HIVE_DEFAULT_PARTITION__"
	// HiveTextNull is the null marker of Hive's text serialization.
	HiveTextNull = `\N`

	bigDecimalSuffix = "BD"
	dateLayout       = "2006-1-2"
)

// timestampLayouts are tried in order; the first one that parses wins.
var timestampLayouts = []string{
	"2006-1-2",
	"2006-1-2 15:4",
	"2006-1-2 15:4:5",
	"2006-1-2 15:4:5.000",
	"2006-1-2 15:4:5.0000000",
	"2006-1-2 15:4:5.000000000",
}

var supportedPartitionTypes = mapset.NewSet(
	"boolean", "tinyint", "smallint", "integer", "bigint", "real", "double",
	"decimal", "varchar", "char", "date", "timestamp",
)

// VerifyPartitionTypeSupported fails with an unsupported type error unless
// values of dt can be decoded from partition text.
func VerifyPartitionTypeSupported(partitionName string, dt types.DataType) error {
	if dt == nil || !supportedPartitionTypes.Contains(dt.Name()) {
		name := "<nil>"
		if dt != nil {
			name = dt.String()
		}
		return errno.UnsupportedPartitionType(name, partitionName)
	}
	return nil
}

// Decode converts the textual partition value raw into the native value of dt.
// DefaultPartitionName decodes to the typed null. An empty raw decodes to the
// zero value of the boolean, numeric and decimal types and fails for every
// other type. loc is the zone timestamps are interpreted in, UTC if nil.
func Decode(raw string, dt types.DataType, contextName string, loc *time.Location) (*types.Literal, error) {
	if err := VerifyPartitionTypeSupported(contextName, dt); err != nil {
		return nil, err
	}
	if raw == DefaultPartitionName {
		return types.LiteralNull(dt), nil
	}
	if raw == "" {
		zero, ok := zeroValue(dt)
		if !ok {
			return nil, errno.InvalidLiteralValue(raw, dt.String(), contextName)
		}
		return &types.Literal{Value: zero, Type: dt}, nil
	}

	v, err := parseValue(raw, dt, contextName, loc)
	if err != nil {
		return nil, err
	}
	return &types.Literal{Value: v, Type: dt}, nil
}

// DecodeHiveText decodes a value read from a Hive text record: HiveTextNull
// is null and every other value, empty included, is parsed as is.
func DecodeHiveText(raw string, dt types.DataType, contextName string, loc *time.Location) (*types.Literal, error) {
	if err := VerifyPartitionTypeSupported(contextName, dt); err != nil {
		return nil, err
	}
	if raw == HiveTextNull {
		return types.LiteralNull(dt), nil
	}

	v, err := parseValue(raw, dt, contextName, loc)
	if err != nil {
		return nil, err
	}
	return &types.Literal{Value: v, Type: dt}, nil
}

func zeroValue(dt types.DataType) (any, bool) {
	switch t := dt.(type) {
	case *types.BooleanType:
		return false, true
	case *types.TinyintType:
		return int8(0), true
	case *types.SmallintType:
		return int16(0), true
	case *types.IntegerType:
		return int32(0), true
	case *types.BigintType:
		return int64(0), true
	case *types.RealType:
		return types.RealBits(0), true
	case *types.DoubleType:
		return float64(0), true
	case *types.DecimalType:
		if t.IsShort() {
			return int64(0), true
		}
		zero, _ := types.EncodeUnscaledValue(new(big.Int))
		return zero, true
	default:
		return nil, false
	}
}

func parseValue(raw string, dt types.DataType, contextName string, loc *time.Location) (any, error) {
	invalid := func() error {
		return errno.InvalidLiteralValue(raw, dt.String(), contextName)
	}

	switch t := dt.(type) {
	case *types.BooleanType:
		switch {
		case strings.EqualFold(raw, "true"):
			return true, nil
		case strings.EqualFold(raw, "false"):
			return false, nil
		}
		return nil, invalid()
	case *types.TinyintType:
		n, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return nil, invalid()
		}
		return int8(n), nil
	case *types.SmallintType:
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, invalid()
		}
		return int16(n), nil
	case *types.IntegerType:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, invalid()
		}
		return int32(n), nil
	case *types.BigintType:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalid()
		}
		return n, nil
	case *types.RealType:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, invalid()
		}
		return types.RealBits(float32(f)), nil
	case *types.DoubleType:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, invalid()
		}
		return f, nil
	case *types.DecimalType:
		v, ok := parseDecimal(raw, t)
		if !ok {
			return nil, invalid()
		}
		return v, nil
	case *types.VarcharType:
		if utf8.RuneCountInString(raw) > t.Length {
			return nil, invalid()
		}
		return []byte(raw), nil
	case *types.CharType:
		trimmed := strings.TrimRight(raw, " ")
		if utf8.RuneCountInString(trimmed) > t.Length {
			return nil, invalid()
		}
		return []byte(trimmed), nil
	case *types.DateType:
		d, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return nil, invalid()
		}
		return types.TimeToDate(d), nil
	case *types.TimestampType:
		ts, ok := parseTimestamp(raw, loc)
		if !ok {
			return nil, invalid()
		}
		return ts, nil
	default:
		return nil, errno.UnsupportedPartitionType(dt.String(), contextName)
	}
}

// parseDecimal rescales the literal to the scale of dt without rounding and
// checks the result against its precision.
func parseDecimal(raw string, dt *types.DecimalType) (any, bool) {
	s := strings.TrimSuffix(raw, bigDecimalSuffix)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, false
	}
	if d.IsZero() {
		d = decimal.Zero
	} else {
		// bound the exponent by the literal's own digits before any rescaling
		digits := int64(len(new(big.Int).Abs(d.Coefficient()).String()))
		exp := int64(d.Exponent())
		if digits+exp > int64(dt.Precision-dt.Scale) {
			return nil, false
		}
		if -exp-int64(dt.Scale) >= digits {
			return nil, false
		}
	}
	if !d.Truncate(int32(dt.Scale)).Equal(d) {
		return nil, false
	}

	unscaled := d.Shift(int32(dt.Scale)).BigInt()
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(dt.Precision)), nil)
	if new(big.Int).Abs(unscaled).Cmp(limit) >= 0 {
		return nil, false
	}

	if dt.IsShort() {
		return unscaled.Int64(), true
	}
	encoded, err := types.EncodeUnscaledValue(unscaled)
	if err != nil {
		return nil, false
	}
	return encoded, true
}

func parseTimestamp(raw string, loc *time.Location) (int64, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		wall, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		t := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)
		// a wall clock time skipped by a zone transition is normalized by time.Date
		if t.Hour() != wall.Hour() || t.Minute() != wall.Minute() || t.Day() != wall.Day() {
			return 0, false
		}
		return t.UnixMilli(), true
	}
	return 0, false
}
