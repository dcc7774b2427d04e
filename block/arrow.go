package block

import (
	"math/big"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/rotisserie/eris"
)

// ArrowType maps a logical type to its Arrow equivalent.
func ArrowType(dt types.DataType) (arrow.DataType, error) {
	switch t := dt.(type) {
	case *types.BooleanType:
		return arrow.FixedWidthTypes.Boolean, nil
	case *types.TinyintType:
		return arrow.PrimitiveTypes.Int8, nil
	case *types.SmallintType:
		return arrow.PrimitiveTypes.Int16, nil
	case *types.IntegerType:
		return arrow.PrimitiveTypes.Int32, nil
	case *types.BigintType:
		return arrow.PrimitiveTypes.Int64, nil
	case *types.RealType:
		return arrow.PrimitiveTypes.Float32, nil
	case *types.DoubleType:
		return arrow.PrimitiveTypes.Float64, nil
	case *types.DecimalType:
		return &arrow.Decimal128Type{Precision: int32(t.Precision), Scale: int32(t.Scale)}, nil
	case *types.VarcharType, *types.CharType:
		return arrow.BinaryTypes.String, nil
	case *types.VarbinaryType:
		return arrow.BinaryTypes.Binary, nil
	case *types.DateType:
		return arrow.FixedWidthTypes.Date32, nil
	case *types.TimestampType:
		return &arrow.TimestampType{Unit: arrow.Millisecond}, nil
	case *types.UnknownType:
		return arrow.Null, nil
	case *types.ArrayType:
		elem, err := ArrowType(t.ElementType)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	case *types.MapType:
		k, err := ArrowType(t.KeyType)
		if err != nil {
			return nil, err
		}
		v, err := ArrowType(t.ValueType)
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(k, v), nil
	case *types.RowType:
		fields := make([]arrow.Field, len(t.Fields))
		for i, f := range t.Fields {
			ft, err := ArrowType(f.DataType)
			if err != nil {
				return nil, err
			}
			fields[i] = arrow.Field{Name: f.Name, Type: ft, Nullable: true}
		}
		return arrow.StructOf(fields...), nil
	default:
		return nil, errno.UnsupportedOperation(dt.String(), "Arrow export")
	}
}

// ToArrow exports a map column as an Arrow map array. The caller owns the
// returned array and must Release it.
func ToArrow(mem memory.Allocator, col *MapColumn) (arrow.Array, error) {
	at, err := ArrowType(col.Type())
	if err != nil {
		return nil, err
	}
	b := array.NewBuilder(mem, at)
	defer b.Release()

	for i := 0; i < col.PositionCount(); i++ {
		if col.IsNull(i) {
			b.AppendNull()
			continue
		}
		if err := appendArrow(b, col.Type(), col.GetMap(i)); err != nil {
			return nil, err
		}
	}
	return b.NewArray(), nil
}

func appendArrow(b array.Builder, dt types.DataType, v any) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch t := dt.(type) {
	case *types.BooleanType:
		b.(*array.BooleanBuilder).Append(v.(bool))
	case *types.TinyintType:
		b.(*array.Int8Builder).Append(v.(int8))
	case *types.SmallintType:
		b.(*array.Int16Builder).Append(v.(int16))
	case *types.IntegerType:
		b.(*array.Int32Builder).Append(v.(int32))
	case *types.BigintType:
		b.(*array.Int64Builder).Append(v.(int64))
	case *types.RealType:
		b.(*array.Float32Builder).Append(types.RealFromBits(v.(int64)))
	case *types.DoubleType:
		b.(*array.Float64Builder).Append(v.(float64))
	case *types.DecimalType:
		num, err := decimal128Of(v)
		if err != nil {
			return err
		}
		b.(*array.Decimal128Builder).Append(num)
	case *types.VarcharType, *types.CharType:
		b.(*array.StringBuilder).Append(string(v.([]byte)))
	case *types.VarbinaryType:
		b.(*array.BinaryBuilder).Append(v.([]byte))
	case *types.DateType:
		b.(*array.Date32Builder).Append(arrow.Date32(v.(int64)))
	case *types.TimestampType:
		b.(*array.TimestampBuilder).Append(arrow.Timestamp(v.(int64)))
	case *types.ArrayType:
		lb := b.(*array.ListBuilder)
		lb.Append(true)
		for _, e := range v.([]any) {
			if err := appendArrow(lb.ValueBuilder(), t.ElementType, e); err != nil {
				return err
			}
		}
	case *types.RowType:
		sb := b.(*array.StructBuilder)
		sb.Append(true)
		fields := v.([]any)
		for i, f := range t.Fields {
			if err := appendArrow(sb.FieldBuilder(i), f.DataType, fields[i]); err != nil {
				return err
			}
		}
	case *types.MapType:
		m, ok := v.(*MapBlock)
		if !ok {
			return eris.Wrapf(errno.ErrIllegalArgument, "%T is not a native %s value", v, t.String())
		}
		mb := b.(*array.MapBuilder)
		mb.Append(true)
		for i := 0; i < m.Size(); i++ {
			if err := appendArrow(mb.KeyBuilder(), t.KeyType, m.Key(i)); err != nil {
				return err
			}
			if err := appendArrow(mb.ItemBuilder(), t.ValueType, m.Value(i)); err != nil {
				return err
			}
		}
	default:
		return errno.UnsupportedOperation(dt.String(), "Arrow export")
	}
	return nil
}

func decimal128Of(v any) (decimal128.Num, error) {
	switch n := v.(type) {
	case int64:
		return decimal128.FromI64(n), nil
	case []byte:
		return decimal128.FromBigInt(types.DecodeUnscaledValue(n)), nil
	case *big.Int:
		return decimal128.FromBigInt(n), nil
	default:
		return decimal128.Num{}, eris.Wrapf(errno.ErrIllegalArgument, "%T is not a native decimal value", v)
	}
}
