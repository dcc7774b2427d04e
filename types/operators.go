package types

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/csimplestring/colvalue-go/errno"
)

// Operators is the hash/equal/compare capability of one type, applied to
// non-null native values. Compare is nil for types without an ordering.
type Operators struct {
	Type    DataType
	Hash    func(v any) uint64
	Equal   func(a any, b any) bool
	Compare func(a any, b any) int
}

// OperatorsFor resolves the operators of dt.
func OperatorsFor(dt DataType) (*Operators, error) {
	switch t := dt.(type) {
	case *BooleanType:
		return primitiveOperators[bool](dt, func(v bool) uint64 {
			if v {
				return hashInt64(1)
			}
			return hashInt64(0)
		}, compareBool), nil
	case *TinyintType:
		return integerOperators[int8](dt), nil
	case *SmallintType:
		return integerOperators[int16](dt), nil
	case *IntegerType:
		return integerOperators[int32](dt), nil
	case *BigintType, *DateType, *TimestampType:
		return integerOperators[int64](dt), nil
	case *RealType:
		return &Operators{
			Type:    dt,
			Hash:    func(v any) uint64 { return hashFloat64(float64(RealFromBits(v.(int64)))) },
			Equal:   func(a, b any) bool { return RealFromBits(a.(int64)) == RealFromBits(b.(int64)) },
			Compare: func(a, b any) int { return cmp.Compare(RealFromBits(a.(int64)), RealFromBits(b.(int64))) },
		}, nil
	case *DoubleType:
		return &Operators{
			Type:    dt,
			Hash:    func(v any) uint64 { return hashFloat64(v.(float64)) },
			Equal:   func(a, b any) bool { return a.(float64) == b.(float64) },
			Compare: func(a, b any) int { return cmp.Compare(a.(float64), b.(float64)) },
		}, nil
	case *DecimalType:
		if t.IsShort() {
			return integerOperators[int64](dt), nil
		}
		return &Operators{
			Type:  dt,
			Hash:  func(v any) uint64 { return xxhash.Sum64(v.([]byte)) },
			Equal: func(a, b any) bool { return bytes.Equal(a.([]byte), b.([]byte)) },
			Compare: func(a, b any) int {
				return DecodeUnscaledValue(a.([]byte)).Cmp(DecodeUnscaledValue(b.([]byte)))
			},
		}, nil
	case *VarcharType, *CharType, *VarbinaryType:
		return &Operators{
			Type:    dt,
			Hash:    func(v any) uint64 { return xxhash.Sum64(v.([]byte)) },
			Equal:   func(a, b any) bool { return bytes.Equal(a.([]byte), b.([]byte)) },
			Compare: func(a, b any) int { return bytes.Compare(a.([]byte), b.([]byte)) },
		}, nil
	case *ArrayType:
		elementOps, err := OperatorsFor(t.ElementType)
		if err != nil {
			return nil, err
		}
		return sequenceOperators(dt, func(int) *Operators { return elementOps }), nil
	case *RowType:
		fieldOps := make([]*Operators, len(t.Fields))
		for i, f := range t.Fields {
			ops, err := OperatorsFor(f.DataType)
			if err != nil {
				return nil, err
			}
			fieldOps[i] = ops
		}
		return sequenceOperators(dt, func(i int) *Operators { return fieldOps[i] }), nil
	default:
		return nil, errno.UnsupportedKeyType(dt.String())
	}
}

func primitiveOperators[T comparable](dt DataType, hash func(T) uint64, compare func(T, T) int) *Operators {
	return &Operators{
		Type:    dt,
		Hash:    func(v any) uint64 { return hash(v.(T)) },
		Equal:   func(a, b any) bool { return a.(T) == b.(T) },
		Compare: func(a, b any) int { return compare(a.(T), b.(T)) },
	}
}

func integerOperators[T int8 | int16 | int32 | int64](dt DataType) *Operators {
	return primitiveOperators[T](dt, func(v T) uint64 { return hashInt64(int64(v)) }, cmp.Compare[T])
}

// sequenceOperators covers ARRAY and ROW values, both []any with possibly null elements.
func sequenceOperators(dt DataType, opsAt func(i int) *Operators) *Operators {
	_, ordered := dt.(*ArrayType)
	ops := &Operators{
		Type: dt,
		Hash: func(v any) uint64 {
			h := uint64(0)
			for i, e := range v.([]any) {
				eh := uint64(0)
				if e != nil {
					eh = opsAt(i).Hash(e)
				}
				h = 31*h + eh
			}
			return h
		},
		Equal: func(a, b any) bool {
			as, bs := a.([]any), b.([]any)
			if len(as) != len(bs) {
				return false
			}
			for i := range as {
				if as[i] == nil || bs[i] == nil {
					if as[i] != nil || bs[i] != nil {
						return false
					}
					continue
				}
				if !opsAt(i).Equal(as[i], bs[i]) {
					return false
				}
			}
			return true
		},
	}
	if ordered {
		ops.Compare = func(a, b any) int {
			as, bs := a.([]any), b.([]any)
			for i := 0; i < len(as) && i < len(bs); i++ {
				if as[i] == nil || bs[i] == nil {
					// nulls sort last
					if as[i] == nil && bs[i] == nil {
						continue
					}
					if as[i] == nil {
						return 1
					}
					return -1
				}
				if c := opsAt(i).Compare(as[i], bs[i]); c != 0 {
					return c
				}
			}
			return cmp.Compare(len(as), len(bs))
		}
	}
	return ops
}

func compareBool(b1 bool, b2 bool) int {
	if b1 == b2 {
		return 0
	}
	if b1 {
		return 1
	} else {
		return -1
	}
}

func hashInt64(v int64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return xxhash.Sum64(b[:])
}

func hashFloat64(f float64) uint64 {
	if f == 0 {
		// -0 and +0 are equal, so they must hash alike
		f = 0
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	return hashInt64(int64(math.Float64bits(f)))
}
