package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Literal is a native value together with its logical type. A nil Value is
// the typed null of Type.
type Literal struct {
	Value any
	Type  DataType
}

// Eval returns the result of evaluating this expression on the given input RowRecord.
func (l *Literal) Eval(record RowRecord) (any, error) {
	return l.Value, nil
}

// DataType returns the DataType of the result of evaluating this expression.
func (l *Literal) DataType() DataType {
	return l.Type
}

func (l *Literal) IsNull() bool {
	return l.Value == nil
}

// String returns the String representation of this expression.
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Children returns List of the immediate children of this node
func (l *Literal) Children() []Expression {
	return []Expression{}
}

func (l *Literal) References() []string {
	return nil
}

var True *Literal = &Literal{Value: true, Type: Boolean}
var False *Literal = &Literal{Value: false, Type: Boolean}

func LiteralBoolean(b bool) *Literal {
	return &Literal{Value: b, Type: Boolean}
}

func LiteralTinyint(n int8) *Literal {
	return &Literal{Value: n, Type: Tinyint}
}

func LiteralSmallint(n int16) *Literal {
	return &Literal{Value: n, Type: Smallint}
}

func LiteralInteger(n int32) *Literal {
	return &Literal{Value: n, Type: Integer}
}

func LiteralBigint(n int64) *Literal {
	return &Literal{Value: n, Type: Bigint}
}

func LiteralReal(f float32) *Literal {
	return &Literal{Value: RealBits(f), Type: Real}
}

func LiteralDouble(d float64) *Literal {
	return &Literal{Value: d, Type: Double}
}

func LiteralDecimal(dt *DecimalType, d decimal.Decimal) (*Literal, error) {
	v, err := DecimalToNative(dt, d.Round(int32(dt.Scale)))
	if err != nil {
		return nil, err
	}
	return &Literal{Value: v, Type: dt}, nil
}

func LiteralVarchar(s string) *Literal {
	return &Literal{Value: []byte(s), Type: UnboundedVarchar()}
}

func LiteralVarbinary(b []byte) *Literal {
	return &Literal{Value: b, Type: Varbinary}
}

func LiteralDate(d time.Time) *Literal {
	return &Literal{Value: TimeToDate(d), Type: Date}
}

func LiteralTimestamp(t time.Time) *Literal {
	return &Literal{Value: t.UnixMilli(), Type: Timestamp}
}

func LiteralNull(dt DataType) *Literal {
	return &Literal{Value: nil, Type: dt}
}
