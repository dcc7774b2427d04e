package types

import (
	"fmt"
	"math"
)

// MaxShortDecimalPrecision is the largest precision whose unscaled value always fits an int64.
const MaxShortDecimalPrecision = 18

// MaxDecimalPrecision is the largest precision a long decimal can hold.
const MaxDecimalPrecision = 38

// UnboundedLength marks a varchar without a declared length.
const UnboundedLength = math.MaxInt32

type BooleanType struct {
}

func (b *BooleanType) Name() string {
	return "boolean"
}

func (b *BooleanType) String() string {
	return b.Name()
}

type TinyintType struct {
}

func (t *TinyintType) Name() string {
	return "tinyint"
}

func (t *TinyintType) String() string {
	return t.Name()
}

type SmallintType struct {
}

func (s *SmallintType) Name() string {
	return "smallint"
}

func (s *SmallintType) String() string {
	return s.Name()
}

type IntegerType struct {
}

func (i *IntegerType) Name() string {
	return "integer"
}

func (i *IntegerType) String() string {
	return i.Name()
}

type BigintType struct {
}

func (b *BigintType) Name() string {
	return "bigint"
}

func (b *BigintType) String() string {
	return b.Name()
}

// RealType is a 32-bit float; its native value is the raw bit pattern widened to int64.
type RealType struct {
}

func (r *RealType) Name() string {
	return "real"
}

func (r *RealType) String() string {
	return r.Name()
}

type DoubleType struct {
}

func (d *DoubleType) Name() string {
	return "double"
}

func (d *DoubleType) String() string {
	return d.Name()
}

type DecimalType struct {
	Precision int
	Scale     int
}

func NewDecimalType(precision int, scale int) (*DecimalType, error) {
	if precision <= 0 || precision > MaxDecimalPrecision {
		return nil, fmt.Errorf("invalid decimal precision %d", precision)
	}
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("invalid decimal scale %d for precision %d", scale, precision)
	}
	return &DecimalType{Precision: precision, Scale: scale}, nil
}

func (d *DecimalType) Name() string {
	return "decimal"
}

func (d *DecimalType) String() string {
	return fmt.Sprintf("decimal(%d,%d)", d.Precision, d.Scale)
}

// IsShort reports whether the unscaled value is stored as an int64 rather than encoded bytes.
func (d *DecimalType) IsShort() bool {
	return d.Precision <= MaxShortDecimalPrecision
}

type VarcharType struct {
	Length int
}

func (v *VarcharType) Name() string {
	return "varchar"
}

func (v *VarcharType) String() string {
	if v.IsUnbounded() {
		return v.Name()
	}
	return fmt.Sprintf("varchar(%d)", v.Length)
}

func (v *VarcharType) IsUnbounded() bool {
	return v.Length == UnboundedLength
}

type CharType struct {
	Length int
}

func (c *CharType) Name() string {
	return "char"
}

func (c *CharType) String() string {
	return fmt.Sprintf("char(%d)", c.Length)
}

type VarbinaryType struct {
}

func (v *VarbinaryType) Name() string {
	return "varbinary"
}

func (v *VarbinaryType) String() string {
	return v.Name()
}

// DateType values are days since the epoch.
type DateType struct {
}

func (d *DateType) Name() string {
	return "date"
}

func (d *DateType) String() string {
	return d.Name()
}

// TimestampType values are milliseconds since the epoch.
type TimestampType struct {
}

func (t *TimestampType) Name() string {
	return "timestamp"
}

func (t *TimestampType) String() string {
	return t.Name()
}

// UnknownType is the type of a bare NULL.
type UnknownType struct {
}

func (u *UnknownType) Name() string {
	return "unknown"
}

func (u *UnknownType) String() string {
	return u.Name()
}

var (
	Boolean   DataType = &BooleanType{}
	Tinyint   DataType = &TinyintType{}
	Smallint  DataType = &SmallintType{}
	Integer   DataType = &IntegerType{}
	Bigint    DataType = &BigintType{}
	Real      DataType = &RealType{}
	Double    DataType = &DoubleType{}
	Date      DataType = &DateType{}
	Timestamp DataType = &TimestampType{}
	Varbinary DataType = &VarbinaryType{}
	Unknown   DataType = &UnknownType{}
)

func Varchar(length int) *VarcharType {
	return &VarcharType{Length: length}
}

func UnboundedVarchar() *VarcharType {
	return &VarcharType{Length: UnboundedLength}
}

func Char(length int) *CharType {
	return &CharType{Length: length}
}

func Decimal(precision int, scale int) *DecimalType {
	return &DecimalType{Precision: precision, Scale: scale}
}
