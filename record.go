package colvalue

import (
	"time"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/internal/util"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/shopspring/decimal"
)

var _ types.RowRecord = &PartitionRowRecord{}

// PartitionRowRecord is the row of decoded partition key values of one
// partition, so that partition predicates can be evaluated against it.
type PartitionRowRecord struct {
	partitionSchema *types.RowType
	partitionValues map[string]*types.Literal
	loc             *time.Location
}

// NewPartitionRowRecord decodes every field of partitionSchema from its raw
// partition text. A key missing from partitionValues is null.
func NewPartitionRowRecord(partitionSchema *types.RowType, partitionValues map[string]string, loc *time.Location) (*PartitionRowRecord, error) {
	if loc == nil {
		loc = time.UTC
	}

	values := make(map[string]*types.Literal, len(partitionSchema.Fields))
	for _, f := range partitionSchema.Fields {
		raw := util.GetMapValueOptional(partitionValues, f.Name).OrElse(DefaultPartitionName)
		v, err := Decode(raw, f.DataType, f.Name, loc)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}

	return &PartitionRowRecord{
		partitionSchema: partitionSchema,
		partitionValues: values,
		loc:             loc,
	}, nil
}

func (p *PartitionRowRecord) Schema() *types.RowType {
	return p.partitionSchema
}

func (p *PartitionRowRecord) Length() int {
	return len(p.partitionSchema.Fields)
}

func (p *PartitionRowRecord) IsNullAt(fieldName string) (bool, error) {
	if _, err := p.partitionSchema.Get(fieldName); err != nil {
		return false, err
	}
	return p.partitionValues[fieldName].IsNull(), nil
}

// Get returns the native value of the field, nil if it is null.
func (p *PartitionRowRecord) Get(fieldName string) (any, error) {
	if _, err := p.partitionSchema.Get(fieldName); err != nil {
		return nil, err
	}
	return p.partitionValues[fieldName].Value, nil
}

// Literal returns the decoded value of the field together with its type.
func (p *PartitionRowRecord) Literal(fieldName string) (*types.Literal, error) {
	if _, err := p.partitionSchema.Get(fieldName); err != nil {
		return nil, err
	}
	return p.partitionValues[fieldName], nil
}

func (p *PartitionRowRecord) GetBoolean(fieldName string) (bool, error) {
	v, err := checkPrimitiveField(p, fieldName, "boolean", types.Is[*types.BooleanType])
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetLong widens any integer field to int64.
func (p *PartitionRowRecord) GetLong(fieldName string) (int64, error) {
	v, err := checkPrimitiveField(p, fieldName, "bigint", isIntegral)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return n.(int64), nil
	}
}

// GetDouble widens a real field to float64.
func (p *PartitionRowRecord) GetDouble(fieldName string) (float64, error) {
	v, err := checkPrimitiveField(p, fieldName, "double", func(dt types.DataType) bool {
		return types.Is[*types.DoubleType](dt) || types.Is[*types.RealType](dt)
	})
	if err != nil {
		return 0, err
	}
	if f, ok := v.(float64); ok {
		return f, nil
	}
	return float64(types.RealFromBits(v.(int64))), nil
}

func (p *PartitionRowRecord) GetString(fieldName string) (string, error) {
	v, err := checkPrimitiveField(p, fieldName, "varchar", func(dt types.DataType) bool {
		return types.Is[*types.VarcharType](dt) || types.Is[*types.CharType](dt)
	})
	if err != nil {
		return "", err
	}
	return string(v.([]byte)), nil
}

func (p *PartitionRowRecord) GetDecimal(fieldName string) (decimal.Decimal, error) {
	v, err := checkPrimitiveField(p, fieldName, "decimal", types.Is[*types.DecimalType])
	if err != nil {
		return decimal.Decimal{}, err
	}
	f, _ := p.partitionSchema.Get(fieldName)
	return types.DecimalFromNative(f.DataType.(*types.DecimalType), v)
}

// GetDate returns midnight UTC of the date.
func (p *PartitionRowRecord) GetDate(fieldName string) (time.Time, error) {
	v, err := checkPrimitiveField(p, fieldName, "date", types.Is[*types.DateType])
	if err != nil {
		return time.Time{}, err
	}
	return types.DateToTime(v.(int64)), nil
}

// GetTimestamp returns the instant in the zone the record was decoded in.
func (p *PartitionRowRecord) GetTimestamp(fieldName string) (time.Time, error) {
	v, err := checkPrimitiveField(p, fieldName, "timestamp", types.Is[*types.TimestampType])
	if err != nil {
		return time.Time{}, err
	}
	return types.TimestampToTime(v.(int64), p.loc), nil
}

func isIntegral(dt types.DataType) bool {
	switch dt.(type) {
	case *types.TinyintType, *types.SmallintType, *types.IntegerType, *types.BigintType:
		return true
	default:
		return false
	}
}

func checkPrimitiveField(p *PartitionRowRecord, fieldName string, expectedType string, accept func(types.DataType) bool) (any, error) {
	f, err := p.partitionSchema.Get(fieldName)
	if err != nil {
		return nil, err
	}
	if !accept(f.DataType) {
		return nil, errno.FieldTypeMismatch(fieldName, f.DataType.String(), expectedType)
	}

	v := p.partitionValues[fieldName]
	if v.IsNull() {
		return nil, errno.NullValueFoundForPrimitiveTypes(fieldName)
	}
	return v.Value, nil
}
