package colvalue

import (
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
)

// Names the lambda arguments are bound to inside an expression function.
const (
	LambdaKey   = "k"
	LambdaLeft  = "v1"
	LambdaRight = "v2"
)

// ExpressionFunction adapts an expression over the columns LambdaKey,
// LambdaLeft and LambdaRight into a MapZipWithFunc, e.g.
//
//	ExpressionFunction(types.NewCoalesce(v2, v1), ...)
//
// merges two maps with the right value winning.
func ExpressionFunction(expr types.Expression, keyType types.DataType, leftValueType types.DataType, rightValueType types.DataType) MapZipWithFunc {
	schema := types.NewRowType([]*types.RowField{
		types.NewRowField(LambdaKey, keyType),
		types.NewRowField(LambdaLeft, leftValueType),
		types.NewRowField(LambdaRight, rightValueType),
	})
	return func(key any, left any, right any) (any, error) {
		return expr.Eval(&lambdaRecord{schema: schema, values: [3]any{key, left, right}})
	}
}

type lambdaRecord struct {
	schema *types.RowType
	values [3]any
}

func (r *lambdaRecord) Schema() *types.RowType {
	return r.schema
}

func (r *lambdaRecord) Length() int {
	return len(r.values)
}

func (r *lambdaRecord) IsNullAt(fieldName string) (bool, error) {
	v, err := r.Get(fieldName)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

func (r *lambdaRecord) Get(fieldName string) (any, error) {
	switch fieldName {
	case LambdaKey:
		return r.values[0], nil
	case LambdaLeft:
		return r.values[1], nil
	case LambdaRight:
		return r.values[2], nil
	default:
		return nil, errno.FieldNotFound(fieldName)
	}
}
