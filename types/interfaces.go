package types

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type DataType interface {
	// Name returns the base name of the type, e.g. "decimal" for decimal(10,2).
	Name() string

	// String returns the full type signature, e.g. "decimal(10,2)".
	String() string
}

// RowRecord is a single row whose fields hold native values.
type RowRecord interface {
	Schema() *RowType
	Length() int
	IsNullAt(fieldName string) (bool, error)
	Get(fieldName string) (any, error)
}

type Expression interface {
	// Eval returns the result of evaluating this expression on the given input RowRecord.
	Eval(record RowRecord) (any, error)

	// DataType returns the DataType of the result of evaluating this expression.
	DataType() DataType

	// String returns the String representation of this expression.
	String() string

	// Children returns List of the immediate children of this node
	Children() []Expression

	// References returns the set of column names
	References() []string
}

// References returns the names of columns referenced by this expression.
func References(e Expression) mapset.Set[string] {
	res := mapset.NewSet[string](e.References()...)
	for _, c := range e.Children() {
		res = res.Union(References(c))
	}
	return res
}
