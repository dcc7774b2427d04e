package types

import (
	"strings"

	"github.com/csimplestring/colvalue-go/errno"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/repeale/fp-go"
)

func Is[T DataType](a DataType) bool {
	_, ok := a.(T)
	return ok
}

// Equals compares two types by signature.
func Equals(a DataType, b DataType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// IsStructural reports whether the type is one of MAP, ARRAY or ROW.
func IsStructural(dt DataType) bool {
	switch dt.(type) {
	case *MapType, *ArrayType, *RowType:
		return true
	default:
		return false
	}
}

// IsComparable reports whether values of the type support hash and equality,
// which is what a map key needs.
func IsComparable(dt DataType) bool {
	switch t := dt.(type) {
	case *MapType, *UnknownType:
		return false
	case *ArrayType:
		return IsComparable(t.ElementType)
	case *RowType:
		for _, f := range t.Fields {
			if !IsComparable(f.DataType) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func CheckColumnNameDuplication(schema *RowType, colType string) error {
	names := fp.Map(func(s string) string { return strings.ToLower(s) })(schema.FieldNames())

	if mapset.NewSet(names...).Cardinality() != len(names) {
		seen := mapset.NewSet[string]()
		dups := mapset.NewSet[string]()
		for _, n := range names {
			if !seen.Add(n) {
				dups.Add(n)
			}
		}
		return errno.DuplicateColumns(colType, dups.ToSlice())
	}
	return nil
}
