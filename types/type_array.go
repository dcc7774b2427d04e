package types

import "fmt"

// ArrayType values are []any holding element natives.
type ArrayType struct {
	ElementType DataType
}

func NewArrayType(elementType DataType) *ArrayType {
	return &ArrayType{ElementType: elementType}
}

func (a *ArrayType) Name() string {
	return "array"
}

func (a *ArrayType) String() string {
	return fmt.Sprintf("array(%s)", a.ElementType.String())
}
