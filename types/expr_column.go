package types

import (
	"fmt"
)

type Column struct {
	Name string
	Type DataType
}

func NewColumn(name string, t DataType) *Column {
	return &Column{
		Name: name,
		Type: t,
	}
}

// Eval returns the result of evaluating this expression on the given input RowRecord.
func (c *Column) Eval(record RowRecord) (any, error) {
	isNull, err := record.IsNullAt(c.Name)
	if err != nil {
		return nil, err
	}
	if isNull {
		return nil, nil
	}

	return record.Get(c.Name)
}

// DataType returns the DataType of the result of evaluating this expression.
func (c *Column) DataType() DataType {
	return c.Type
}

// String returns the String representation of this expression.
func (c *Column) String() string {
	return fmt.Sprintf("Column(%s)", c.Name)
}

// Children returns List of the immediate children of this node
func (c *Column) Children() []Expression {
	return []Expression{}
}

func (c *Column) References() []string {
	return []string{c.Name}
}
