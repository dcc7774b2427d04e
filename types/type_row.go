package types

import (
	"fmt"
	"strings"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/repeale/fp-go"
)

// RowType is both the ROW logical type and the schema of a RowRecord.
// ROW values are []any in field order.
type RowType struct {
	Fields      []*RowField
	nameToField map[string]*RowField
	nameToIndex map[string]int
}

func NewRowType(fields []*RowField) *RowType {
	r := &RowType{
		Fields:      fields,
		nameToField: make(map[string]*RowField, len(fields)),
		nameToIndex: make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		r.nameToField[f.Name] = f
		r.nameToIndex[f.Name] = i
	}
	return r
}

func (r *RowType) Name() string {
	return "row"
}

func (r *RowType) String() string {
	parts := fp.Map(func(f *RowField) string {
		return fmt.Sprintf("%s %s", f.Name, f.DataType.String())
	})(r.Fields)
	return fmt.Sprintf("row(%s)", strings.Join(parts, ","))
}

func (r *RowType) FieldNames() []string {
	return fp.Map(func(f *RowField) string { return f.Name })(r.Fields)
}

func (r *RowType) FieldTypes() []DataType {
	return fp.Map(func(f *RowField) DataType { return f.DataType })(r.Fields)
}

func (r *RowType) Length() int {
	return len(r.Fields)
}

func (r *RowType) Get(fieldName string) (*RowField, error) {
	v, ok := r.nameToField[fieldName]
	if !ok {
		return nil, errno.FieldNotFound(fieldName)
	}
	return v, nil
}

func (r *RowType) IndexOf(fieldName string) (int, error) {
	i, ok := r.nameToIndex[fieldName]
	if !ok {
		return -1, errno.FieldNotFound(fieldName)
	}
	return i, nil
}

func (r *RowType) Add(fieldName string, dt DataType) *RowType {
	newFields := make([]*RowField, len(r.Fields)+1)
	copy(newFields, r.Fields)
	newFields[len(newFields)-1] = NewRowField(fieldName, dt)
	return NewRowType(newFields)
}

func (r *RowType) Column(fieldName string) (*Column, error) {
	field, err := r.Get(fieldName)
	if err != nil {
		return nil, err
	}
	return NewColumn(fieldName, field.DataType), nil
}

type RowField struct {
	Name     string
	DataType DataType
}

func NewRowField(name string, t DataType) *RowField {
	return &RowField{
		Name:     name,
		DataType: t,
	}
}
