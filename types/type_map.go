package types

import "fmt"

// MapType values are *block.MapBlock.
type MapType struct {
	KeyType   DataType
	ValueType DataType
}

func NewMapType(keyType DataType, valueType DataType) *MapType {
	return &MapType{KeyType: keyType, ValueType: valueType}
}

func (m *MapType) Name() string {
	return "map"
}

func (m *MapType) String() string {
	return fmt.Sprintf("map(%s,%s)", m.KeyType.String(), m.ValueType.String())
}
