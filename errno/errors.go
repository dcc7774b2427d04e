package errno

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

var ErrIllegalState = errors.New("illegal state")
var ErrIllegalArgument = errors.New("illegal argument")
var ErrInvalidLiteralValue = errors.New("invalid literal value")
var ErrUnsupportedType = errors.New("unsupported type")

// InvalidLiteralValueError Thrown when a textual literal can not be decoded into the declared type.
type InvalidLiteralValueError struct {
	Value   string
	Type    string
	Context string
}

func (e *InvalidLiteralValueError) Error() string {
	return fmt.Sprintf("Invalid partition value '%s' for %s partition key: %s", e.Value, e.Type, e.Context)
}

func (e *InvalidLiteralValueError) Is(target error) bool {
	return target == ErrInvalidLiteralValue
}

// UnsupportedTypeError Thrown when a type can not take part in the requested operation.
type UnsupportedTypeError struct {
	Type    string
	Context string
	Msg     string
}

func (e *UnsupportedTypeError) Error() string {
	return e.Msg
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

func InvalidLiteralValue(value string, typeName string, context string) error {
	return eris.Wrap(&InvalidLiteralValueError{Value: value, Type: typeName, Context: context}, "decode literal")
}

func UnsupportedPartitionType(typeName string, partitionName string) error {
	return eris.Wrap(&UnsupportedTypeError{
		Type:    typeName,
		Context: partitionName,
		Msg:     fmt.Sprintf("Unsupported type [%s] for partition: %s", typeName, partitionName),
	}, "verify partition type")
}

func UnsupportedColumnType(typeName string, columnName string) error {
	return eris.Wrap(&UnsupportedTypeError{
		Type:    typeName,
		Context: columnName,
		Msg:     fmt.Sprintf("Unsupported column type %s for partition column: %s", typeName, columnName),
	}, "verify column type")
}

func UnsupportedKeyType(typeName string) error {
	return eris.Wrap(&UnsupportedTypeError{
		Type: typeName,
		Msg:  fmt.Sprintf("Type %s is not comparable and can not be used as a map key", typeName),
	}, "resolve key operators")
}

func UnsupportedOperation(typeName string, op string) error {
	return eris.Wrap(&UnsupportedTypeError{
		Type: typeName,
		Msg:  fmt.Sprintf("%s is not supported for type %s", op, typeName),
	}, "")
}

func KeyTypeMismatch(left string, right string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("map key types do not match: %s vs %s", left, right))
}

func InvalidTypeSignature(signature string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("fail to convert %s to a DataType", signature))
}

func FieldNotFound(fieldName string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("Field %s does not exist.", fieldName))
}

func FieldTypeMismatch(fieldName string, actualType string, desiredType string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("The data type of field %s is %s, Cannot cast it to %s", fieldName, actualType, desiredType))
}

func DuplicateColumns(colType string, names []string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("Found duplicated %s columns %v", colType, names))
}

func InvalidPartitionName(name string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("Invalid partition name: %s", name))
}

func IllegalStateError(msg string) error {
	return eris.Wrap(ErrIllegalState, msg)
}

func IllegalArgumentError(msg string) error {
	return eris.Wrap(ErrIllegalArgument, msg)
}

func NullValueFoundForPrimitiveTypes(fieldName string) error {
	return eris.Wrap(ErrIllegalState, fmt.Sprintf("Read a null value for field %s, which is a primitive type.", fieldName))
}
