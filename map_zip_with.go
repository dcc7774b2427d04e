package colvalue

import (
	"github.com/csimplestring/colvalue-go/block"
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/internal/util"
	"github.com/csimplestring/colvalue-go/types"
)

// MapZipWithFunc computes the merged value of key. left or right is nil when
// the key is absent from that map or its value there is null.
type MapZipWithFunc func(key any, left any, right any) (any, error)

// MapZipWith merges two maps over the union of their keys. The result holds
// the keys of left in left order followed by the keys only found in right in
// right order, each mapped to fn(key, leftValue, rightValue). An error
// returned by fn is returned as is; a result that is not a native value of
// outputValueType fails with errno.ErrIllegalArgument.
func MapZipWith(left *block.MapBlock, right *block.MapBlock, outputValueType types.DataType, fn MapZipWithFunc) (*block.MapBlock, error) {
	if err := checkKeyTypes(left.KeyType(), right.KeyType()); err != nil {
		return nil, err
	}

	outputType := types.NewMapType(left.KeyType(), outputValueType)
	builder, err := block.NewMapBlockBuilder(outputType, util.MaxInt(left.Size(), right.Size()))
	if err != nil {
		return nil, err
	}
	if err := AppendMapZipWith(builder, left, right, fn); err != nil {
		return nil, err
	}

	col, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return col.GetMap(col.PositionCount() - 1), nil
}

// AppendMapZipWith appends the merge of left and right as the next position
// of builder. When fn fails the open entry is rolled back before the error is
// returned, so builder is never left with an open or partial entry.
func AppendMapZipWith(builder *block.MapBlockBuilder, left *block.MapBlock, right *block.MapBlock, fn MapZipWithFunc) error {
	if err := checkKeyTypes(left.KeyType(), right.KeyType()); err != nil {
		return err
	}
	if err := checkKeyTypes(builder.Type().KeyType, left.KeyType()); err != nil {
		return err
	}

	if err := builder.BeginEntry(); err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = builder.RollbackEntry()
		}
	}()

	keyFound := make([]bool, right.Size())
	for i := 0; i < left.Size(); i++ {
		key := left.Key(i)

		var rightValue any
		rightValuePosition, err := right.SeekKey(key)
		if err != nil {
			return err
		}
		if rightValuePosition != -1 {
			rightValue = right.Get(rightValuePosition)
			keyFound[rightValuePosition/2] = true
		}

		if err := appendMerged(builder, fn, key, left.Value(i), rightValue); err != nil {
			return err
		}
	}

	// keys that only exist in right
	for i := 0; i < right.Size(); i++ {
		if keyFound[i] {
			continue
		}
		if err := appendMerged(builder, fn, right.Key(i), nil, right.Value(i)); err != nil {
			return err
		}
	}

	committed = true
	return builder.CloseEntry()
}

func appendMerged(builder *block.MapBlockBuilder, fn MapZipWithFunc, key any, left any, right any) error {
	out, err := fn(key, left, right)
	if err != nil {
		return err
	}
	if err := types.CheckNative(builder.Type().ValueType, out); err != nil {
		return err
	}
	return builder.Append(block.CopyNative(key), block.CopyNative(out))
}

// MapZipWithColumn merges two map columns row by row. A row where either map
// is null is null in the result.
func MapZipWithColumn(left *block.MapColumn, right *block.MapColumn, outputValueType types.DataType, fn MapZipWithFunc) (*block.MapColumn, error) {
	if left.PositionCount() != right.PositionCount() {
		return nil, errno.IllegalArgumentError("map columns must have the same number of positions")
	}
	if err := checkKeyTypes(left.Type().KeyType, right.Type().KeyType); err != nil {
		return nil, err
	}

	expectedEntries := 0
	for i := 0; i < left.PositionCount(); i++ {
		if !left.IsNull(i) && !right.IsNull(i) {
			expectedEntries += util.MaxInt(left.GetMap(i).Size(), right.GetMap(i).Size())
		}
	}

	outputType := types.NewMapType(left.Type().KeyType, outputValueType)
	builder, err := block.NewMapBlockBuilder(outputType, expectedEntries)
	if err != nil {
		return nil, err
	}
	for i := 0; i < left.PositionCount(); i++ {
		if left.IsNull(i) || right.IsNull(i) {
			if err := builder.AppendNull(); err != nil {
				return nil, err
			}
			continue
		}
		if err := AppendMapZipWith(builder, left.GetMap(i), right.GetMap(i), fn); err != nil {
			return nil, err
		}
	}
	return builder.Build()
}

func checkKeyTypes(left types.DataType, right types.DataType) error {
	if !types.IsComparable(left) {
		return errno.UnsupportedKeyType(left.String())
	}
	if !types.Equals(left, right) {
		return errno.KeyTypeMismatch(left.String(), right.String())
	}
	return nil
}
