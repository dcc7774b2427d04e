package block

import (
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
)

// KeyAccessor is the hash and equality capability of a map key type. Each
// type only supplies types.Operators; the block-resident forms read the
// native value at a position and reuse them.
type KeyAccessor struct {
	keyType types.DataType
	ops     *types.Operators
}

func NewKeyAccessor(keyType types.DataType) (*KeyAccessor, error) {
	if !types.IsComparable(keyType) {
		return nil, errno.UnsupportedKeyType(keyType.String())
	}
	ops, err := types.OperatorsFor(keyType)
	if err != nil {
		return nil, err
	}
	return &KeyAccessor{keyType: keyType, ops: ops}, nil
}

func (k *KeyAccessor) KeyType() types.DataType {
	return k.keyType
}

func (k *KeyAccessor) NativeHash(v any) uint64 {
	return k.ops.Hash(v)
}

func (k *KeyAccessor) BlockHash(b Block, position int) uint64 {
	return k.ops.Hash(b.Get(position))
}

// NativeEqual compares two decoded keys.
func (k *KeyAccessor) NativeEqual(a any, b any) bool {
	return k.ops.Equal(a, b)
}

// NativeBlockEqual compares a decoded key with the key stored at position.
func (k *KeyAccessor) NativeBlockEqual(v any, b Block, position int) bool {
	return k.ops.Equal(v, b.Get(position))
}

// BlockEqual compares keys stored in two blocks.
func (k *KeyAccessor) BlockEqual(a Block, aPosition int, b Block, bPosition int) bool {
	return k.ops.Equal(a.Get(aPosition), b.Get(bPosition))
}
