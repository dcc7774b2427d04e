package block

import (
	"github.com/barweiss/go-tuple"
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/internal/util"
	"github.com/csimplestring/colvalue-go/iter"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/rotisserie/eris"
	"github.com/samber/mo"
)

// hashMultiplier sizes the key hash table relative to the entry count.
const hashMultiplier = 2

var _ Block = &MapBlock{}

// MapBlock is a single map value: slot 2i holds key i and slot 2i+1 its value.
// Keys are never null and, by contract with the producer, never repeat.
// A MapBlock is immutable and safe for concurrent readers.
type MapBlock struct {
	mapType   *types.MapType
	slots     []any
	keys      *KeyAccessor
	hashTable *util.Lazy[[]int]
}

// NewMapBlock wraps interleaved key/value slots without copying them.
func NewMapBlock(mapType *types.MapType, slots []any) (*MapBlock, error) {
	if len(slots)%2 != 0 {
		return nil, errno.IllegalArgumentError("map block must have an even number of slots")
	}
	for i := 0; i < len(slots); i += 2 {
		if slots[i] == nil {
			return nil, errno.IllegalArgumentError("map key cannot be null")
		}
	}
	keys, err := NewKeyAccessor(mapType.KeyType)
	if err != nil {
		return nil, err
	}
	return newMapBlock(mapType, keys, slots), nil
}

// MapBlockOf builds a block from parallel key and value slices.
func MapBlockOf(mapType *types.MapType, keys []any, values []any) (*MapBlock, error) {
	if len(keys) != len(values) {
		return nil, errno.IllegalArgumentError("map keys and values must have the same length")
	}
	slots := make([]any, 0, 2*len(keys))
	for i := range keys {
		slots = append(slots, keys[i], values[i])
	}
	return NewMapBlock(mapType, slots)
}

func newMapBlock(mapType *types.MapType, keys *KeyAccessor, slots []any) *MapBlock {
	b := &MapBlock{
		mapType: mapType,
		slots:   slots,
		keys:    keys,
	}
	b.hashTable = util.LazyValue(b.buildHashTable)
	return b
}

func (b *MapBlock) Type() *types.MapType {
	return b.mapType
}

func (b *MapBlock) KeyType() types.DataType {
	return b.mapType.KeyType
}

func (b *MapBlock) ValueType() types.DataType {
	return b.mapType.ValueType
}

func (b *MapBlock) KeyAccessor() *KeyAccessor {
	return b.keys
}

// PositionCount returns the number of slots, twice the number of entries.
func (b *MapBlock) PositionCount() int {
	return len(b.slots)
}

// Size returns the number of entries.
func (b *MapBlock) Size() int {
	return len(b.slots) / 2
}

func (b *MapBlock) IsNull(position int) bool {
	return b.slots[position] == nil
}

func (b *MapBlock) Get(position int) any {
	return b.slots[position]
}

func (b *MapBlock) Key(entry int) any {
	return b.slots[2*entry]
}

func (b *MapBlock) Value(entry int) any {
	return b.slots[2*entry+1]
}

// Entries iterates over the key/value pairs in stored order.
func (b *MapBlock) Entries() iter.Iter[tuple.T2[any, any]] {
	pairs := make([]tuple.T2[any, any], b.Size())
	for i := range pairs {
		pairs[i] = tuple.New2(b.Key(i), b.Value(i))
	}
	return iter.FromSlice(pairs)
}

// Seek returns the position of the value whose key equals key.
func (b *MapBlock) Seek(key any) (mo.Option[int], error) {
	if key == nil {
		return mo.None[int](), errno.IllegalArgumentError("map key cannot be null")
	}
	table, err := b.hashTable.Get()
	if err != nil {
		return mo.None[int](), err
	}
	if len(table) == 0 {
		return mo.None[int](), nil
	}

	mask := uint64(len(table) - 1)
	slot := b.keys.NativeHash(key) & mask
	for {
		entry := table[slot]
		if entry < 0 {
			return mo.None[int](), nil
		}
		if b.keys.NativeBlockEqual(key, b, 2*entry) {
			return mo.Some(2*entry + 1), nil
		}
		slot = (slot + 1) & mask
	}
}

// SeekKey is Seek returning -1 when the key is absent.
func (b *MapBlock) SeekKey(key any) (int, error) {
	pos, err := b.Seek(key)
	if err != nil {
		return -1, err
	}
	return pos.OrElse(-1), nil
}

// buildHashTable lays out entry indexes in an open addressing table with linear probing.
func (b *MapBlock) buildHashTable() ([]int, error) {
	n := b.Size()
	if n == 0 {
		return nil, nil
	}
	size := 1
	for size < n*hashMultiplier {
		size <<= 1
	}
	table := make([]int, size)
	for i := range table {
		table[i] = -1
	}

	mask := uint64(size - 1)
	for entry := 0; entry < n; entry++ {
		slot := b.keys.BlockHash(b, 2*entry) & mask
		for probes := 0; table[slot] >= 0; probes++ {
			if probes == size {
				return nil, eris.Wrap(errno.ErrIllegalState, "map hash table is full")
			}
			slot = (slot + 1) & mask
		}
		table[slot] = entry
	}
	return table, nil
}
