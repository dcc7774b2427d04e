package block

import (
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/types"
)

// MapBlockBuilder appends map values one position at a time. A position is
// either a null or an entry bracketed by BeginEntry and CloseEntry; key/value
// pairs are only accepted while an entry is open.
type MapBlockBuilder struct {
	mapType    *types.MapType
	keys       *KeyAccessor
	slots      []any
	offsets    []int
	nulls      []bool
	entryOpen  bool
	entryStart int
}

// NewMapBlockBuilder creates a builder with room for expectedEntries key/value pairs.
func NewMapBlockBuilder(mapType *types.MapType, expectedEntries int) (*MapBlockBuilder, error) {
	keys, err := NewKeyAccessor(mapType.KeyType)
	if err != nil {
		return nil, err
	}
	if expectedEntries < 0 {
		expectedEntries = 0
	}
	return &MapBlockBuilder{
		mapType: mapType,
		keys:    keys,
		slots:   make([]any, 0, 2*expectedEntries),
		offsets: []int{0},
	}, nil
}

func (b *MapBlockBuilder) Type() *types.MapType {
	return b.mapType
}

// PositionCount returns the number of closed positions.
func (b *MapBlockBuilder) PositionCount() int {
	return len(b.nulls)
}

func (b *MapBlockBuilder) IsEntryOpen() bool {
	return b.entryOpen
}

// OpenEntrySize returns the number of pairs appended to the open entry.
func (b *MapBlockBuilder) OpenEntrySize() int {
	if !b.entryOpen {
		return 0
	}
	return (len(b.slots) - b.entryStart) / 2
}

func (b *MapBlockBuilder) BeginEntry() error {
	if b.entryOpen {
		return errno.IllegalStateError("Expected current entry to be closed but was opened")
	}
	b.entryOpen = true
	b.entryStart = len(b.slots)
	return nil
}

// Append adds one key/value pair to the open entry; value may be nil.
func (b *MapBlockBuilder) Append(key any, value any) error {
	if !b.entryOpen {
		return errno.IllegalStateError("Expected current entry to be opened but was closed")
	}
	if key == nil {
		return errno.IllegalArgumentError("map key cannot be null")
	}
	b.slots = append(b.slots, key, value)
	return nil
}

func (b *MapBlockBuilder) CloseEntry() error {
	if !b.entryOpen {
		return errno.IllegalStateError("Expected entry to be opened but was closed")
	}
	b.entryOpen = false
	b.offsets = append(b.offsets, len(b.slots))
	b.nulls = append(b.nulls, false)
	return nil
}

// RollbackEntry discards the open entry and its pairs, returning the builder
// to the state it had before BeginEntry.
func (b *MapBlockBuilder) RollbackEntry() error {
	if !b.entryOpen {
		return errno.IllegalStateError("Expected entry to be opened but was closed")
	}
	for i := b.entryStart; i < len(b.slots); i++ {
		b.slots[i] = nil
	}
	b.slots = b.slots[:b.entryStart]
	b.entryOpen = false
	return nil
}

func (b *MapBlockBuilder) AppendNull() error {
	if b.entryOpen {
		return errno.IllegalStateError("Current entry must be closed before a null can be written")
	}
	b.offsets = append(b.offsets, len(b.slots))
	b.nulls = append(b.nulls, true)
	return nil
}

// Build returns the column of every closed position. The builder must not be
// used afterwards.
func (b *MapBlockBuilder) Build() (*MapColumn, error) {
	if b.entryOpen {
		return nil, errno.IllegalStateError("Current entry must be closed before the block can be built")
	}

	maps := make([]*MapBlock, len(b.nulls))
	for i := range maps {
		if b.nulls[i] {
			continue
		}
		start, end := b.offsets[i], b.offsets[i+1]
		maps[i] = newMapBlock(b.mapType, b.keys, b.slots[start:end:end])
	}
	return &MapColumn{mapType: b.mapType, maps: maps}, nil
}

var _ Block = &MapColumn{}

// MapColumn is a column of nullable map values. Get returns a *MapBlock or nil.
type MapColumn struct {
	mapType *types.MapType
	maps    []*MapBlock
}

// NewMapColumn assembles a column from map values; nil entries are null maps.
func NewMapColumn(mapType *types.MapType, maps []*MapBlock) (*MapColumn, error) {
	for _, m := range maps {
		if m != nil && !types.Equals(m.Type(), mapType) {
			return nil, errno.IllegalArgumentError("map " + m.Type().String() + " does not belong to column of " + mapType.String())
		}
	}
	return &MapColumn{mapType: mapType, maps: maps}, nil
}

func (c *MapColumn) Type() *types.MapType {
	return c.mapType
}

func (c *MapColumn) PositionCount() int {
	return len(c.maps)
}

func (c *MapColumn) IsNull(position int) bool {
	return c.maps[position] == nil
}

func (c *MapColumn) Get(position int) any {
	if m := c.maps[position]; m != nil {
		return m
	}
	return nil
}

func (c *MapColumn) GetMap(position int) *MapBlock {
	return c.maps[position]
}
