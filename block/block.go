// Package block holds the columnar layout of map values: a MapBlock is one map
// stored as 2·N interleaved key/value slots, a MapColumn is a column of them.
package block

// Block is a read-only sequence of nullable native values.
type Block interface {
	PositionCount() int
	IsNull(position int) bool
	Get(position int) any
}

// CopyNative returns a copy of v that shares no memory with it.
func CopyNative(v any) any {
	switch n := v.(type) {
	case []byte:
		c := make([]byte, len(n))
		copy(c, n)
		return c
	case []any:
		c := make([]any, len(n))
		for i, e := range n {
			c[i] = CopyNative(e)
		}
		return c
	default:
		return v
	}
}
