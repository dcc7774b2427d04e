package util

import (
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
)

// Lazy holds a value computed on first use.
type Lazy[T any] struct {
	m     sync.Mutex
	done  uint32
	value T
	err   error
	eval  func() (T, error)
}

func LazyValue[T any](f func() (T, error)) *Lazy[T] {
	return &Lazy[T]{eval: f}
}

// Get runs the specified function only once, but all callers gets the same
// result from that single execution.
func (o *Lazy[T]) Get() (T, error) {
	if atomic.LoadUint32(&o.done) == 1 {
		return o.value, o.err
	}

	o.m.Lock()
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		o.value, o.err = o.eval()
		if o.err != nil {
			o.err = eris.Wrap(o.err, "lazy evaluation")
		}
	}
	return o.value, o.err
}
