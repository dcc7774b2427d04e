package iter

import (
	"io"

	"github.com/rotisserie/eris"
)

// An Iterator that also implements the Closer interface.
// Next returns io.EOF once the iterator is exhausted.
// The caller should call close() method to free all resources properly after using the iterator.
type Iter[T any] interface {
	Next() (T, error)
	Close() error
}

func Map[T any, R any](iter Iter[T], mapper func(t T) (R, error)) ([]R, error) {
	defer iter.Close()

	var res []R
	var err error
	var item T
	for item, err = iter.Next(); err == nil; item, err = iter.Next() {
		r, err := mapper(item)
		if err != nil {
			return nil, eris.Wrapf(err, "mapping value %v", item)
		}
		res = append(res, r)
	}

	if err == io.EOF {
		return res, nil
	}
	return nil, err
}

// ForEach calls fn on every item until the iterator is exhausted or fn fails.
func ForEach[T any](iter Iter[T], fn func(t T) error) error {
	defer iter.Close()

	for item, err := iter.Next(); err != io.EOF; item, err = iter.Next() {
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}
