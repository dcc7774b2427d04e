package iter

import (
	"io"

	"github.com/rotisserie/eris"
)

var _ Iter[string] = &SliceIter[string]{}

type SliceIter[T any] struct {
	items []T
	i     int
}

func (s *SliceIter[T]) Next() (T, error) {
	var item T
	if s.i >= len(s.items) {
		return item, io.EOF
	}
	item = s.items[s.i]
	s.i++
	return item, nil
}

func (s *SliceIter[T]) Close() error {
	return nil
}

func FromSlice[T any](s []T) Iter[T] {
	return &SliceIter[T]{items: s}
}

func ToSlice[T any](iter Iter[T]) ([]T, error) {
	if iter == nil {
		return nil, eris.New("nil iterator")
	}
	defer iter.Close()

	s := []T{}
	var item T
	var err error
	for item, err = iter.Next(); err == nil; item, err = iter.Next() {
		s = append(s, item)
	}
	if err != io.EOF {
		return nil, err
	}
	return s, nil
}
