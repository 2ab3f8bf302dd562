package iterator

type sliceIterator[T any] struct {
	items []T
	index int
}

// FromSlice returns an iterator over the items of a slice. The slice is not copied.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

func (s *sliceIterator[T]) HasNext() bool {
	return s.index < len(s.items)
}

func (s *sliceIterator[T]) Next() (T, error) {
	if !s.HasNext() {
		var zero T
		return zero, errFinished
	}

	item := s.items[s.index]
	s.index++
	return item, nil
}

// Once returns an iterator that produces value and then completes.
func Once[T any](value T) Iterator[T] {
	return FromSlice([]T{value})
}
