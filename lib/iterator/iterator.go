package iterator

import "errors"

var errFinished = errors.New("iterator has finished")

// Iterator is a pull-based sequence. Implementations are meant for a single consumer and are not safe for concurrent use.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Collect drains an [Iterator] into a slice.
func Collect[T any](iter Iterator[T]) ([]T, error) {
	var result []T
	for iter.HasNext() {
		value, err := iter.Next()
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}
