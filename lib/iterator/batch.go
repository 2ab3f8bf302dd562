package iterator

import (
	"errors"
	"fmt"
)

var ErrInvalidGroupSize = errors.New("group size must be positive")

type groupsIterator[T any] struct {
	iter      Iterator[T]
	groupSize int
	failed    bool
}

// LazyGroupsOf returns an iterator that pulls items from iter and hands them out in groups of groupSize.
// The last group may be smaller but is never empty. An error from iter ends the sequence.
func LazyGroupsOf[T any](iter Iterator[T], groupSize int) (Iterator[[]T], error) {
	if groupSize <= 0 {
		return nil, fmt.Errorf("%w, got: %d", ErrInvalidGroupSize, groupSize)
	}

	return &groupsIterator[T]{
		iter:      iter,
		groupSize: groupSize,
	}, nil
}

func (g *groupsIterator[T]) HasNext() bool {
	return !g.failed && g.iter.HasNext()
}

func (g *groupsIterator[T]) Next() ([]T, error) {
	if !g.HasNext() {
		return nil, errFinished
	}

	var group []T
	for len(group) < g.groupSize && g.iter.HasNext() {
		item, err := g.iter.Next()
		if err != nil {
			g.failed = true
			return nil, err
		}
		group = append(group, item)
	}

	if len(group) == 0 {
		return nil, errFinished
	}
	return group, nil
}
