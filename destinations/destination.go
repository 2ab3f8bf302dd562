package destinations

import (
	"context"
)

type Destination[T any] interface {
	Name() string
	WriteBatch(ctx context.Context, batch []T) error
	OnFinish() error
}
