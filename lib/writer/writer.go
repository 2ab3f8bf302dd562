package writer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/artie-labs/datautils/destinations"
	"github.com/artie-labs/datautils/lib/iterator"
	"github.com/artie-labs/datautils/lib/mtr"
)

type Writer[T any] struct {
	destination destinations.Destination[T]
	statsD      mtr.Client
	logProgress bool
}

// New returns a [Writer]. statsD may be nil.
func New[T any](destination destinations.Destination[T], statsD mtr.Client, logProgress bool) Writer[T] {
	return Writer[T]{destination: destination, statsD: statsD, logProgress: logProgress}
}

// Write drains the iterator into the destination and returns the number of items written.
func (w *Writer[T]) Write(ctx context.Context, iter iterator.Iterator[[]T]) (int, error) {
	start := time.Now()
	var count, batches int
	for iter.HasNext() {
		batchStart := time.Now()
		batch, err := iter.Next()
		if err != nil {
			return 0, fmt.Errorf("failed to iterate over batches: %w", err)
		} else if len(batch) > 0 {
			if err = w.destination.WriteBatch(ctx, batch); err != nil {
				return 0, fmt.Errorf("failed to write batch: %w", err)
			}
			count += len(batch)
			batches++
			mtr.EmitBatch(w.statsD, w.destination.Name(), len(batch), time.Since(batchStart))
		}

		if w.logProgress {
			slog.Info("Write progress",
				slog.Int("totalSize", count),
				slog.Duration("totalDuration", time.Since(start)),
				slog.Int("batchSize", len(batch)),
				slog.Duration("batchDuration", time.Since(batchStart)),
			)
		}
	}

	if err := w.destination.OnFinish(); err != nil {
		return 0, fmt.Errorf("failed running destination OnFinish: %w", err)
	}

	slog.Info("Finished writing", slog.Int("batches", batches), slog.Int("items", count), slog.Duration("duration", time.Since(start)))
	return count, nil
}
