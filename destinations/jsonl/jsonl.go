package jsonl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artie-labs/datautils/lib/storage/persistedlist"
)

// Record is how a single batch is stored on disk.
type Record[T any] struct {
	Index int `json:"index"`
	Items []T `json:"items"`
}

// Destination appends every batch it receives to a JSON-lines file, one batch per line.
type Destination[T any] struct {
	list  *persistedlist.PersistedList[Record[T]]
	count int
}

func NewDestination[T any](filePath string) *Destination[T] {
	return &Destination[T]{list: persistedlist.NewPersistedList[Record[T]](filePath)}
}

func (d *Destination[T]) Name() string {
	return "jsonl"
}

// Reset drops anything previously written to the file and restarts the batch index.
func (d *Destination[T]) Reset() error {
	if err := d.list.Clear(); err != nil {
		return fmt.Errorf("failed to reset destination: %w", err)
	}
	d.count = 0
	return nil
}

func (d *Destination[T]) WriteBatch(_ context.Context, batch []T) error {
	if err := d.list.Push(Record[T]{Index: d.count, Items: batch}); err != nil {
		return err
	}
	d.count++
	return nil
}

func (d *Destination[T]) OnFinish() error {
	slog.Info("Finished writing batches", slog.String("filePath", d.list.FilePath()), slog.Int("batches", d.count))
	return nil
}

// Records reads back everything written so far.
func (d *Destination[T]) Records() ([]Record[T], error) {
	return d.list.GetData()
}
