package mtr

import "time"

const (
	BatchWritten  = "batch.written"
	BatchItems    = "batch.items"
	BatchDuration = "batch.duration"
)

// EmitBatch reports one batch handed to a destination. A nil client is a no-op.
func EmitBatch(client Client, destination string, size int, duration time.Duration) {
	if client == nil {
		return
	}

	tags := map[string]string{"destination": destination}
	client.Incr(BatchWritten, tags)
	client.Count(BatchItems, int64(size), tags)
	client.Timing(BatchDuration, duration, tags)
}
