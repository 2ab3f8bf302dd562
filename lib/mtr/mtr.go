package mtr

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/artie-labs/transfer/lib/stringutil"
)

const (
	DefaultNamespace = "datautils."
	// DefaultAddr is where the agent listens on a single host machine.
	DefaultAddr = "127.0.0.1:8125"
)

type Client interface {
	Incr(name string, tags map[string]string)
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
	Flush()
}

func address() string {
	host := os.Getenv("TELEMETRY_HOST")
	port := os.Getenv("TELEMETRY_PORT")
	if stringutil.Empty(host, port) {
		return DefaultAddr
	}
	return fmt.Sprintf("%s:%s", host, port)
}

func New(namespace string, tags []string, samplingRate float64) (Client, error) {
	addr := address()
	if addr != DefaultAddr {
		slog.Info("Overriding telemetry address with env vars", slog.String("address", addr))
	}

	client, err := statsd.New(addr,
		statsd.WithNamespace(stringutil.Override(DefaultNamespace, namespace)),
		statsd.WithTags(tags),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client: %w", err)
	}
	return &datadogClient{statsd: client, rate: samplingRate}, nil
}
