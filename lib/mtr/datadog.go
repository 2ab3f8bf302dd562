package mtr

import (
	"sort"
	"time"

	"github.com/DataDog/datadog-go/statsd"
)

// datadogClient sends every metric through the agent with the same sampling rate.
type datadogClient struct {
	statsd *statsd.Client
	rate   float64
}

// tagList renders tags as sorted key:value pairs.
func tagList(tags map[string]string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	for key, value := range tags {
		out = append(out, key+":"+value)
	}
	sort.Strings(out)
	return out
}

func (d *datadogClient) Incr(name string, tags map[string]string) {
	_ = d.statsd.Incr(name, tagList(tags), d.rate)
}

func (d *datadogClient) Count(name string, value int64, tags map[string]string) {
	_ = d.statsd.Count(name, value, tagList(tags), d.rate)
}

func (d *datadogClient) Timing(name string, value time.Duration, tags map[string]string) {
	_ = d.statsd.Timing(name, value, tagList(tags), d.rate)
}

func (d *datadogClient) Flush() {
	_ = d.statsd.Flush()
}
