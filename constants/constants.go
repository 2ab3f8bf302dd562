package constants

// CacheDirectoryName is created under the configured root directory.
const CacheDirectoryName = ".torch_data_utils_cache"

const (
	DefaultGroupSize  = 1_000
	DefaultOutputFile = "batches.jsonl"
)
