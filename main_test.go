package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/datautils/config"
	"github.com/artie-labs/datautils/destinations/jsonl"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "train.txt")
	assert.NoError(t, os.WriteFile(input, []byte("a\nb\nc\nd\ne\n"), 0o644))

	cfg := config.Settings{RootDir: dir, Input: input, GroupSize: 2}
	count, err := run(context.Background(), cfg, nil)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, filepath.Join(dir, ".torch_data_utils_cache", "batches.jsonl"), cfg.OutputPath())

	records, err := jsonl.NewDestination[string](cfg.OutputPath()).Records()
	assert.NoError(t, err)
	assert.Equal(t, []jsonl.Record[string]{
		{Index: 0, Items: []string{"a", "b"}},
		{Index: 1, Items: []string{"c", "d"}},
		{Index: 2, Items: []string{"e"}},
	}, records)
}

func TestRun_Twice(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "train.txt")
	assert.NoError(t, os.WriteFile(input, []byte("a\nb\nc\n"), 0o644))

	cfg := config.Settings{RootDir: dir, Input: input, GroupSize: 2}
	for range 2 {
		count, err := run(context.Background(), cfg, nil)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	}

	records, err := jsonl.NewDestination[string](cfg.OutputPath()).Records()
	assert.NoError(t, err)
	assert.Equal(t, []jsonl.Record[string]{
		{Index: 0, Items: []string{"a", "b"}},
		{Index: 1, Items: []string{"c"}},
	}, records)
}

func TestRun_LongLine(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "train.txt")
	longLine := strings.Repeat("x", 70*1024)
	assert.NoError(t, os.WriteFile(input, []byte(longLine+"\nshort\n"), 0o644))

	cfg := config.Settings{RootDir: dir, Input: input, GroupSize: 1}
	count, err := run(context.Background(), cfg, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := jsonl.NewDestination[string](cfg.OutputPath()).Records()
	assert.NoError(t, err)
	assert.Equal(t, []jsonl.Record[string]{
		{Index: 0, Items: []string{longLine}},
		{Index: 1, Items: []string{"short"}},
	}, records)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	{
		// Missing input
		_, err := run(context.Background(), config.Settings{RootDir: dir, Input: filepath.Join(dir, "missing.txt"), GroupSize: 2}, nil)
		assert.ErrorContains(t, err, "failed to open input file")
	}
	{
		// Invalid group size
		input := filepath.Join(dir, "train.txt")
		assert.NoError(t, os.WriteFile(input, []byte("a\n"), 0o644))
		_, err := run(context.Background(), config.Settings{RootDir: dir, Input: input}, nil)
		assert.ErrorContains(t, err, "group size must be positive, got: 0")
	}
}

func TestSetUpMetrics(t *testing.T) {
	statsD, err := setUpMetrics(nil)
	assert.NoError(t, err)
	assert.Nil(t, statsD)
}
