package persistedlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PersistedList is an append-only list stored as one JSON document per line.
type PersistedList[T any] struct {
	filePath string
}

func NewPersistedList[T any](filePath string) *PersistedList[T] {
	return &PersistedList[T]{
		filePath: filePath,
	}
}

func (p PersistedList[T]) FilePath() string {
	return p.filePath
}

// Push appends items to the file, creating it and its parent directories if needed.
func (p PersistedList[T]) Push(items ...T) error {
	if len(items) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(p.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, item := range items {
		bytes, err := json.Marshal(item)
		if err != nil {
			file.Close()
			return fmt.Errorf("failed to marshal data: %w", err)
		}

		bytes = append(bytes, '\n')
		if _, err = writer.Write(bytes); err != nil {
			file.Close()
			return fmt.Errorf("failed to write to file: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return file.Close()
}

// Clear removes every item. A missing file is already empty.
func (p PersistedList[T]) Clear() error {
	if err := os.Remove(p.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// GetData reads the whole list back. A missing file is an empty list.
func (p PersistedList[T]) GetData() ([]T, error) {
	file, err := os.Open(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	defer file.Close()

	var data []T
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var t T
		if err = json.Unmarshal(scanner.Bytes(), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data: %w", err)
		}

		data = append(data, t)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
