package iterator

import (
	"bufio"
	"fmt"
	"io"
)

// MaxLineSize is the longest line [FromLines] accepts.
const MaxLineSize = 16 * 1024 * 1024

type linesIterator struct {
	scanner *bufio.Scanner
	line    string
	loaded  bool
	done    bool
	err     error
}

// FromLines returns an iterator that reads r one line at a time, without the trailing newline.
func FromLines(r io.Reader) Iterator[string] {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &linesIterator{scanner: scanner}
}

func (l *linesIterator) load() {
	if l.loaded || l.done {
		return
	}

	if l.scanner.Scan() {
		l.line = l.scanner.Text()
		l.loaded = true
		return
	}

	l.done = true
	if err := l.scanner.Err(); err != nil {
		l.err = fmt.Errorf("failed to read line: %w", err)
	}
}

func (l *linesIterator) HasNext() bool {
	l.load()
	return l.loaded || l.err != nil
}

func (l *linesIterator) Next() (string, error) {
	l.load()
	if l.err != nil {
		err := l.err
		l.err = nil
		return "", err
	}
	if !l.loaded {
		return "", errFinished
	}

	l.loaded = false
	return l.line, nil
}
