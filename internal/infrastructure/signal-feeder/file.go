package signalfeederinfra

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/imetandy/emission-testing/internal/core/ports"
)

type fileSource struct {
	lock    sync.Mutex
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// NewFileSource returns a source replaying the JSON lines of the given file
// in order. Empty lines are skipped. Once the end of the file is reached
// ports.ErrSignalExhausted is returned.
func NewFileSource(path string) (ports.SignalSource, error) {
	if path == "" {
		return nil, ErrMissingSignalFile
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open signal file: %w", err)
	}

	return &fileSource{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

func (s *fileSource) Next(ctx context.Context) (ports.SignalSample, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return ports.SignalSample{}, err
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return ports.SignalSample{}, fmt.Errorf("read signal file: %w", err)
			}
			return ports.SignalSample{}, ports.ErrSignalExhausted
		}
		s.line++

		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		sample, err := parseSignalMsg(line)
		if err != nil {
			return ports.SignalSample{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		return sample, nil
	}
}

func (s *fileSource) Close() error {
	return s.file.Close()
}
