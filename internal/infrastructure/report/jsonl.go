package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/imetandy/emission-testing/internal/core/domain"
)

// JSONLSink appends trade steps to a JSONL file, one step per line.
type JSONLSink struct {
	path string
	mu   sync.Mutex
}

func NewJSONLSink(path string) *JSONLSink {
	return &JSONLSink{path: path}
}

// PutSteps appends a batch of steps as JSON lines.
func (s *JSONLSink) PutSteps(steps []domain.TradeStep) error {
	if len(steps) == 0 {
		return nil
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, step := range steps {
		line, err := json.Marshal(step)
		if err != nil {
			return fmt.Errorf("marshal trade step: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write trade step: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
