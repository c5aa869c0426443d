// Package report implements the sinks where the trade steps of a simulation
// are written once the run is over.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imetandy/emission-testing/internal/core/ports"
)

const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// IsSupportedFormat returns whether format is a known report format.
func IsSupportedFormat(format string) bool {
	return format == FormatJSONL || format == FormatCSV
}

// NewSink returns the sink for the given format writing to path.
func NewSink(format, path string) (ports.StepSink, error) {
	switch format {
	case FormatJSONL:
		return NewJSONLSink(path), nil
	case FormatCSV:
		return NewCSVSink(path), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
