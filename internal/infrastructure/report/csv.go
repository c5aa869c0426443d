package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/imetandy/emission-testing/internal/core/domain"
)

// csvHeader lists the columns of the CSV report. Prices and reserves are
// those observed right before each trade, followed by the trade itself.
var csvHeader = []string{
	"index",
	"timestamp",
	"reserve_a",
	"reserve_b",
	"price_a_in_b",
	"price_b_in_a",
	"price_a_in_b_adjusted",
	"ratio",
	"side",
	"token_in",
	"amount_in",
	"token_out",
	"amount_out",
	"ratio_refreshed",
}

// CSVSink writes trade steps as a CSV time series, one row per step. The
// file is truncated on every write.
type CSVSink struct {
	path string
	mu   sync.Mutex
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) PutSteps(steps []domain.TradeStep) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, step := range steps {
		if err := writer.Write(csvRecord(step)); err != nil {
			return fmt.Errorf("write trade step %d: %w", step.Index, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvRecord(step domain.TradeStep) []string {
	return []string{
		strconv.Itoa(step.Index),
		step.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		step.Before.ReserveA.String(),
		step.Before.ReserveB.String(),
		step.Before.PriceAInB.String(),
		step.Before.PriceBInA.String(),
		step.Before.PriceAInBAdjusted.String(),
		step.Before.Ratio.String(),
		step.Side.String(),
		step.TokenIn(),
		step.AmountIn.String(),
		step.TokenOut(),
		step.AmountOut.String(),
		strconv.FormatBool(step.RatioRefreshed),
	}
}
