package main

import (
	"fmt"
	"strings"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var quote = cli.Command{
	Name:  "quote",
	Usage: "apply a list of trades to a fresh pool and print its final state",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "reserve-a",
			Usage: "the initial amount of Endcoin in the pool",
			Value: "1000",
		},
		&cli.StringFlag{
			Name:  "reserve-b",
			Usage: "the initial amount of Gaiacoin in the pool",
			Value: "1000",
		},
		&cli.StringSliceFlag{
			Name:  "trade",
			Usage: "a trade in the form <side>:<amount>, ie. a:42 or gaiacoin:3.5",
		},
		&cli.StringFlag{
			Name:  "signal",
			Usage: "the signal sample in the form <numerator>/<denominator>, ie. 25/20.8",
		},
		&cli.BoolFlag{
			Name:  "refresh",
			Usage: "refresh the ratio with the given signal after the trades",
		},
	},
	Action: quoteAction,
}

type quotedTrade struct {
	Side      domain.Side     `json:"side"`
	AmountIn  decimal.Decimal `json:"amount_in"`
	AmountOut decimal.Decimal `json:"amount_out"`
}

type strategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type quoteReply struct {
	Strategy strategyInfo    `json:"strategy"`
	Trades   []quotedTrade   `json:"trades"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

func quoteAction(ctx *cli.Context) error {
	reserveA, err := decimal.NewFromString(ctx.String("reserve-a"))
	if err != nil {
		return fmt.Errorf("invalid reserve-a: %w", err)
	}
	reserveB, err := decimal.NewFromString(ctx.String("reserve-b"))
	if err != nil {
		return fmt.Errorf("invalid reserve-b: %w", err)
	}

	pool, err := domain.NewPool(reserveA, reserveB)
	if err != nil {
		return err
	}

	if signal := ctx.String("signal"); signal != "" {
		numerator, denominator, err := parseSignal(signal)
		if err != nil {
			return err
		}
		if err := pool.SetSignal(numerator, denominator); err != nil {
			return err
		}
	} else if ctx.Bool("refresh") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	strategy := pool.Strategy()
	reply := quoteReply{
		Strategy: strategyInfo{strategy.Name(), strategy.Description()},
		Trades:   make([]quotedTrade, 0),
	}
	for _, t := range ctx.StringSlice("trade") {
		side, amount, err := parseTrade(t)
		if err != nil {
			return err
		}

		amountOut, err := pool.QuoteOutGivenIn(amount, side)
		if err != nil {
			return err
		}
		if err := pool.Trade(amount, side); err != nil {
			return err
		}
		reply.Trades = append(reply.Trades, quotedTrade{side, amount, amountOut})
	}

	if ctx.Bool("refresh") {
		pool.RefreshRatio()
	}
	reply.Snapshot = pool.Snapshot()

	printJSON(reply)
	return nil
}

// parseTrade parses a trade in the form <side>:<amount>.
func parseTrade(str string) (domain.Side, decimal.Decimal, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return 0, decimal.Zero, fmt.Errorf(
			"invalid trade %q, must be in the form <side>:<amount>", str,
		)
	}

	side, err := domain.ParseSide(parts[0])
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("invalid trade amount %q: %w", parts[1], err)
	}
	return side, amount, nil
}

// parseSignal parses a signal sample in the form <numerator>/<denominator>.
func parseSignal(str string) (decimal.Decimal, decimal.Decimal, error) {
	parts := strings.Split(str, "/")
	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf(
			"invalid signal %q, must be in the form <numerator>/<denominator>", str,
		)
	}

	numerator, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid signal numerator: %w", err)
	}
	denominator, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid signal denominator: %w", err)
	}
	return numerator, denominator, nil
}
