package main

import (
	"fmt"

	"github.com/imetandy/emission-testing/pkg/emission"
	"github.com/urfave/cli/v2"
)

const (
	legacyCurve    = "legacy"
	symmetricCurve = "symmetric"
)

var emissionCmd = cli.Command{
	Name:  "emission",
	Usage: "print the emission of both tokens over a range of temperatures",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "curve",
			Usage: "the emission curve, one of legacy, symmetric",
			Value: symmetricCurve,
		},
		&cli.Float64Flag{
			Name:  "from",
			Usage: "the lowest temperature (inclusive)",
			Value: 19,
		},
		&cli.Float64Flag{
			Name:  "to",
			Usage: "the highest temperature (exclusive)",
			Value: 23,
		},
		&cli.Float64Flag{
			Name:  "step",
			Usage: "the distance between two temperatures",
			Value: 0.1,
		},
	},
	Action: emissionAction,
}

func emissionAction(ctx *cli.Context) error {
	curve, err := getCurve(ctx.String("curve"))
	if err != nil {
		return err
	}

	rows, err := emission.Table(
		curve, ctx.Float64("from"), ctx.Float64("to"), ctx.Float64("step"),
	)
	if err != nil {
		return err
	}

	printJSON(rows)
	return nil
}

func getCurve(name string) (emission.Curve, error) {
	switch name {
	case legacyCurve:
		return emission.DefaultLegacy(), nil
	case symmetricCurve:
		return emission.DefaultSymmetric(), nil
	default:
		return nil, fmt.Errorf("unknown emission curve %q", name)
	}
}
