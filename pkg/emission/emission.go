// Package emission computes the daily token emissions driven by a
// temperature reading. Endcoin emission falls as the temperature rises while
// Gaiacoin emission grows with it.
package emission

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRange is returned when a temperature range can't be walked.
	ErrInvalidRange = errors.New("range end must not precede start and step must be positive")
)

// Curve maps a temperature to the daily emission of both tokens.
type Curve interface {
	Endcoin(temperature float64) float64
	Gaiacoin(temperature float64) float64
}

// Legacy is the first emission model:
//
//	endcoin(T)  = exp(E * (D - T)) - 1
//	gaiacoin(T) = exp(G * T) - 1
type Legacy struct {
	D float64
	E float64
	G float64
}

// DefaultLegacy returns the legacy curve with its reference parameters.
func DefaultLegacy() Legacy {
	return Legacy{D: 35, E: 1.1023, G: 0.75}
}

func (c Legacy) Endcoin(temperature float64) float64 {
	return math.Exp(c.E*(c.D-temperature)) - 1
}

func (c Legacy) Gaiacoin(temperature float64) float64 {
	return math.Exp(c.G*temperature) - 1
}

// Symmetric emits the same amount M of both tokens at the center temperature
// T0 and diverges exponentially with steepness H on both sides of it:
//
//	endcoin(T)  = M * exp(H * (T0 - T)) - C
//	gaiacoin(T) = M * exp(H * (T - T0)) - C
type Symmetric struct {
	T0 float64
	M  float64
	C  float64
	H  float64
}

// DefaultSymmetric returns the symmetric curve centered at 21°C.
func DefaultSymmetric() Symmetric {
	return Symmetric{T0: 21, M: 1_000_000, C: 0, H: 1.125}
}

func (c Symmetric) Endcoin(temperature float64) float64 {
	return c.M*math.Exp(c.H*(c.T0-temperature)) - c.C
}

func (c Symmetric) Gaiacoin(temperature float64) float64 {
	return c.M*math.Exp(c.H*(temperature-c.T0)) - c.C
}

// Row is the emission of both tokens at a given temperature.
type Row struct {
	Temperature float64 `json:"temperature"`
	Endcoin     float64 `json:"endcoin"`
	Gaiacoin    float64 `json:"gaiacoin"`
}

// Table evaluates the curve for every temperature in [from, to) walking by
// step. Temperatures are computed as from + i*step to avoid accumulating
// rounding errors.
func Table(curve Curve, from, to, step float64) ([]Row, error) {
	if step <= 0 || to < from {
		return nil, ErrInvalidRange
	}

	count := int(math.Ceil((to - from) / step))
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		t := from + float64(i)*step
		if t >= to {
			break
		}
		rows = append(rows, Row{
			Temperature: t,
			Endcoin:     curve.Endcoin(t),
			Gaiacoin:    curve.Gaiacoin(t),
		})
	}
	return rows, nil
}
