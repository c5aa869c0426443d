package domain

import (
	"fmt"
	"strings"
)

// Side identifies which token the trader supplies to the pool.
type Side int

// ParseSide converts a textual side into a Side. Both the single letter and
// the short token ticker are accepted, case insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "ec", "endcoin":
		return SideA, nil
	case "b", "gc", "gaiacoin":
		return SideB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// IsValid returns whether s is one of SideA or SideB.
func (s Side) IsValid() bool {
	return s == SideA || s == SideB
}

// Opposite returns the side of the token received in exchange.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// TokenIn returns the name of the token supplied for this side.
func (s Side) TokenIn() string {
	if s == SideA {
		return TokenNameA
	}
	return TokenNameB
}

// TokenOut returns the name of the token received for this side.
func (s Side) TokenOut() string {
	return s.Opposite().TokenIn()
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSide
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}
