package domain

const (
	// SideA means the trader supplies token A and receives token B.
	SideA Side = iota + 1
	// SideB means the trader supplies token B and receives token A.
	SideB
)

const (
	TokenNameA = "Endcoin"
	TokenNameB = "Gaiacoin"

	// DefaultRatio is the ratio of a pool that never refreshed it.
	DefaultRatio = 1
)
