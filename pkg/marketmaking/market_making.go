package marketmaking

import "github.com/shopspring/decimal"

// MakingStrategy defines the automated market making strategy, using a formula to be applied to calculate the price of next trade.
type MakingStrategy struct {
	name        string
	description string
	formula     MakingFormula
}

// MakingFormula defines the interface for implementing the formula to derive
// the spot price and the amounts of a trade. The opts are specific to every
// formula implementation.
type MakingFormula interface {
	SpotPrice(opts interface{}) (spotPrice decimal.Decimal, err error)
	OutGivenIn(opts interface{}, amountIn decimal.Decimal) (amountOut decimal.Decimal, err error)
	InGivenOut(opts interface{}, amountOut decimal.Decimal) (amountIn decimal.Decimal, err error)
	FormulaType() int
}

// NewStrategyFromFormula returns the strategy struct with the name
func NewStrategyFromFormula(name, description string, formula MakingFormula) *MakingStrategy {
	return &MakingStrategy{
		name:        name,
		description: description,
		formula:     formula,
	}
}

// Name returns the short name of the MM strategy
func (ms *MakingStrategy) Name() string {
	return ms.name
}

// Description returns the long description of the MM strategy
func (ms *MakingStrategy) Description() string {
	return ms.description
}

// Formula returns the mathematical formula of the MM strategy
func (ms *MakingStrategy) Formula() MakingFormula {
	return ms.formula
}
