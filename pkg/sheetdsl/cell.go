package sheetdsl

import "github.com/ukaji3/sheetdsl-go/pkg/sheetdsl/formula"

// Cell binds a reference to a formula. Each formula builder replaces the
// previous formula.
type Cell struct {
	reference Reference
	formula   string
}

// NewCell creates a cell for ref and applies configure to it before
// returning. configure may be nil.
func NewCell(ref Reference, configure func(*Cell)) *Cell {
	c := &Cell{reference: ref}
	if configure != nil {
		configure(c)
	}
	return c
}

// Reference returns the cell's address.
func (c *Cell) Reference() Reference { return c.reference }

// Formula returns the formula text, or "" if none has been set.
func (c *Cell) Formula() string { return c.formula }

// Sum sets the formula to SUM(r1,r2,...).
func (c *Cell) Sum(refs ...Reference) {
	c.formula = formula.Sum(refs...)
}

// Average sets the formula to AVERAGE(r1,r2,...).
func (c *Cell) Average(refs ...Reference) {
	c.formula = formula.Average(refs...)
}

// If sets the formula to IF(condition, trueValue, falseValue).
func (c *Cell) If(condition, trueValue, falseValue string) {
	c.formula = formula.If(condition, trueValue, falseValue)
}
