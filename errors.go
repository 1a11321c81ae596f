package laurent

import (
	"errors"

	"github.com/jonathanmweiss/go-laurent/poly"
	"github.com/jonathanmweiss/go-laurent/ring"
)

// Failures coming from the coefficient and ordinary-polynomial layers keep
// their identity, so a single errors.Is check works across the module.
var (
	ErrDivisionByZero  = ring.ErrDivisionByZero
	ErrNotInvertible   = ring.ErrNotInvertible
	ErrInexactDivision = ring.ErrInexactDivision
	ErrNegativeShift   = poly.ErrNegativeShift

	ErrNegativePower   = errors.New("laurent: negative power of a non-unit")
	ErrMismatchedRings = errors.New("laurent: operands belong to different rings")
	ErrParse           = errors.New("laurent: invalid expression")
)
