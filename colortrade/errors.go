package colortrade

import "errors"

// Errors
var (
	ErrInvalidGraph          = errors.New("invalid graph")
	ErrIncompatibleColorings = errors.New("colorings are not defined over the same graph")
	ErrInvalidColoring       = errors.New("invalid coloring")
	ErrBadGraphExpr          = errors.New("bad graph expression")
	ErrBadGraphFile          = errors.New("bad graph file")
	ErrBadConfig             = errors.New("bad config")
	ErrNoSuchColoring        = errors.New("no such coloring")
	ErrBadTradeRule          = errors.New("bad trade rule")
	ErrBadKey                = errors.New("bad canonical key encoding")
)
