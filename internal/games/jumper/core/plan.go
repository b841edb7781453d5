package core

import "fmt"

// Plan symbols. Any other byte is empty space.
const (
	SymbolPlayer   = '@'
	SymbolCoin     = 'o'
	SymbolWall     = 'x'
	SymbolLava     = '!'
	SymbolLavaX    = '=' // Horizontal bouncer
	SymbolLavaY    = '|' // Vertical bouncer
	SymbolLavaDrip = 'v' // Vertical dripper
)

// Plan is the textual blueprint of a level: equal-length rows, top to bottom.
// Rows are indexed by byte.
type Plan []string

// Width returns the length of the first row, or 0 for an empty plan.
func (p Plan) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Height returns the number of rows.
func (p Plan) Height() int {
	return len(p)
}

// Count returns how many times the symbol appears in the plan.
func (p Plan) Count(symbol byte) int {
	n := 0
	for _, row := range p {
		for i := 0; i < len(row); i++ {
			if row[i] == symbol {
				n++
			}
		}
	}
	return n
}

// Plan validation codes.
const (
	CodeEmptyPlan       = "EMPTY_PLAN"
	CodeRaggedRows      = "RAGGED_ROWS"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeNoCoins         = "NO_COINS"
)

// PlanError describes why a plan cannot be turned into a level.
type PlanError struct {
	Code    string
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidatePlan checks that a plan describes a playable level:
//   - at least one non-empty row
//   - all rows the same length
//   - exactly one player spawn
//   - at least one coin
func ValidatePlan(p Plan) error {
	if len(p) == 0 || len(p[0]) == 0 {
		return &PlanError{Code: CodeEmptyPlan, Message: "plan has no rows"}
	}

	width := len(p[0])
	for y, row := range p {
		if len(row) != width {
			return &PlanError{
				Code:    CodeRaggedRows,
				Message: fmt.Sprintf("row %d has length %d, want %d", y, len(row), width),
			}
		}
	}

	switch n := p.Count(SymbolPlayer); {
	case n == 0:
		return &PlanError{Code: CodeNoPlayer, Message: "plan has no player spawn"}
	case n > 1:
		return &PlanError{
			Code:    CodeMultiplePlayers,
			Message: fmt.Sprintf("plan has %d player spawns, want 1", n),
		}
	}

	if p.Count(SymbolCoin) == 0 {
		return &PlanError{Code: CodeNoCoins, Message: "plan has no coins"}
	}

	return nil
}
