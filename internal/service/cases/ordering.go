package cases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

var half = decimal.New(5, -1)

// midpoint is exact: halving a finite decimal adds at most one digit.
func midpoint(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Mul(half)
}

// placement holds the position hints of a move, already resolved to cases
// of the organization.
type placement struct {
	explicit *decimal.Decimal
	above    *model.Case
	below    *model.Case
}

// position computes the kanban_order of moving inside col. Hints are
// evaluated in priority order: explicit value, both neighbours, above only,
// below only, append.
func position(ctx context.Context, tx store.Store, step decimal.Decimal, moving *model.Case, col model.Column, p placement) (decimal.Decimal, error) {
	switch {
	case p.explicit != nil:
		return *p.explicit, nil

	case p.above != nil && p.below != nil:
		return midpoint(p.above.KanbanOrder, p.below.KanbanOrder), nil

	case p.above != nil:
		next, err := tx.NeighborAfter(ctx, moving.OrgID, col, p.above.KanbanOrder, moving.ID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("find case after %s: %w", p.above.ID, err)
		}
		if next == nil {
			return p.above.KanbanOrder.Add(step), nil
		}
		return midpoint(p.above.KanbanOrder, next.KanbanOrder), nil

	case p.below != nil:
		prev, err := tx.NeighborBefore(ctx, moving.OrgID, col, p.below.KanbanOrder, moving.ID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("find case before %s: %w", p.below.ID, err)
		}
		if prev == nil {
			return p.below.KanbanOrder.Sub(step), nil
		}
		return midpoint(prev.KanbanOrder, p.below.KanbanOrder), nil

	default:
		last, err := tx.LastInColumn(ctx, moving.OrgID, col, moving.ID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("find last case in %s: %w", col, err)
		}
		if last == nil {
			return step, nil
		}
		return last.KanbanOrder.Add(step), nil
	}
}

// fractionDigits returns the number of significant digits after the
// decimal point.
func fractionDigits(d decimal.Decimal) int32 {
	if d.Exponent() >= 0 {
		return 0
	}
	// Exponent reflects how the value was built, not its shortest form.
	n := int32(0)
	s := d.String()
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return n
		}
		n++
	}
	return 0
}

// NeedsCompaction reports whether order has refined past scale fractional
// digits, at which point its column should be renumbered.
func NeedsCompaction(order decimal.Decimal, scale int32) bool {
	return scale > 0 && fractionDigits(order) > scale
}
