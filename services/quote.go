// Package services provides the pure domain computations for the VR SHOW
// quoting pipeline: bid aggregation, quote composition, summary statistics,
// planning generation and exports.
package services

import (
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
)

// ErrMarginOutOfRange is returned when a margin percentage cannot be used to
// derive a sale price. A margin of 100% would make the divisor zero.
var ErrMarginOutOfRange = errors.New("margin percent must be >= 0 and < 100")

// QuoteLine is a provider bid for a single role. The same shape serves both
// as a raw provider response and as a line of the final quote.
type QuoteLine struct {
	ID             string  `json:"id"`
	Role           string  `json:"designation"`
	UnitCost       float64 `json:"unit_cost"`
	SalePrice      float64 `json:"sale_price"`
	Days           float64 `json:"days"`
	Order          int     `json:"sort_order"`
	FirstName      string  `json:"first_name,omitempty"`
	LastName       string  `json:"last_name,omitempty"`
	CompanyName    string  `json:"company_name,omitempty"`
	ResponderEmail string  `json:"responder_email,omitempty"`
	SubmittedAt    string  `json:"submitted_at,omitempty"`
}

// Total returns the internal cost of the line (unit cost × days).
func (l QuoteLine) Total() float64 {
	return l.UnitCost * l.Days
}

// SalePrice derives the daily sale price from a unit cost and a global margin
// percentage: round(unitCost / (1 - margin/100)). Margins at or above 100
// are rejected rather than dividing by zero.
func SalePrice(unitCost, marginPercent float64) (float64, error) {
	if marginPercent < 0 || marginPercent >= 100 {
		return 0, ErrMarginOutOfRange
	}
	return math.Round(unitCost / (1 - marginPercent/100)), nil
}

// SelectBid adds a bid to the quote as the winning line for its role. Any
// existing line with the same role designation is replaced, the sale price is
// derived from the global margin, and the line receives a fresh identifier.
// The returned quote is re-sorted by order index (lines without an explicit
// order sort as 0).
func SelectBid(lines []QuoteLine, bid QuoteLine, marginPercent float64) ([]QuoteLine, error) {
	sale, err := SalePrice(bid.UnitCost, marginPercent)
	if err != nil {
		return nil, err
	}

	out := make([]QuoteLine, 0, len(lines)+1)
	for _, l := range lines {
		if l.Role != bid.Role {
			out = append(out, l)
		}
	}

	line := bid
	line.ID = uuid.NewString()
	line.SalePrice = sale
	out = append(out, line)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out, nil
}

// ApplyGlobalMargin recomputes the sale price of every line for the new
// margin percentage. Order and identifiers are preserved.
func ApplyGlobalMargin(lines []QuoteLine, marginPercent float64) ([]QuoteLine, error) {
	if marginPercent < 0 || marginPercent >= 100 {
		return nil, ErrMarginOutOfRange
	}

	out := make([]QuoteLine, len(lines))
	for i, l := range lines {
		sale, err := SalePrice(l.UnitCost, marginPercent)
		if err != nil {
			return nil, err
		}
		l.SalePrice = sale
		out[i] = l
	}
	return out, nil
}

// MoveDirection is the direction of a manual quote reorder.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveLine swaps the identified line with its immediate neighbor in the given
// direction. Moving the first line up or the last line down is a no-op, as is
// an unknown identifier. After a swap every line's order index is reassigned
// to its array position, so indices stay contiguous 0..n-1.
func MoveLine(lines []QuoteLine, id string, direction MoveDirection) []QuoteLine {
	out := make([]QuoteLine, len(lines))
	copy(out, lines)

	idx := -1
	for i, l := range out {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return out
	}

	target := idx + 1
	if direction == MoveUp {
		target = idx - 1
	}
	if target < 0 || target >= len(out) {
		return out
	}

	out[idx], out[target] = out[target], out[idx]
	for i := range out {
		out[i].Order = i
	}
	return out
}

// LinePatch carries the numeric fields of a quote line that may be edited
// from the billing table. Nil fields are left untouched.
type LinePatch struct {
	Days      *float64
	UnitCost  *float64
	SalePrice *float64
}

// UpdateLine applies a patch to the identified line. An unknown identifier is
// a silent no-op so stale edits cannot fault.
func UpdateLine(lines []QuoteLine, id string, patch LinePatch) []QuoteLine {
	out := make([]QuoteLine, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Days != nil {
			out[i].Days = *patch.Days
		}
		if patch.UnitCost != nil {
			out[i].UnitCost = *patch.UnitCost
		}
		if patch.SalePrice != nil {
			out[i].SalePrice = *patch.SalePrice
		}
		break
	}
	return out
}

// RemoveLine deletes the identified line from the quote. Order indices of the
// remaining lines are intentionally left as-is: gaps are tolerated and the
// next MoveLine renumbers them. An unknown identifier is a no-op.
func RemoveLine(lines []QuoteLine, id string) []QuoteLine {
	out := make([]QuoteLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
