// Package fracrow computes proportional width allocation for a single
// horizontal row of items.
//
// Each item may declare a fraction of the row's usable width. Items
// that declare nothing share whatever remains, evenly. The package is
// pure geometry: it owns no state, performs no I/O, and treats rows as
// transient per-pass snapshots — build a Row, lay it out, discard it.
package fracrow

// DefaultWidth is the width distributed when a row carries no width
// proposal.
const DefaultWidth = 10.0

// DefaultSpacing is the gap between consecutive items for rows built
// with NewRow.
const DefaultSpacing = 10.0

// Unspecified marks an item as declaring no width fraction. Any
// fraction value >= 1 carries the same meaning: share the remainder
// evenly with the other undeclared items.
const Unspecified = 1.0

// MeasureFunc reports an item's preferred height when it is offered
// the given width.
type MeasureFunc func(width float64) float64

// Item is a single layout participant.
//
// The zero value declares a fraction of 0 (zero width); use NewItem
// for an item that shares the remainder.
type Item struct {
	// ID identifies the item to the caller. The allocator never
	// interprets it.
	ID string

	// Fraction is the declared share of the row's usable width.
	// Values >= 1, including Unspecified, mean "no declaration".
	Fraction float64

	// Measure reports the item's preferred height at a proposed
	// width. nil reports 0.
	Measure MeasureFunc
}

// NewItem returns an item with no declared fraction.
func NewItem(id string, measure MeasureFunc) Item {
	return Item{ID: id, Fraction: Unspecified, Measure: measure}
}

// WithFraction returns a copy of the item declaring the given share of
// the usable width.
func (it Item) WithFraction(f float64) Item {
	it.Fraction = f
	return it
}

// Row is an ordered sequence of items laid out left to right in a
// single pass. Order determines placement and is preserved in every
// result.
type Row struct {
	Items []Item

	// Spacing is the fixed gap between consecutive items.
	Spacing float64

	// Width is the width proposed for this pass. nil means "no
	// proposal" and resolves to DefaultWidth. Zero and negative
	// proposals are valid inputs, which is why absence needs a
	// pointer rather than a sentinel value.
	Width *float64
}

// NewRow returns a row over the given items with DefaultSpacing and no
// width proposal.
func NewRow(items ...Item) Row {
	return Row{Items: items, Spacing: DefaultSpacing}
}

// WithSpacing returns a copy of the row using the given inter-item gap.
func (r Row) WithSpacing(spacing float64) Row {
	r.Spacing = spacing
	return r
}

// WithWidth returns a copy of the row proposing the given width.
func (r Row) WithWidth(width float64) Row {
	r.Width = &width
	return r
}

// Proposed builds a width proposal for Row.Width or MeasureRow.
func Proposed(width float64) *float64 {
	return &width
}

// Size is a computed width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Point is a computed top-left position.
type Point struct {
	X float64
	Y float64
}
