package fracrow

// proposedWidth resolves the row's width proposal.
func proposedWidth(row Row) float64 {
	if row.Width != nil {
		return *row.Width
	}
	return DefaultWidth
}

// usableWidth is the width left for item content once every inter-item
// gap is paid for. An empty row has no gaps.
func usableWidth(row Row) float64 {
	gaps := len(row.Items) - 1
	if gaps < 0 {
		gaps = 0
	}
	return proposedWidth(row) - row.Spacing*float64(gaps)
}

// remainderShare resolves the fraction granted to each item that did
// not declare one: whatever the declared fractions leave over, split
// evenly. With no declared fractions this is 1/n, the even-division
// rule. When declared fractions over-commit the row the share goes
// negative and is used as-is; see ComputeSizes.
func remainderShare(items []Item) float64 {
	declared := 0.0
	undeclared := 0
	for _, it := range items {
		if it.Fraction < 1 {
			declared += it.Fraction
		} else {
			undeclared++
		}
	}
	if undeclared == 0 {
		return 0
	}
	return (1 - declared) / float64(undeclared)
}

// ComputeSizes resolves the width of every item in the row and asks
// each item for its preferred height at that width. The result has one
// entry per item, in input order.
//
// Over-committed rows (declared fractions summing past 1) are not
// corrected: declared items keep exactly their requested share and
// undeclared items absorb the negative remainder, so widths can come
// out negative. Callers that need sane output for unvalidated
// fractions must validate them before building the row.
func ComputeSizes(row Row) []Size {
	usable := usableWidth(row)
	share := remainderShare(row.Items)

	sizes := make([]Size, 0, len(row.Items))
	for _, it := range row.Items {
		fraction := it.Fraction
		if fraction >= 1 {
			fraction = share
		}
		width := usable * fraction

		var height float64
		if it.Measure != nil {
			height = it.Measure(width)
		}
		sizes = append(sizes, Size{Width: width, Height: height})
	}
	return sizes
}

// PlaceItems resolves the top-left corner of every item when the row
// is anchored at origin. Items sit side by side separated by the row's
// spacing, all at the row's top edge; vertical alignment within the
// row is the caller's concern.
func PlaceItems(row Row, origin Point) []Point {
	positions := make([]Point, 0, len(row.Items))
	x := origin.X
	for _, size := range ComputeSizes(row) {
		positions = append(positions, Point{X: x, Y: origin.Y})
		x += size.Width + row.Spacing
	}
	return positions
}

// MeasureRow reports the size the row would occupy under the given
// width proposal: the proposed width itself (DefaultWidth when nil)
// and the tallest item height, 0 for an empty row. The proposal
// replaces row.Width for this measurement.
func MeasureRow(row Row, proposed *float64) Size {
	row.Width = proposed

	var height float64
	for _, size := range ComputeSizes(row) {
		if size.Height > height {
			height = size.Height
		}
	}
	return Size{Width: proposedWidth(row), Height: height}
}
