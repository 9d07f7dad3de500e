package cube

// Row is a single row of a pivoted table. Labels holds one entry per row
// index level, Codes one entry per appended geography code column, Values one
// entry per value column.
type Row struct {
	Labels []string
	Codes  []string
	Values []float64
}

// Table is the pivoted, two-axis view of a cube. The first field populates
// the rows, the second (when present) the columns, and any remaining fields
// become additional row index levels in order.
type Table struct {
	RowFields  []string
	CodeFields []string
	Columns    []string
	Rows       []Row

	columnIndex map[string]int
}

// ColumnIndex returns the position of the named value column.
func (t *Table) ColumnIndex(label string) (int, bool) {
	i, ok := t.columnIndex[label]
	return i, ok
}

// Cell returns the value at the row whose first-level label matches rowLabel
// and the named column. When additional row levels are present the first
// matching row wins, so the lookup is only unambiguous for two-dimensional
// tables.
func (t *Table) Cell(rowLabel, columnLabel string) (float64, bool) {
	col, ok := t.columnIndex[columnLabel]
	if !ok {
		return 0, false
	}
	for _, row := range t.Rows {
		if row.Labels[0] == rowLabel {
			return row.Values[col], true
		}
	}
	return 0, false
}

// Pivot applies the default layout: dimension 0 becomes the row index,
// dimension 1 (if present) the columns, and dimensions 2..n-1 further row
// index levels, with dimension 0 varying slowest. Cells are filled from the
// first measure by direct positional correspondence; every source value maps
// to exactly one cell. A one-dimensional cube produces a single value column
// named after the measure.
//
// The layout is a heuristic suited to the common two-informative-axes query.
// It does not attempt to detect whether the query's field ordering matches
// the caller's intent.
func (c *Cube) Pivot() *Table {
	size := c.Size()

	// Row index levels are every dimension except dimension 1.
	rowDims := []int{0}
	for i := 2; i < len(size); i++ {
		rowDims = append(rowDims, i)
	}

	t := &Table{
		RowFields:   make([]string, 0, len(rowDims)),
		columnIndex: map[string]int{},
	}
	for _, d := range rowDims {
		t.RowFields = append(t.RowFields, c.Fields[d].Label)
	}

	if len(size) >= 2 {
		for _, item := range c.Fields[1].Items {
			t.columnIndex[item.Label] = len(t.Columns)
			t.Columns = append(t.Columns, item.Label)
		}
	} else {
		t.columnIndex[c.Measures[0].Label] = 0
		t.Columns = []string{c.Measures[0].Label}
	}

	rowCount := 1
	for _, d := range rowDims {
		rowCount *= size[d]
	}

	t.Rows = make([]Row, rowCount)
	for r := range t.Rows {
		t.Rows[r] = Row{
			Labels: rowLabels(c, rowDims, r),
			Values: make([]float64, len(t.Columns)),
		}
	}

	values := c.Values[0]
	coord := make([]int, len(size))
	for s, v := range values {
		// Decompose the flat row-major index into cube coordinates.
		rem := s
		for i := len(size) - 1; i >= 0; i-- {
			coord[i] = rem % size[i]
			rem /= size[i]
		}

		r := 0
		for _, d := range rowDims {
			r = r*size[d] + coord[d]
		}

		col := 0
		if len(size) >= 2 {
			col = coord[1]
		}

		t.Rows[r].Values[col] = v
	}

	return t
}

// rowLabels resolves row r back to one item label per row index level.
func rowLabels(c *Cube, rowDims []int, r int) []string {
	labels := make([]string, len(rowDims))
	for i := len(rowDims) - 1; i >= 0; i-- {
		n := len(c.Fields[rowDims[i]].Items)
		labels[i] = c.Fields[rowDims[i]].Items[r%n].Label
		r /= n
	}
	return labels
}
