package render

import "strings"

// table is a minimal spacing-aligned text table without borders.
type table struct {
	rows      [][]string
	colWidths []int
}

func newTable(cols int) *table {
	return &table{colWidths: make([]int, cols)}
}

func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if len(cells[i]) > t.colWidths[i] {
			t.colWidths[i] = len(cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) String() string {
	if len(t.rows) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			// Pad every column but the last to its width.
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", t.colWidths[i]-len(cell)))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
