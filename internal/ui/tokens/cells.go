package tokens

// Terminal cell geometry used to map pixel tokens onto a character grid.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cells converts a horizontal pixel length to terminal columns, rounding up.
func Cells(px int) int {
	return ceilDiv(px, CellWidth)
}

// Rows converts a vertical pixel length to terminal rows, rounding up.
func Rows(px int) int {
	return ceilDiv(px, CellHeight)
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
