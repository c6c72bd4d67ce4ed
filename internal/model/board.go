package model

// BoardSize is the number of cells on a tic-tac-toe board
const BoardSize = 9

// Cell is either empty ("") or holds a Marker
type Cell = Marker

// Board is a row-major snapshot of the 3x3 grid
type Board [BoardSize]Cell

// Rows splits the board into its three rows
func (b Board) Rows() [3][3]Cell {
	var rows [3][3]Cell
	for i, c := range b {
		rows[i/3][i%3] = c
	}
	return rows
}

// IsEmpty returns true if no cell has been played
func (b Board) IsEmpty() bool {
	return b == Board{}
}
