package entity

import "fmt"

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return ""
	}
}

// Mark is the symbol of the player whose turn it is.
type Mark uint8

const (
	PlayerX Mark = iota
	PlayerO
)

func (that Mark) String() string {
	if that == PlayerO {
		return "O"
	}
	return "X"
}

// Cell returns the board content a move by this mark produces.
func (that Mark) Cell() Cell {
	if that == PlayerO {
		return CellO
	}
	return CellX
}

// Opponent returns the other mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Board is a row-major 3x3 grid, index = row*3 + col.
type Board [CellCount]Cell

// Index converts a row and column into a board index.
// ok is false when either coordinate is outside [0, 2].
func Index(row, col int) (int, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, false
	}
	return row*BoardSize + col, true
}

func (that Board) At(row, col int) Cell {
	idx, ok := Index(row, col)
	if !ok {
		return EmptyCell
	}
	return that[idx]
}

// Count returns how many squares hold the given cell value.
func (that Board) Count(cell Cell) int {
	n := 0
	for _, c := range that {
		if c == cell {
			n++
		}
	}
	return n
}

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusDrawn
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "ongoing"
	}
}

// Outcome is the result of evaluating a round after a move.
// Winner is meaningful only when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Mark
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDrawn}
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	if that.Status == StatusWon {
		return fmt.Sprintf("won(%s)", that.Winner)
	}
	return that.Status.String()
}
