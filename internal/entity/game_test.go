package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("Opponent flips between X and O", func(t *testing.T) {
		// Given: both marks
		// When: asking for the opponent
		// Then: each maps to the other
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
	})

	t.Run("Cell matches the mark", func(t *testing.T) {
		assert.Equal(t, CellX, PlayerX.Cell())
		assert.Equal(t, CellO, PlayerO.Cell())
	})

	t.Run("Marshals as its symbol", func(t *testing.T) {
		// Given: a player bound to O
		player := Player{Name: "Bob", Mark: PlayerO}

		// When: encoding it as JSON
		data, err := json.Marshal(player)
		require.NoError(t, err)

		// Then: the mark is written as a string
		assert.JSONEq(t, `{"name":"Bob","mark":"O"}`, string(data))
	})
}

func TestIndex(t *testing.T) {
	t.Run("Row-major index inside the board", func(t *testing.T) {
		idx, ok := Index(1, 2)

		require.True(t, ok)
		assert.Equal(t, 5, idx)
	})

	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			_, ok := Index(rc[0], rc[1])
			assert.False(t, ok, "row %d col %d", rc[0], rc[1])
		}
	})
}

func TestBoard(t *testing.T) {
	t.Run("At reads row-major cells", func(t *testing.T) {
		// Given: a board with X in the centre and O in the bottom-left corner
		board := Board{
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, CellX, EmptyCell,
			CellO, EmptyCell, EmptyCell,
		}

		// Then: coordinates resolve to the expected cells
		assert.Equal(t, CellX, board.At(1, 1))
		assert.Equal(t, CellO, board.At(2, 0))
		assert.Equal(t, EmptyCell, board.At(0, 0))
		assert.Equal(t, EmptyCell, board.At(7, 7))
	})

	t.Run("Count tallies cells", func(t *testing.T) {
		board := Board{CellX, CellO, CellX}

		assert.Equal(t, 2, board.Count(CellX))
		assert.Equal(t, 1, board.Count(CellO))
		assert.Equal(t, 6, board.Count(EmptyCell))
	})
}

func TestOutcome(t *testing.T) {
	t.Run("Ongoing is not terminal", func(t *testing.T) {
		assert.False(t, Ongoing().IsTerminal())
		assert.Equal(t, "ongoing", Ongoing().String())
	})

	t.Run("Win carries the winner", func(t *testing.T) {
		outcome := Win(PlayerO)

		assert.True(t, outcome.IsTerminal())
		assert.Equal(t, PlayerO, outcome.Winner)
		assert.Equal(t, "won(O)", outcome.String())
	})

	t.Run("Draw is terminal", func(t *testing.T) {
		assert.True(t, Draw().IsTerminal())
		assert.Equal(t, "drawn", Draw().String())
	})
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", EmptyCell.String())
	assert.Equal(t, "X", CellX.String())
	assert.Equal(t, "O", CellO.String())
}
