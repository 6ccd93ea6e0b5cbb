package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (that *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	b.WriteString("\n")

	if that.phase == phaseNames {
		that.viewNames(&b)
	} else {
		that.viewPlay(&b)
	}

	return b.String()
}

func (that *Model) viewNames(b *strings.Builder) {
	mark := entity.PlayerX
	if that.nameIdx == 1 {
		mark = entity.PlayerO
	}

	before, after := string(that.input[:that.inputCursor]), string(that.input[that.inputCursor:])
	fmt.Fprintf(b, "Enter Player %d's name (%s): %s█%s\n", that.nameIdx+1, mark, before, after)

	if that.nameErr != "" {
		b.WriteString(errorStyle.Render(that.nameErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter confirm • esc quit"))
}

func (that *Model) viewPlay(b *strings.Builder) {
	board := that.session.Board()
	separator := gridStyle.Render("───┼───┼───")
	bar := gridStyle.Render("│")

	for row := range entity.BoardSize {
		if row > 0 {
			b.WriteString(separator)
			b.WriteString("\n")
		}

		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, that.renderCell(board.At(row, col), row, col))
		}

		b.WriteString(strings.Join(cells, bar))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	scores := that.session.CurrentScores()
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%s: %d | %s: %d",
		scores[0].Player.Name, scores[0].Wins, scores[1].Player.Name, scores[1].Wins)))
	fmt.Fprintf(b, "   round %d\n", that.session.Rounds()+1)

	turn := that.session.Turn()
	fmt.Fprintf(b, "%s's turn (%s)\n", turn.Name, turn.Mark)

	if that.status != "" {
		b.WriteString(statusStyle.Render(that.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/hjkl move • enter/space place • 1-9 place • r restart • q quit"))
}

func (that *Model) renderCell(cell entity.Cell, row, col int) string {
	var style lipgloss.Style

	switch cell {
	case entity.CellX:
		style = xStyle
	case entity.CellO:
		style = oStyle
	default:
		style = emptyStyle
	}

	text := " " + cell.String() + " "
	if cell == entity.EmptyCell {
		text = " · "
	}

	if row == that.cursorRow && col == that.cursorCol {
		style = style.Reverse(true)
	}

	return style.Render(text)
}
