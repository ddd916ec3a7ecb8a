package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	indexStyle = lipgloss.NewStyle().Faint(true)
	whiteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	blackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// RenderPlain returns the tab separated dump of signed piece codes.
func RenderPlain(grid chess.Grid) string {
	return grid.String()
}

// RenderStyled returns the board as piece letters inside a rounded box,
// with row indices down the left and column indices along the top.
// White pieces are upper case and Black lower case.
func RenderStyled(grid chess.Grid) string {
	lines := make([]string, 0, chess.BoardSize+1)

	header := make([]string, 0, chess.BoardSize+1)
	header = append(header, " ")
	for col := 0; col < chess.BoardSize; col++ {
		header = append(header, strconv.Itoa(col))
	}
	lines = append(lines, indexStyle.Render(strings.Join(header, " ")))

	for row := 0; row < chess.BoardSize; row++ {
		cells := make([]string, 0, chess.BoardSize+1)
		cells = append(cells, indexStyle.Render(strconv.Itoa(row)))
		for col := 0; col < chess.BoardSize; col++ {
			cells = append(cells, renderPiece(grid[row][col]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return boardStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func renderPiece(p chess.Piece) string {
	letter := string(p.Letter())
	switch {
	case p == chess.Empty:
		return emptyStyle.Render(letter)
	case p > 0:
		return whiteStyle.Render(letter)
	default:
		return blackStyle.Render(letter)
	}
}
