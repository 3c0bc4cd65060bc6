package console

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ANSI palette for the two marks.
const (
	colorMarkX = "6"
	colorMarkO = "5"
)

// Renderer - writes board grids row by row, coloring marks when the terminal
// profile allows it.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

// ProfileFor - resolves a color mode from the config into a termenv profile.
func ProfileFor(mode string) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI
	default:
		return termenv.ColorProfile()
	}
}

// RenderGrid - prints the grid with cells separated by "|", one row per line.
func (that *Renderer) RenderGrid(grid entity.Grid) {
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, token := range row {
			cells = append(cells, that.styleToken(token))
		}

		SendText(that.output, "%s\n", strings.Join(cells, "|"))
	}
}

func (that *Renderer) styleToken(token string) string {
	switch token {
	case entity.PlayerX:
		return that.output.String(token).Foreground(that.output.Color(colorMarkX)).String()
	case entity.PlayerO:
		return that.output.String(token).Foreground(that.output.Color(colorMarkO)).String()
	default:
		return token
	}
}
