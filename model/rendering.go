package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridBorder   = "─"

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out}
}

// FrameWidth returns the number of terminal columns a rendered row occupies
func (r *TerminalRenderer) FrameWidth(g *Grid) int {
	return g.Columns() * runewidth.StringWidth(gridPosBlock)
}

// Display renders the grid between two border lines
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	border := strings.Repeat(gridBorder, r.FrameWidth(g)/runewidth.StringWidth(gridBorder)) + "\n"

	w.WriteString(border)
	for row := range g.Rows() {
		for col := range g.Columns() {
			if g.Alive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	w.WriteString(border)

	return errors.Wrap(w.Flush(), "[Display] failed to render grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
