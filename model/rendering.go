package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// cursor home followed by erase display
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid through a zero-copy view
func (r *TerminalRenderer) Display(v View) error {
	words, err := v.Words()
	if err != nil {
		return errors.Wrap(err, "[Display]")
	}
	return errors.Wrap(r.draw(v.Width(), v.Height(), func(idx uint) bool {
		return words[idx/64]&(1<<(idx%64)) != 0
	}), "[Display]")
}

// DisplayCells renders a GetCells snapshot of a width x height grid
func (r *TerminalRenderer) DisplayCells(width, height uint32, cells []uint32) error {
	if uint64(len(cells))*32 < uint64(width)*uint64(height) {
		return errors.Wrapf(ErrIndexOutOfRange, "[DisplayCells] %d words cannot hold a %dx%d grid", len(cells), width, height)
	}
	return errors.Wrap(r.draw(width, height, func(idx uint) bool {
		return cells[idx/32]&(1<<(idx%32)) != 0
	}), "[DisplayCells]")
}

func (r *TerminalRenderer) draw(width, height uint32, alive func(idx uint) bool) error {
	w := bufio.NewWriter(r.Out)
	for row := uint(0); row < uint(height); row++ {
		for col := uint(0); col < uint(width); col++ {
			if alive(row*uint(width) + col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "failed to flush output")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
