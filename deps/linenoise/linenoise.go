package linenoise

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// LineNoise is a line editor with in-memory history backed by liner.
type LineNoise struct {
	*liner.State
}

// New puts the terminal into line editing mode. Close restores it.
func New() *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	return ln
}

// HistoryLoad appends the entries stored in path to the history.
func (ln *LineNoise) HistoryLoad(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ln.ReadHistory(f)
	return err
}

// HistorySave replaces path with the current history, one entry per line.
func (ln *LineNoise) HistorySave(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ClearScreen writes the ANSI home and erase sequence to w.
func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, "\x1b[H\x1b[2J")
	return err
}
