package linenoise

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ClearScreen(&buf))
	assert.Equal(t, "\x1b[H\x1b[2J", buf.String())
}

func TestHistoryRoundTrip(t *testing.T) {
	ln := New()
	defer ln.Close()

	path := t.TempDir() + "/history"
	ln.AppendHistory("insert 1 one")
	ln.AppendHistory("find 1")
	require.NoError(t, ln.HistorySave(path))

	ln.ClearHistory()
	require.NoError(t, ln.HistoryLoad(path))

	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	require.NoError(t, err)
	assert.Equal(t, "insert 1 one\nfind 1\n", buf.String())
}

func TestHistoryLoadMissingFile(t *testing.T) {
	ln := New()
	defer ln.Close()
	assert.Error(t, ln.HistoryLoad(t.TempDir()+"/missing"))
}
