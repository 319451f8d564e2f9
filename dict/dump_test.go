package dict

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestDump(t *testing.T) {
	pt := newTestTable(t, 7)
	require.NoError(t, pt.Insert(3, "three"))
	require.NoError(t, pt.Insert(5, "five"))
	require.NoError(t, pt.Insert(10, "ten"))
	_, ok := pt.Remove(5)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, pt.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, "[3] = {3, three}\n")
	assert.Contains(t, out, "[5] = <deleted>\n")
	assert.Contains(t, out, ", ten}\n")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestDumpEmptyTable(t *testing.T) {
	pt := newTestTable(t, 4)
	var buf bytes.Buffer
	require.NoError(t, pt.Dump(&buf))
	assert.Empty(t, buf.String())
}

func TestDumpPermutation(t *testing.T) {
	pt := newTestTable(t, 4)
	var buf bytes.Buffer
	require.NoError(t, pt.DumpPermutation(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "permutation[0] = "))
}

func TestDumpPropagatesWriteErrors(t *testing.T) {
	pt := newTestTable(t, 4)
	require.NoError(t, pt.Insert(1, "one"))
	assert.Error(t, pt.Dump(failingWriter{}))
	assert.Error(t, pt.DumpPermutation(failingWriter{}))
}

func TestString(t *testing.T) {
	pt := newTestTable(t, 4)
	require.NoError(t, pt.Insert(1, "one"))
	assert.Equal(t, "ProbeTable{count=1, capacity=4, limit=4}", pt.String())
}
