package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriterPrefixesEachLine(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("🖍️ ", &out)

	n, err := pw.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, "🖍️ first\n🖍️ second\n", out.String())
}

func TestPrefixWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	_, err := pw.Write([]byte("incom"))
	require.NoError(t, err)
	assert.Empty(t, out.String(), "nothing flushed before the newline")

	_, err = pw.Write([]byte("plete\n"))
	require.NoError(t, err)
	assert.Equal(t, "> incomplete\n", out.String())
}
