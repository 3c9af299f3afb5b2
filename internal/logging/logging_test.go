package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "cie.csv").Msg("loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "path=cie.csv")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug().Msg("row decoded")
	assert.Contains(t, buf.String(), "row decoded")
}

func TestNew_BufferIsNotATerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
