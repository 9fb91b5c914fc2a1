package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("account", "Cash in Hand").Msg("report composed")

	out := buf.String()
	assert.Contains(t, out, `"account":"Cash in Hand"`)
	assert.Contains(t, out, "report composed")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	// Must not panic and must write nowhere.
	log.Error().Msg("dropped")
}
