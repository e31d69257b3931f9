package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: logging.FormatJSON, Out: &buf})
	require.NoError(t, err)

	log.Trace().Msg("hidden")
	log.Debug().Int("step", 3).Msg("advanced")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "advanced", rec["message"])
	assert.EqualValues(t, 3, rec["step"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Out: &buf, NoColor: true})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("mode", "pair").Msg("solved")
	assert.Contains(t, buf.String(), "solved")
	assert.Contains(t, buf.String(), "mode=pair")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Options{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrFormat)
}
