package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/openkraft/repocheck/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSONOutputCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "debug", Output: &buf, JSON: true})

	log.WithComponent("loader").Debug().Str("path", "renovate.json").Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "repocheck", entry["service"])
	assert.Equal(t, "renovate.json", entry["path"])
	assert.Equal(t, "resolved", entry["message"])
}

func TestConfigure_DefaultLevelHidesDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	log.Configure(log.Config{Output: &buf, JSON: true})

	log.Base().Debug().Msg("hidden")
	log.Base().Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	log.Base().Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_EnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	log.Configure(log.Config{Output: &buf})

	log.Base().Info().Msg("from env")
	assert.Contains(t, buf.String(), "from env")
}
