package clock

import (
	"testing"
	"time"

	"menumaster/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UsesConfiguredZone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Timezone = "America/Sao_Paulo"

	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", c.Location().String())
	assert.Equal(t, c.Location(), c.Now().Location())
}

func TestNew_InvalidZone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Timezone = "Mars/Olympus"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	c := &Fixed{At: at}

	assert.Equal(t, at, c.Now())
	c.Advance(time.Hour)
	assert.Equal(t, 2, c.Now().Day())
}
