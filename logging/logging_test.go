package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
	})

	var out, file bytes.Buffer
	Setup("debug", &out, &file)
	Logger.Debug().Str("building", "music").Msg("collision")

	assert.Contains(t, out.String(), "Logging set up")
	assert.Contains(t, file.String(), "building=music")
	assert.NotContains(t, file.String(), "\x1b[", "file output must not be coloured")
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
	})

	var out bytes.Buffer
	Setup("warn", &out, nil)
	Logger.Info().Msg("hidden")
	Logger.Warn().Msg("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}
