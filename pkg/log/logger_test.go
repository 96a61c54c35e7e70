package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewContextWithLogger_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name   string
		level  string
		debug  bool
		expect zerolog.Level
	}{
		{name: "default warn", level: "warn", expect: zerolog.WarnLevel},
		{name: "info", level: "info", expect: zerolog.InfoLevel},
		{name: "garbage falls back to warn", level: "loud", expect: zerolog.WarnLevel},
		{name: "empty falls back to warn", level: "", expect: zerolog.WarnLevel},
		{name: "debug flag wins", level: "error", debug: true, expect: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewContextWithLogger(context.Background(), &buf, tt.level, tt.debug)
			assert.Equal(t, tt.expect, zerolog.GlobalLevel())
		})
	}
}

func TestFromCtx_WritesToGivenWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	ctx := NewContextWithLogger(context.Background(), &buf, "info", false)

	FromCtx(ctx).Info().Str("group", "Sales").Msg("member added")

	assert.Contains(t, buf.String(), "member added")
	assert.Contains(t, buf.String(), "Sales")
}

func TestFromCtx_NoLoggerIsDisabled(t *testing.T) {
	logger := FromCtx(context.Background())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
