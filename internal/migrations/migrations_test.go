package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRoutesWarnings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	logger.Warn("No users found, skipping customer seed")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "No users found, skipping customer seed", logs.All()[0].Message)
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)

	logger.Warn("should not be recorded")

	assert.Equal(t, 0, logs.Len())
}
