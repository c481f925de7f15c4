// Package migrations holds the versioned schema steps (embedded SQL) and
// data seed steps (Go) applied linearly by goose. Every step carries an up
// and a down; seed steps skip cleanly with a warning when a prerequisite
// table is empty so the rest of the sequence still runs.
package migrations

import (
	"embed"

	"go.uber.org/zap"
)

//go:embed *.sql
var Embed embed.FS

// logger receives seed-step warnings. Nop until the migration runner
// installs the application logger.
var logger = zap.NewNop()

// SetLogger routes seed-step warnings through the given logger. Nil
// restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
