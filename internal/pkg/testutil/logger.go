package testutil

import (
	"bytes"
	"testing"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/config"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/logger"
)

// SetupTestLogger returns a debug level console logger and the buffer it writes to.
func SetupTestLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return logger.NewConsoleLogger(config.LogLevelDebug, &buf), &buf
}
