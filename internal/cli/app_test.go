package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dsavelev/filevault/internal/config"
	"github.com/dsavelev/filevault/internal/logging"
	"github.com/dsavelev/filevault/internal/repositories/snapshot"
	"github.com/dsavelev/filevault/internal/vault"
)

// newTestApp builds an App over an in-memory vault, with the given script as
// its line input.
func newTestApp(t *testing.T, input string) (*App, *vault.Vault) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := snapshot.NewMemoryRepository()
	v := vault.New(context.Background(), repo, logger, 0)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config: cfg,
		logger: logger,
		vault:  v,
		repo:   repo,
		reader: bufio.NewReader(strings.NewReader(input)),
	}, v
}

// stubKey makes GetKey return the given key instead of reading the terminal.
func stubKey(t *testing.T, key string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(key), nil }
	t.Cleanup(func() { readPassword = orig })
}
