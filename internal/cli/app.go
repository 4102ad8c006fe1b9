// Package cli implements the interactive FileVault shell. Commands are thin
// wrappers over the vault core; every business rule lives there.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dsavelev/filevault/internal/config"
	"github.com/dsavelev/filevault/internal/logging"
	"github.com/dsavelev/filevault/internal/repositories/snapshot"
	"github.com/dsavelev/filevault/internal/vault"
)

// minKeyLength is the shortest user-typed key the shell accepts, for
// encryption and decryption alike. A key accepted at upload must pass the
// same check at download, or the stored file could never be decrypted here.
const minKeyLength = 7

type App struct {
	config *config.Config
	logger logging.Logger
	vault  *vault.Vault
	repo   snapshot.Repository
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repo, err := snapshot.NewSQLiteRepository(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	v := vault.New(ctx, repo, logger, c.SaveRetryDelay)

	return &App{
		config: c,
		logger: logger,
		vault:  v,
		repo:   repo,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.repo.Close()
}

func (a *App) status() string {
	cur := a.vault.Current()
	return fmt.Sprintf("%s <%s>", cur.DisplayName, cur.Email)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to FileVault (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
