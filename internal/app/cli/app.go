// Package cli wires the domain services for the command-line client, which
// talks to the core directly instead of going through the HTTP API.
package cli

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"gestorfichas/internal/config"
	"gestorfichas/internal/domain/ficha"
	"gestorfichas/internal/domain/session"
	"gestorfichas/internal/domain/user"
	"gestorfichas/internal/storage/jsonfile"
)

type App struct {
	Users  user.Servicer
	Fichas ficha.Servicer

	dataDir string
	log     *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	storage, err := jsonfile.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	sessions := session.NewTable(cfg.Session.TTL, log)
	userRepo := jsonfile.NewUserRepository(storage, log)
	fichaRepo := jsonfile.NewFichaRepository(storage, log)

	return &App{
		Users:   user.NewService(userRepo, sessions, log),
		Fichas:  ficha.NewService(fichaRepo, log),
		dataDir: cfg.Storage.DataDir,
		log:     log,
	}, nil
}

// Login authenticates and persists the local session file.
func (a *App) Login(ctx context.Context, username, password string) (*LocalSession, error) {
	public, token, err := a.Users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return a.saveSession(public, token)
}

// Logout removes the local session file and reports the username it held.
func (a *App) Logout(ctx context.Context) (string, error) {
	sess, err := a.CurrentSession()
	if err != nil {
		return "", err
	}
	if sess == nil {
		a.log.Warn("logout without an active session")
		return "", ErrNoSession
	}

	a.Users.Logout(ctx, sess.Token)
	if err := a.clearSession(); err != nil {
		return "", err
	}
	return sess.Usuario, nil
}

// RequireAdmin resolves the local session and rejects non-admin callers.
func (a *App) RequireAdmin() (*LocalSession, error) {
	sess, err := a.CurrentSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}
	if sess.Rol != user.RoleAdmin {
		return nil, ErrNotAdmin
	}
	return sess, nil
}

// RequireSession resolves the local session for commands any role may run.
func (a *App) RequireSession() (*LocalSession, error) {
	sess, err := a.CurrentSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}
