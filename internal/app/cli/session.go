package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"

	"gestorfichas/internal/domain/user"
)

const sessionFile = "session.json"

var (
	ErrNoSession = errors.New("no active session")
	ErrNotAdmin  = errors.New("admin role required")
)

// LocalSession is the session file written next to the data files. It keeps
// the identity between CLI invocations.
type LocalSession struct {
	Usuario string    `json:"usuario"`
	Rol     string    `json:"rol"`
	Token   string    `json:"token"`
	Inicio  time.Time `json:"inicio"`
}

func (a *App) sessionPath() string {
	return filepath.Join(a.dataDir, sessionFile)
}

func (a *App) saveSession(public user.PublicUser, token string) (*LocalSession, error) {
	sess := &LocalSession{
		Usuario: public.Username,
		Rol:     public.Role,
		Token:   token,
		Inicio:  time.Now(),
	}

	data, err := json.MarshalIndent(sess, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(a.sessionPath(), data, 0600); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}

	a.log.Info("session started", slog.String("username", sess.Usuario))
	return sess, nil
}

// CurrentSession returns the persisted session, or nil when none exists.
func (a *App) CurrentSession() (*LocalSession, error) {
	data, err := os.ReadFile(a.sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess LocalSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (a *App) clearSession() error {
	if err := os.Remove(a.sessionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	a.log.Info("session closed")
	return nil
}
