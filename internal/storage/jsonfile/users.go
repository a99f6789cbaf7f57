package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/exp/slog"

	"gestorfichas/internal/domain/user"
)

// UserRepository persists the user collection in usuarios.json. Storage
// faults never leave this boundary: a missing or corrupt file reads as an
// empty collection and a failed write is logged and dropped.
type UserRepository struct {
	path string
	log  *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		path: storage.usersPath(),
		log:  log,
	}
}

func (r *UserRepository) Load(ctx context.Context) []user.User {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Error("reading users file", slog.Any("error", err))
		}
		return nil
	}

	var users []user.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.Error("users file corrupt, treating as empty", slog.Any("error", err))
		return nil
	}
	return users
}

func (r *UserRepository) Save(ctx context.Context, users []user.User) {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		r.log.Error("serializing users", slog.Any("error", err))
		return
	}
	if err := os.WriteFile(r.path, data, filePermissions); err != nil {
		r.log.Error("writing users file", slog.Any("error", err))
		return
	}
	r.log.Info("users saved", slog.Int("count", len(users)))
}

func (r *UserRepository) Empty(ctx context.Context) bool {
	info, err := os.Stat(r.path)
	if err != nil {
		return true
	}
	return info.Size() == 0
}
