package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/exp/slog"

	"gestorfichas/internal/domain/ficha"
)

// FichaRepository persists the ficha collection in fichas.json, with the
// same degradation rules as UserRepository.
type FichaRepository struct {
	path string
	log  *slog.Logger
}

func NewFichaRepository(storage *Storage, log *slog.Logger) *FichaRepository {
	return &FichaRepository{
		path: storage.fichasPath(),
		log:  log,
	}
}

func (r *FichaRepository) Load(ctx context.Context) []ficha.Ficha {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Error("reading fichas file", slog.Any("error", err))
		}
		return nil
	}

	var fichas []ficha.Ficha
	if err := json.Unmarshal(data, &fichas); err != nil {
		r.log.Error("fichas file corrupt, treating as empty", slog.Any("error", err))
		return nil
	}

	r.log.Debug("fichas loaded", slog.Int("count", len(fichas)))
	return fichas
}

func (r *FichaRepository) Save(ctx context.Context, fichas []ficha.Ficha) {
	data, err := json.MarshalIndent(fichas, "", "    ")
	if err != nil {
		r.log.Error("serializing fichas", slog.Any("error", err))
		return
	}
	if err := os.WriteFile(r.path, data, filePermissions); err != nil {
		r.log.Error("writing fichas file", slog.Any("error", err))
		return
	}
	r.log.Info("fichas saved", slog.Int("count", len(fichas)))
}
