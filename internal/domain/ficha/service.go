package ficha

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Servicer is the record-management contract consumed by the HTTP handlers
// and the CLI.
type Servicer interface {
	Create(ctx context.Context, nombre string, edad int, ciudad string, allowDuplicates bool) (Ficha, error)
	List(ctx context.Context) []Ficha
	SearchByName(ctx context.Context, term string) []Match
	FindByID(ctx context.Context, id string) (int, Ficha, error)
	Update(ctx context.Context, index int, changes Changes) (Ficha, error)
	Delete(ctx context.Context, index int) (Ficha, error)
	RepairIDs(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create validates and appends a new ficha. With allowDuplicates=false a
// case-folded nombre clash is reported as ErrDuplicateName so an interactive
// caller can ask for confirmation; headless callers pass true and duplicates
// are simply allowed.
func (s *Service) Create(ctx context.Context, nombre string, edad int, ciudad string, allowDuplicates bool) (Ficha, error) {
	nombre = strings.TrimSpace(nombre)
	ciudad = strings.TrimSpace(ciudad)
	if err := validate(nombre, edad, ciudad); err != nil {
		s.log.Warn("ficha rejected", slog.Any("error", err))
		return Ficha{}, err
	}

	fichas := s.repo.Load(ctx)
	if !allowDuplicates {
		for _, f := range fichas {
			if strings.EqualFold(f.Nombre, nombre) {
				s.log.Warn("duplicate nombre", slog.String("nombre", nombre))
				return Ficha{}, ErrDuplicateName
			}
		}
	}

	nueva := Ficha{
		ID:            uuid.NewString(),
		Nombre:        nombre,
		Edad:          edad,
		Ciudad:        ciudad,
		FechaCreacion: time.Now(),
	}
	fichas = append(fichas, nueva)
	s.repo.Save(ctx, fichas)

	s.log.Info("ficha created",
		slog.String("nombre", nombre),
		slog.Int("edad", edad),
		slog.String("ciudad", ciudad),
	)
	return nueva, nil
}

// List returns every ficha in insertion order.
func (s *Service) List(ctx context.Context) []Ficha {
	fichas := s.repo.Load(ctx)
	if len(fichas) == 0 {
		s.log.Warn("no fichas registered yet")
	}
	return fichas
}

// SearchByName matches the term as a case-insensitive substring of nombre,
// preserving the original ordering.
func (s *Service) SearchByName(ctx context.Context, term string) []Match {
	term = strings.ToLower(strings.TrimSpace(term))

	var matches []Match
	for i, f := range s.repo.Load(ctx) {
		if strings.Contains(strings.ToLower(f.Nombre), term) {
			matches = append(matches, Match{Index: i, Ficha: f})
		}
	}

	if len(matches) == 0 {
		s.log.Warn("no fichas matched", slog.String("term", term))
	} else {
		s.log.Info("search completed",
			slog.String("term", term),
			slog.Int("matches", len(matches)),
		)
	}
	return matches
}

// FindByID resolves a ficha id to its current index and value.
func (s *Service) FindByID(ctx context.Context, id string) (int, Ficha, error) {
	for i, f := range s.repo.Load(ctx) {
		if f.ID == id {
			return i, f, nil
		}
	}
	return 0, Ficha{}, ErrNotFound
}

// Update applies the non-nil changes to the ficha at index, stamps the
// modification time and persists.
func (s *Service) Update(ctx context.Context, index int, changes Changes) (Ficha, error) {
	fichas := s.repo.Load(ctx)
	if index < 0 || index >= len(fichas) {
		return Ficha{}, ErrNotFound
	}

	f := fichas[index]
	if changes.Nombre != nil {
		f.Nombre = strings.TrimSpace(*changes.Nombre)
	}
	if changes.Edad != nil {
		f.Edad = *changes.Edad
	}
	if changes.Ciudad != nil {
		f.Ciudad = strings.TrimSpace(*changes.Ciudad)
	}
	if err := validate(f.Nombre, f.Edad, f.Ciudad); err != nil {
		s.log.Warn("ficha update rejected", slog.Any("error", err))
		return Ficha{}, err
	}

	now := time.Now()
	f.FechaModificacion = &now
	fichas[index] = f
	s.repo.Save(ctx, fichas)

	s.log.Info("ficha updated", slog.Int("index", index), slog.String("nombre", f.Nombre))
	return f, nil
}

// Delete removes the ficha at index. The boundary (CLI prompt, web confirm
// request) performs the explicit confirmation before calling this.
func (s *Service) Delete(ctx context.Context, index int) (Ficha, error) {
	fichas := s.repo.Load(ctx)
	if index < 0 || index >= len(fichas) {
		return Ficha{}, ErrNotFound
	}

	removed := fichas[index]
	fichas = append(fichas[:index], fichas[index+1:]...)
	s.repo.Save(ctx, fichas)

	s.log.Info("ficha deleted", slog.Int("index", index), slog.String("nombre", removed.Nombre))
	return removed, nil
}

// RepairIDs backfills ids for records written before ids became mandatory.
// Returns how many fichas were repaired.
func (s *Service) RepairIDs(ctx context.Context) (int, error) {
	fichas := s.repo.Load(ctx)

	repaired := 0
	for i := range fichas {
		if fichas[i].ID == "" {
			fichas[i].ID = uuid.NewString()
			repaired++
		}
	}
	if repaired > 0 {
		s.repo.Save(ctx, fichas)
		s.log.Info("ficha ids repaired", slog.Int("count", repaired))
	}
	return repaired, nil
}
