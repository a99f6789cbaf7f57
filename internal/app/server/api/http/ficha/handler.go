package ficha

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gestorfichas/internal/domain/ficha"
)

// Handler exposes the ficha CRUD operations over HTTP. Every route runs
// behind the bearer-token middleware; any authenticated role may use them.
type Handler struct {
	service    ficha.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service ficha.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	fichas := h.service.List(ctx)
	if fichas == nil {
		fichas = []ficha.Ficha{}
	}

	return &listOutput{
		Body: ListResponse{
			Fichas: fichas,
			Total:  len(fichas),
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	// Non-interactive callers cannot confirm a duplicate, so it is allowed.
	created, err := h.service.Create(ctx, input.Body.Nombre, input.Body.Edad, input.Body.Ciudad, true)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{
		Body: CreateResponse{
			Ficha:  created,
			Status: "success",
		},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	matches := h.service.SearchByName(ctx, input.Term)

	fichas := make([]ficha.Ficha, 0, len(matches))
	for _, m := range matches {
		fichas = append(fichas, m.Ficha)
	}

	return &searchOutput{
		Body: SearchResponse{
			Fichas: fichas,
			Total:  len(fichas),
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	index, _, err := h.service.FindByID(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	updated, err := h.service.Update(ctx, index, ficha.Changes{
		Nombre: input.Body.Nombre,
		Edad:   input.Body.Edad,
		Ciudad: input.Body.Ciudad,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &updateOutput{
		Body: UpdateResponse{
			Ficha:  updated,
			Status: "success",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	index, _, err := h.service.FindByID(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	removed, err := h.service.Delete(ctx, index)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{
		Body: DeleteResponse{
			Ficha:  removed,
			Status: "success",
		},
	}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, ficha.ErrNotFound):
		return huma.Error404NotFound("ficha not found")
	case errors.Is(err, ficha.ErrInvalid):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("ficha operation failed", slog.Any("error", err))
		return huma.Error500InternalServerError("internal error")
	}
}
