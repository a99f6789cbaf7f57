package ficha

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "fichas-list",
		Method:      http.MethodGet,
		Path:        "/api/fichas",
		Summary:     "List all fichas",
		Tags:        []string{"fichas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "fichas-create",
		Method:      http.MethodPost,
		Path:        "/api/fichas",
		Summary:     "Create a ficha",
		Tags:        []string{"fichas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "fichas-search",
		Method:      http.MethodGet,
		Path:        "/api/fichas/search",
		Summary:     "Search fichas by name",
		Tags:        []string{"fichas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "fichas-update",
		Method:      http.MethodPut,
		Path:        "/api/fichas/{id}",
		Summary:     "Update a ficha",
		Tags:        []string{"fichas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "fichas-delete",
		Method:      http.MethodDelete,
		Path:        "/api/fichas/{id}",
		Summary:     "Delete a ficha",
		Tags:        []string{"fichas"},
		Middlewares: h.middleware,
	}
}
