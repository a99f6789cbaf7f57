package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Authenticate and obtain a session token",
		Tags:        []string{"users"},
		Middlewares: h.publicMW,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-logout",
		Method:      http.MethodPost,
		Path:        "/user/logout",
		Summary:     "Invalidate the current session",
		Tags:        []string{"users"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-me",
		Method:      http.MethodGet,
		Path:        "/user/me",
		Summary:     "Current user",
		Tags:        []string{"users"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) changePasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-change-password",
		Method:      http.MethodPut,
		Path:        "/user/password",
		Summary:     "Change own password",
		Tags:        []string{"users"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List user accounts",
		Tags:        []string{"admin"},
		Middlewares: h.adminMW,
	}
}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-register",
		Method:      http.MethodPost,
		Path:        "/users",
		Summary:     "Create a user account",
		Tags:        []string{"admin"},
		Middlewares: h.adminMW,
	}
}

func (h *Handler) changeRoleOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-change-role",
		Method:      http.MethodPut,
		Path:        "/users/{username}/role",
		Summary:     "Change a user's role",
		Tags:        []string{"admin"},
		Middlewares: h.adminMW,
	}
}

func (h *Handler) setPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-set-password",
		Method:      http.MethodPut,
		Path:        "/users/{username}/password",
		Summary:     "Set a user's password",
		Tags:        []string{"admin"},
		Middlewares: h.adminMW,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/users/{username}",
		Summary:     "Delete a user account",
		Tags:        []string{"admin"},
		Middlewares: h.adminMW,
	}
}
