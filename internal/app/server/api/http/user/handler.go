package user

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gestorfichas/internal/app/server/api/http/middleware/auth"
	"gestorfichas/internal/domain/user"
)

// Handler exposes the account and session operations over HTTP. Login is
// public, the rest runs behind the bearer-token middleware, and the account
// administration routes additionally require the admin role.
type Handler struct {
	service  user.Servicer
	log      *slog.Logger
	publicMW huma.Middlewares
	authMW   huma.Middlewares
	adminMW  huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, publicMW, authMW, adminMW huma.Middlewares) *Handler {
	return &Handler{
		service:  service,
		log:      log,
		publicMW: publicMW,
		authMW:   authMW,
		adminMW:  adminMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.changePasswordOp(), h.changePassword)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.changeRoleOp(), h.changeRole)
	huma.Register(api, h.setPasswordOp(), h.setPassword)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	public, token, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid credentials")
		}
		h.log.Error("login failed", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &loginOutput{
		Body: LoginResponse{
			Token:  token,
			User:   &public,
			Status: "success",
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*statusOutput, error) {
	token := strings.TrimPrefix(input.Authorization, "Bearer ")
	h.service.Logout(ctx, token)

	return &statusOutput{
		Body: StatusResponse{Status: "success"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*meOutput, error) {
	public, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	return &meOutput{
		Body: MeResponse{User: public},
	}, nil
}

func (h *Handler) changePassword(ctx context.Context, input *changePasswordInput) (*statusOutput, error) {
	public, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	err := h.service.ChangeOwnPassword(ctx, public.Username, input.Body.CurrentPassword, input.Body.NewPassword)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{
		Body: StatusResponse{Status: "success"},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *meInput) (*listOutput, error) {
	users := h.service.List(ctx)

	return &listOutput{
		Body: ListResponse{
			Users: users,
			Total: len(users),
		},
	}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	public, err := h.service.Register(ctx, input.Body.Username, input.Body.Password, input.Body.Role)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &registerOutput{
		Body: RegisterResponse{
			User:   &public,
			Status: "success",
		},
	}, nil
}

func (h *Handler) changeRole(ctx context.Context, input *changeRoleInput) (*statusOutput, error) {
	if err := h.service.ChangeRole(ctx, input.Username, input.Body.Role); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{
		Body: StatusResponse{Status: "success"},
	}, nil
}

func (h *Handler) setPassword(ctx context.Context, input *setPasswordInput) (*statusOutput, error) {
	if err := h.service.AdminSetPassword(ctx, input.Username, input.Body.NewPassword); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{
		Body: StatusResponse{Status: "success"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *usernameInput) (*statusOutput, error) {
	public, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	if err := h.service.Delete(ctx, input.Username, public.Username); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{
		Body: StatusResponse{Status: "success"},
	}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return huma.Error401Unauthorized("invalid credentials")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, user.ErrDuplicateUsername):
		return huma.Error409Conflict("username already taken")
	case errors.Is(err, user.ErrSelfDelete):
		return huma.Error409Conflict("cannot delete your own account")
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooShort),
		errors.Is(err, user.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("user operation failed", slog.Any("error", err))
		return huma.Error500InternalServerError("internal error")
	}
}
