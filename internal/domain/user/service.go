package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gestorfichas/internal/crypto"
	"gestorfichas/internal/domain/session"
)

// Servicer is the authentication service contract consumed by the HTTP
// handlers and the CLI.
type Servicer interface {
	Register(ctx context.Context, username, password, role string) (PublicUser, error)
	Authenticate(ctx context.Context, username, password string) (PublicUser, string, error)
	VerifyToken(ctx context.Context, token string) (PublicUser, error)
	Logout(ctx context.Context, token string) bool
	ChangeOwnPassword(ctx context.Context, username, oldPassword, newPassword string) error
	AdminSetPassword(ctx context.Context, username, newPassword string) error
	ChangeRole(ctx context.Context, username, role string) error
	Delete(ctx context.Context, username, requestedBy string) error
	List(ctx context.Context) []PublicUser
	BootstrapAdminIfEmpty(ctx context.Context, username, password string) (*PublicUser, error)
}

// Service composes the password hashing, the file-backed user repository and
// the in-memory session table.
type Service struct {
	repo     Repository
	sessions *session.Table
	log      *slog.Logger
}

func NewService(repo Repository, sessions *session.Table, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		log:      log,
	}
}

// Register creates a new account. The username must not collide with an
// existing one under case folding.
func (s *Service) Register(ctx context.Context, username, password, role string) (PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return PublicUser{}, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}
	if !ValidRole(role) {
		return PublicUser{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if len(password) < MinPasswordLen {
		return PublicUser{}, fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, MinPasswordLen)
	}

	users := s.repo.Load(ctx)
	if FindByUsername(users, username) != nil {
		s.log.Warn("registration rejected, username taken", slog.String("username", username))
		return PublicUser{}, ErrDuplicateUsername
	}

	u, err := s.newUser(username, password, role)
	if err != nil {
		return PublicUser{}, err
	}

	users = append(users, u)
	s.repo.Save(ctx, users)

	s.log.Info("user registered",
		slog.String("username", username),
		slog.String("role", role),
	)
	return u.Public(), nil
}

// Authenticate checks credentials and issues a session token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (PublicUser, string, error) {
	users := s.repo.Load(ctx)
	u := FindByUsername(users, username)
	if u == nil {
		return PublicUser{}, "", ErrInvalidCredentials
	}

	if !s.verify(*u, password) {
		s.log.Warn("failed login attempt", slog.String("username", username))
		return PublicUser{}, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(u.ID)
	if err != nil {
		return PublicUser{}, "", fmt.Errorf("create session: %w", err)
	}

	s.log.Info("user authenticated", slog.String("username", u.Username))
	return u.Public(), token, nil
}

// VerifyToken resolves a session token to the public view of its user. The
// user is always re-loaded from disk, never cached.
func (s *Service) VerifyToken(ctx context.Context, token string) (PublicUser, error) {
	userID, ok := s.sessions.Lookup(token)
	if !ok {
		return PublicUser{}, ErrInvalidCredentials
	}

	u := findByID(s.repo.Load(ctx), userID)
	if u == nil {
		return PublicUser{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}

// Logout invalidates the session token and reports whether one existed.
func (s *Service) Logout(ctx context.Context, token string) bool {
	ok := s.sessions.Invalidate(token)
	if ok {
		s.log.Info("session closed")
	} else {
		s.log.Warn("logout without an active session")
	}
	return ok
}

// ChangeOwnPassword re-salts and re-hashes after verifying the old password.
// Absent user and wrong password fail the same way.
func (s *Service) ChangeOwnPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, MinPasswordLen)
	}

	users := s.repo.Load(ctx)
	u := FindByUsername(users, username)
	if u == nil || !s.verify(*u, oldPassword) {
		return ErrInvalidCredentials
	}

	if err := s.resetPassword(u, newPassword); err != nil {
		return err
	}
	s.repo.Save(ctx, users)

	s.log.Info("password changed", slog.String("username", u.Username))
	return nil
}

// AdminSetPassword overwrites a user's password. The caller must have
// already established the admin role via VerifyToken.
func (s *Service) AdminSetPassword(ctx context.Context, username, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, MinPasswordLen)
	}

	users := s.repo.Load(ctx)
	u := FindByUsername(users, username)
	if u == nil {
		return ErrNotFound
	}

	if err := s.resetPassword(u, newPassword); err != nil {
		return err
	}
	s.repo.Save(ctx, users)

	s.log.Info("password reset by admin", slog.String("username", u.Username))
	return nil
}

// ChangeRole switches a user between the recognized roles.
func (s *Service) ChangeRole(ctx context.Context, username, role string) error {
	if !ValidRole(role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	users := s.repo.Load(ctx)
	u := FindByUsername(users, username)
	if u == nil {
		return ErrNotFound
	}

	u.Role = role
	s.repo.Save(ctx, users)

	s.log.Info("role changed",
		slog.String("username", u.Username),
		slog.String("role", role),
	)
	return nil
}

// Delete removes a user. Self-deletion is forbidden.
func (s *Service) Delete(ctx context.Context, username, requestedBy string) error {
	if strings.EqualFold(strings.TrimSpace(username), strings.TrimSpace(requestedBy)) {
		return ErrSelfDelete
	}

	users := s.repo.Load(ctx)
	for i := range users {
		if strings.EqualFold(users[i].Username, strings.TrimSpace(username)) {
			deleted := users[i].Username
			users = append(users[:i], users[i+1:]...)
			s.repo.Save(ctx, users)
			s.log.Info("user deleted",
				slog.String("username", deleted),
				slog.String("requested_by", requestedBy),
			)
			return nil
		}
	}
	return ErrNotFound
}

// List returns public views of every account, in insertion order.
func (s *Service) List(ctx context.Context) []PublicUser {
	users := s.repo.Load(ctx)
	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}

// BootstrapAdminIfEmpty creates the one-time initial administrator when no
// users exist yet. With a non-empty store it does nothing and returns nil.
func (s *Service) BootstrapAdminIfEmpty(ctx context.Context, username, password string) (*PublicUser, error) {
	if !s.repo.Empty(ctx) {
		return nil, nil
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, MinPasswordLen)
	}

	admin, err := s.newUser(username, password, RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.repo.Save(ctx, []User{admin})

	s.log.Info("initial admin created", slog.String("username", username))
	public := admin.Public()
	return &public, nil
}

func (s *Service) newUser(username, password, role string) (User, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           uuid.NewString(),
		Username:     username,
		Salt:         fmt.Sprintf("%x", salt),
		PasswordHash: crypto.HashPassword(password, salt),
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *Service) resetPassword(u *User, newPassword string) error {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	u.Salt = fmt.Sprintf("%x", salt)
	u.PasswordHash = crypto.HashPassword(newPassword, salt)
	return nil
}

func (s *Service) verify(u User, password string) bool {
	salt, err := u.saltBytes()
	if err != nil {
		s.log.Error("corrupt salt for user",
			slog.String("username", u.Username),
			slog.Any("error", err),
		)
		return false
	}
	return crypto.VerifyPassword(password, salt, u.PasswordHash)
}
