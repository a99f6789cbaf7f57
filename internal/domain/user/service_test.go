package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gestorfichas/internal/crypto"
	"gestorfichas/internal/domain/session"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) []User {
	args := m.Called(ctx)
	return args.Get(0).([]User)
}

func (m *MockRepository) Save(ctx context.Context, users []User) {
	m.Called(ctx, users)
}

func (m *MockRepository) Empty(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func newTestService(repo Repository) *Service {
	table := session.NewTable(12*time.Hour, slog.Default())
	return NewService(repo, table, slog.Default())
}

func makeUser(t *testing.T, username, password, role string) User {
	t.Helper()
	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)
	return User{
		ID:           "id-" + username,
		Username:     username,
		Salt:         fmt.Sprintf("%x", salt),
		PasswordHash: crypto.HashPassword(password, salt),
		Role:         role,
		CreatedAt:    time.Now(),
	}
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]User{})
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(users []User) bool {
		return len(users) == 1 && users[0].Username == "alice" && users[0].PasswordHash != ""
	})).Return()

	public, err := service.Register(context.Background(), "alice", "pw123456", RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "alice", public.Username)
	assert.Equal(t, RoleEditor, public.Role)
	assert.NotEmpty(t, public.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_DuplicateUsernameCaseInsensitive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	existing := makeUser(t, "Alice", "pw123456", RoleEditor)
	mockRepo.On("Load", mock.Anything).Return([]User{existing})

	_, err := service.Register(context.Background(), "alice", "another6", RoleEditor)
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantErr  error
	}{
		{
			name:     "empty username",
			username: "   ",
			password: "pw123456",
			role:     RoleEditor,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "short password",
			username: "bob",
			password: "pw1",
			role:     RoleEditor,
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "unknown role",
			username: "bob",
			password: "pw123456",
			role:     "superuser",
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Register(context.Background(), tt.username, tt.password, tt.role)
			assert.ErrorIs(t, err, tt.wantErr)

			// Rejected before any load or mutation.
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleAdmin)
	mockRepo.On("Load", mock.Anything).Return([]User{u})

	public, token, err := service.Authenticate(context.Background(), "alice", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", public.Username)
	assert.Equal(t, RoleAdmin, public.Role)

	verified, err := service.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, public, verified)
}

func TestService_Authenticate_UniformFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)
	mockRepo.On("Load", mock.Anything).Return([]User{u})

	// Wrong password and unknown user produce the same error.
	_, _, errWrongPass := service.Authenticate(context.Background(), "alice", "wrongpw")
	_, _, errNoUser := service.Authenticate(context.Background(), "nobody", "pw123456")

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestService_VerifyToken_InvalidToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.VerifyToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_VerifyToken_UserRemoved(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)
	mockRepo.On("Load", mock.Anything).Return([]User{u}).Once()

	_, token, err := service.Authenticate(context.Background(), "alice", "pw123456")
	require.NoError(t, err)

	// The user disappears from disk between calls.
	mockRepo.On("Load", mock.Anything).Return([]User{})

	_, err = service.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Logout(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)
	mockRepo.On("Load", mock.Anything).Return([]User{u})

	_, token, err := service.Authenticate(context.Background(), "alice", "pw123456")
	require.NoError(t, err)

	assert.True(t, service.Logout(context.Background(), token))
	assert.False(t, service.Logout(context.Background(), token))

	_, err = service.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ChangeOwnPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)

	var saved []User
	mockRepo.On("Load", mock.Anything).Return([]User{u})
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]User)
	}).Return()

	err := service.ChangeOwnPassword(context.Background(), "alice", "pw123456", "newpw123")
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.NotEqual(t, u.Salt, saved[0].Salt)
	assert.NotEqual(t, u.PasswordHash, saved[0].PasswordHash)
}

func TestService_ChangeOwnPassword_UniformFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)
	mockRepo.On("Load", mock.Anything).Return([]User{u})

	errWrongOld := service.ChangeOwnPassword(context.Background(), "alice", "wrongpw", "newpw123")
	errNoUser := service.ChangeOwnPassword(context.Background(), "nobody", "pw123456", "newpw123")

	assert.ErrorIs(t, errWrongOld, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_AdminSetPassword_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]User{})

	err := service.AdminSetPassword(context.Background(), "nobody", "newpw123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChangeRole(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := makeUser(t, "alice", "pw123456", RoleEditor)

	var saved []User
	mockRepo.On("Load", mock.Anything).Return([]User{u})
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]User)
	}).Return()

	err := service.ChangeRole(context.Background(), "alice", RoleAdmin)
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, RoleAdmin, saved[0].Role)
}

func TestService_ChangeRole_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	err := service.ChangeRole(context.Background(), "alice", "root")
	assert.ErrorIs(t, err, ErrInvalidRole)

	mockRepo.AssertNotCalled(t, "Load", mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	admin := makeUser(t, "root", "secret1", RoleAdmin)
	alice := makeUser(t, "alice", "pw123456", RoleEditor)

	var saved []User
	mockRepo.On("Load", mock.Anything).Return([]User{admin, alice})
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]User)
	}).Return()

	err := service.Delete(context.Background(), "alice", "root")
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, "root", saved[0].Username)
}

func TestService_Delete_SelfForbidden(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	err := service.Delete(context.Background(), "root", "root")
	assert.ErrorIs(t, err, ErrSelfDelete)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]User{})

	err := service.Delete(context.Background(), "ghost", "root")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_BootstrapAdminIfEmpty(t *testing.T) {
	tests := []struct {
		name       string
		empty      bool
		username   string
		password   string
		wantAdmin  bool
		wantErr    error
		expectSave bool
	}{
		{
			name:       "creates admin on empty store",
			empty:      true,
			username:   "root",
			password:   "secret1",
			wantAdmin:  true,
			expectSave: true,
		},
		{
			name:     "no-op on populated store",
			empty:    false,
			username: "root",
			password: "secret1",
		},
		{
			name:     "short password rejected",
			empty:    true,
			username: "root",
			password: "12345",
			wantErr:  ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			mockRepo.On("Empty", mock.Anything).Return(tt.empty)
			if tt.expectSave {
				mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(users []User) bool {
					return len(users) == 1 && users[0].Role == RoleAdmin
				})).Return()
			}

			admin, err := service.BootstrapAdminIfEmpty(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantAdmin {
				require.NotNil(t, admin)
				assert.Equal(t, RoleAdmin, admin.Role)
			} else {
				assert.Nil(t, admin)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
