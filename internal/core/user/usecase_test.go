package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weathertracker.app/internal/mocks"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

type testDeps struct {
	repo   *mocks.UserRepository
	hasher *mocks.PasswordHasher
	tokens *mocks.TokenService
}

func newTestUseCase(t *testing.T) (*UseCase, testDeps) {
	d := testDeps{
		repo:   mocks.NewUserRepository(t),
		hasher: mocks.NewPasswordHasher(t),
		tokens: mocks.NewTokenService(t),
	}
	uc, err := NewUseCase(UseCaseDependencies{
		Repository: d.repo,
		Hasher:     d.hasher,
		Tokens:     d.tokens,
		Logger:     mocks.NewQuietLogger(t),
	})
	require.NoError(t, err)
	return uc, d
}

func TestRegisterParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  RegisterParams
		wantErr string
	}{
		{"Valid", RegisterParams{"alice", "secret1", "secret1"}, ""},
		{"CyrillicLogin", RegisterParams{"алиса", "secret1", "secret1"}, "only latin letters and digits"},
		{"SymbolInPassword", RegisterParams{"alice", "secret!", "secret!"}, "only latin letters and digits"},
		{"EmptyRepeat", RegisterParams{"alice", "secret1", ""}, "only latin letters and digits"},
		{"Mismatch", RegisterParams{"alice", "secret1", "secret2"}, "Passwords must match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUseCase_Register_Success(t *testing.T) {
	uc, d := newTestUseCase(t)

	d.repo.EXPECT().FindByLogin(mock.Anything, "alice").Return(nil, errors.NewNotFoundError("user not found")).Once()
	d.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	d.repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u *ports.UserData) bool {
		return u.Login == "alice" && u.PasswordHash == "hashed"
	})).RunAndReturn(func(_ context.Context, u *ports.UserData) error {
		u.ID = 7
		return nil
	}).Once()

	u, err := uc.Register(context.Background(), RegisterParams{"alice", "secret1", "secret1"})

	require.NoError(t, err)
	assert.Equal(t, &User{ID: 7, Login: "alice"}, u)
}

func TestUseCase_Register_LoginTaken(t *testing.T) {
	uc, d := newTestUseCase(t)

	d.repo.EXPECT().FindByLogin(mock.Anything, "alice").Return(&ports.UserData{ID: 1, Login: "alice"}, nil).Once()

	_, err := uc.Register(context.Background(), RegisterParams{"alice", "secret1", "secret1"})

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExistsError(err))
	assert.Contains(t, err.Error(), "User with this login already exists")
}

func TestUseCase_Register_ValidationStopsEarly(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Register(context.Background(), RegisterParams{"alice", "a", "b"})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().FindByLogin(mock.Anything, "alice").Return(&ports.UserData{ID: 3, Login: "alice", PasswordHash: "h"}, nil).Once()
		d.hasher.EXPECT().Compare("h", "secret1").Return(nil).Once()
		d.tokens.EXPECT().Issue(uint(3), "alice").Return("signed.token", nil).Once()

		token, err := uc.Login(context.Background(), LoginParams{"alice", "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "signed.token", token)
	})

	t.Run("UnknownLogin", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().FindByLogin(mock.Anything, "bob").Return(nil, errors.NewNotFoundError("user not found")).Once()

		_, err := uc.Login(context.Background(), LoginParams{"bob", "x"})

		assert.Equal(t, errors.InvalidCredentialsError, errors.TypeOf(err))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().FindByLogin(mock.Anything, "alice").Return(&ports.UserData{ID: 3, Login: "alice", PasswordHash: "h"}, nil).Once()
		d.hasher.EXPECT().Compare("h", "wrong").Return(fmt.Errorf("mismatch")).Once()

		_, err := uc.Login(context.Background(), LoginParams{"alice", "wrong"})

		require.Error(t, err)
		assert.Equal(t, "Incorrect username or password", err.(*errors.AppError).Message)
	})
}

func TestUseCase_CurrentUser(t *testing.T) {
	t.Run("EmptyToken", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.CurrentUser(context.Background(), "")

		assert.Equal(t, errors.AuthRequiredError, errors.TypeOf(err))
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.tokens.EXPECT().Verify("old").Return(nil, errors.NewTokenExpiredError("token has expired")).Once()

		_, err := uc.CurrentUser(context.Background(), "old")

		assert.Equal(t, errors.TokenExpiredError, errors.TypeOf(err))
	})

	t.Run("UntypedVerifyErrorBecomesInvalidToken", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.tokens.EXPECT().Verify("junk").Return(nil, fmt.Errorf("malformed")).Once()

		_, err := uc.CurrentUser(context.Background(), "junk")

		assert.Equal(t, errors.InvalidTokenError, errors.TypeOf(err))
	})

	t.Run("DeletedUser", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.tokens.EXPECT().Verify("t").Return(&ports.TokenClaims{UserID: 9, Login: "gone", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		d.repo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, errors.NewNotFoundError("user not found")).Once()

		_, err := uc.CurrentUser(context.Background(), "t")

		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("Success", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.tokens.EXPECT().Verify("t").Return(&ports.TokenClaims{UserID: 2, Login: "alice"}, nil).Once()
		d.repo.EXPECT().FindByID(mock.Anything, uint(2)).Return(&ports.UserData{ID: 2, Login: "alice"}, nil).Once()

		u, err := uc.CurrentUser(context.Background(), "t")

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Login)
	})
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{
		Hasher: mocks.NewPasswordHasher(t),
		Tokens: mocks.NewTokenService(t),
		Logger: mocks.NewLogger(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user repository is required")
}
