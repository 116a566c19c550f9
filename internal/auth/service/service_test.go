package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/declanmoran/omahonys-pub/internal/auth/model"
	"github.com/declanmoran/omahonys-pub/internal/config"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*model.Operator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operator), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, op *model.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTL:     12 * time.Hour,
		BcryptCost:   bcrypt.MinCost,
		SeedEmail:    "admin@omahonys.ie",
		SeedPassword: "changeme",
	}
}

func newTestService(repo *mockRepository, cfg config.AuthConfig, now time.Time) Service {
	return &service{
		repo:   repo,
		cfg:    cfg,
		logger: zap.NewNop().Sugar(),
		now:    func() time.Time { return now },
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, "admin@omahonys.ie").Return(&model.Operator{
			ID:           1,
			Email:        "admin@omahonys.ie",
			PasswordHash: hashPassword(t, "correct horse"),
		}, nil)
		svc := newTestService(repo, cfg, now)

		session, err := svc.Login(ctx, &model.LoginRequest{
			Email:    "admin@omahonys.ie",
			Password: "correct horse",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, now.Add(cfg.TokenTTL), session.ExpiresAt)

		operatorID, err := VerifyToken(cfg.JWTSecret, session.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), operatorID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, "admin@omahonys.ie").Return(&model.Operator{
			ID:           1,
			Email:        "admin@omahonys.ie",
			PasswordHash: hashPassword(t, "correct horse"),
		}, nil)
		svc := newTestService(repo, cfg, now)

		_, err := svc.Login(ctx, &model.LoginRequest{
			Email:    "admin@omahonys.ie",
			Password: "battery staple",
		})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, "nobody@omahonys.ie").Return(nil, model.ErrInvalidCredentials)
		svc := newTestService(repo, cfg, now)

		_, err := svc.Login(ctx, &model.LoginRequest{
			Email:    "nobody@omahonys.ie",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestService_Seed(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("creates the first operator when the table is empty", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(op *model.Operator) bool {
			return op.Email == "admin@omahonys.ie" &&
				bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte("changeme")) == nil
		})).Return(nil)
		svc := newTestService(repo, testConfig(), now)

		require.NoError(t, svc.Seed(ctx))
		repo.AssertExpectations(t)
	})

	t.Run("no-op when operators already exist", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Count", ctx).Return(int64(2), nil)
		svc := newTestService(repo, testConfig(), now)

		require.NoError(t, svc.Seed(ctx))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("no-op when no seed account is configured", func(t *testing.T) {
		repo := new(mockRepository)
		cfg := testConfig()
		cfg.SeedEmail = ""
		svc := newTestService(repo, cfg, now)

		require.NoError(t, svc.Seed(ctx))
		repo.AssertNotCalled(t, "Count")
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	issue := func(t *testing.T, svc Service) string {
		t.Helper()
		session, err := svc.Login(ctx, &model.LoginRequest{
			Email:    "admin@omahonys.ie",
			Password: "correct horse",
		})
		require.NoError(t, err)
		return session.Token
	}

	operator := &model.Operator{
		ID:           7,
		Email:        "admin@omahonys.ie",
		PasswordHash: hashPassword(t, "correct horse"),
	}

	t.Run("round trip", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, mock.Anything).Return(operator, nil)
		token := issue(t, newTestService(repo, cfg, now))

		operatorID, err := VerifyToken(cfg.JWTSecret, token)

		require.NoError(t, err)
		assert.Equal(t, int64(7), operatorID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, mock.Anything).Return(operator, nil)
		token := issue(t, newTestService(repo, cfg, now))

		_, err := VerifyToken("other-secret", token)

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("expired token", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByEmail", ctx, mock.Anything).Return(operator, nil)
		past := time.Now().Add(-24 * time.Hour)
		token := issue(t, newTestService(repo, cfg, past))

		_, err := VerifyToken(cfg.JWTSecret, token)

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyToken(cfg.JWTSecret, "not.a.jwt")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}
