// Package service provides operator sign-in and session token issuing.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/declanmoran/omahonys-pub/internal/auth/model"
	"github.com/declanmoran/omahonys-pub/internal/auth/repository"
	"github.com/declanmoran/omahonys-pub/internal/config"
)

// Service defines operator authentication operations. Sessions are stateless
// JWTs; the middleware validating them is the only reader.
type Service interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error)

	// Seed provisions the configured first operator account when the
	// operators table is empty. A no-op otherwise.
	Seed(ctx context.Context) error
}

type service struct {
	repo   repository.Repository
	cfg    config.AuthConfig
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new auth service instance.
func New(repo repository.Repository, cfg config.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both surface as ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error) {
	op, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	exp := s.now().Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"sub":   op.ID,
		"email": op.Email,
		"exp":   exp.Unix(),
		"iat":   s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &model.Session{Token: signed, ExpiresAt: exp}, nil
}

// Seed provisions the configured first operator account when the operators
// table is empty.
func (s *service) Seed(ctx context.Context) error {
	if s.cfg.SeedEmail == "" {
		return nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count operators: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.SeedPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	op := &model.Operator{
		Email:        s.cfg.SeedEmail,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, op); err != nil {
		return fmt.Errorf("create seed operator: %w", err)
	}

	s.logger.Infow("seeded first operator account", "email", op.Email)
	return nil
}

// VerifyToken parses and validates a session token, returning the operator
// id. Used by the auth middleware.
func VerifyToken(secret, raw string) (int64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, model.ErrInvalidCredentials
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, model.ErrInvalidCredentials
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, model.ErrInvalidCredentials
	}
	return int64(sub), nil
}
