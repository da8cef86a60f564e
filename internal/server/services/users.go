package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/andrejsm/taskkeeper/internal/cryptox"
	"github.com/andrejsm/taskkeeper/internal/dbx"
	"github.com/andrejsm/taskkeeper/internal/server/auth"
	"github.com/andrejsm/taskkeeper/internal/server/config"
	"github.com/andrejsm/taskkeeper/internal/server/models"
	"github.com/andrejsm/taskkeeper/internal/server/repositories/repomanager"
)

// AuthResult is what a successful credential flow hands back: a signed
// token and the account it identifies.
type AuthResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the input, hashes the password and creates the
// account, then issues a token for it. Validation happens before any
// store access; the duplicate-email check covers soft-deleted rows too.
func (s *UserService) Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResult, error) {

	if name == "" || email == "" || password == "" {
		return nil, common.ErrorFieldsRequired
	}

	if password != confirmPassword {
		return nil, common.ErrorPasswordMismatch
	}

	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrorEmailInUse
		}

		user, err = repo.Create(ctx, &models.User{
			Name:     name,
			Email:    email,
			Password: hash,
		})
		if err != nil {
			// a concurrent register can slip between the check and the
			// insert; the unique constraint catches it
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorEmailInUse
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates email+password and issues a token. A missing
// account and a wrong password produce the same error so callers cannot
// enumerate registered emails.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrorEmailPasswordRequired
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword([]byte(password), user.Password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// FindActive resolves a token subject to a live account. The auth gate
// calls this on every request so that a token issued before a user was
// soft-deleted stops working immediately.
func (s *UserService) FindActive(ctx context.Context, id string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	return auth.GenerateToken(
		auth.Identity{ID: user.ID, Email: user.Email},
		s.jwtSecret,
		s.tokenValidityDuration,
	)
}
