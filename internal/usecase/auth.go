package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/auth"
	"github.com/mrodriguezdev/mytineraries-api/internal/config"
	"github.com/mrodriguezdev/mytineraries-api/internal/model"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
	"github.com/mrodriguezdev/mytineraries-api/internal/security"
)

// AuthUsecase defines the interface for registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrEmailInUse = errors.New("email is already in use")

	// ErrInvalidCredentials covers every login failure: unknown email, wrong
	// password, even a signing error. Callers must not distinguish them.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	cfg      *config.Config
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	cfg *config.Config,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		cfg:      cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	// Lookup is case-insensitive, so accounts differing only in case collide.
	_, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err == nil {
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailInUse
		}

		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := auth.Claims{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.TokenTTL)),
			Issuer:    u.cfg.JWTIssuer,
		},
	}

	token, err := u.jwtAuth.GenerateToken(claims, u.cfg.JWTSecret)
	if err != nil {
		// Issuance failure keeps the uniform failure surface.
		return "", ErrInvalidCredentials
	}

	return token, nil
}
