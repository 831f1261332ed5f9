// Package middleware holds the HTTP middleware: the bearer-token gate and
// request logging.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/auth"
	"github.com/mrodriguezdev/mytineraries-api/internal/httputil"
	"github.com/mrodriguezdev/mytineraries-api/internal/model"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
)

type contextKey struct{}

var userContextKey = contextKey{}

// Authenticate gates protected routes. It extracts the bearer token from the
// Authorization header, validates it, resolves the claims to a stored user
// and attaches the user to the request context. Every verification failure
// fails closed with the same 401, including a token whose user no longer
// exists.
func Authenticate(
	jwtAuth auth.JWTAuthenticator,
	secret string,
	userRepo repository.UserRepository,
	logger *zerolog.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtAuth.ValidateToken(tokenString, secret)
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := userRepo.GetUser(r.Context(), claims.UserID)
			if err != nil {
				if !errors.Is(err, mongo.ErrNoDocuments) {
					logger.Error().Err(err).Msg("failed to resolve token user")
				}
				httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user attached by Authenticate.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
