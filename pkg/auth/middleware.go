package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/pkg/utils"
)

type ContextKey string

const AuthStateKey ContextKey = "authState"

// StateFromContext returns the caller's identity. Zero value for requests
// that carried no (valid) token.
func StateFromContext(ctx context.Context) domain.AuthState {
	if state, ok := ctx.Value(AuthStateKey).(domain.AuthState); ok {
		return state
	}
	return domain.AuthState{}
}

// Middleware rejects requests without a valid bearer token.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, ok := stateFromRequest(jwtService, r)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), AuthStateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalMiddleware resolves the caller's identity when a token is present
// and lets anonymous requests pass through untouched. Pledge submission and
// payment accept both kinds of callers.
func OptionalMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if state, ok := stateFromRequest(jwtService, r); ok {
				r = r.WithContext(context.WithValue(r.Context(), AuthStateKey, state))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func stateFromRequest(jwtService JWTServiceInterface, r *http.Request) (domain.AuthState, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return domain.AuthState{}, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return domain.AuthState{}, false
	}

	return domain.AuthState{UserID: claims.UserID, Email: claims.Email}, true
}
