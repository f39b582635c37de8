package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pmorten/scoreboard-system/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

const (
	claimPlayerName = "player_name"
	claimIssuedAt   = "iat"
	claimExpiresAt  = "exp"
)

var ErrNoSession = errors.New("no session in request context")

// SignSession turns a session into a bearer token.
func SignSession(session *models.Session, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		claimPlayerName: session.PlayerName,
		claimIssuedAt:   session.IssuedAt.Unix(),
		claimExpiresAt:  session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Authenticate rebuilds the session from the Authorization header and
// stores it in the request context. There is no other login state.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessionFromRequest(r, secret)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session the Authenticate middleware
// stored, or ErrNoSession on unauthenticated requests.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

func sessionFromRequest(r *http.Request, secret []byte) (*models.Session, error) {
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	playerName, ok := claims[claimPlayerName].(string)
	if !ok || playerName == "" {
		return nil, fmt.Errorf("missing %q claim in token", claimPlayerName)
	}

	session := &models.Session{PlayerName: playerName}
	if iat, ok := claims[claimIssuedAt].(float64); ok {
		session.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims[claimExpiresAt].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return session, nil
}
