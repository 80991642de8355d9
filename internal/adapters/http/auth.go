package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	api "policymind/internal/api"
	"policymind/internal/domain"
)

type identityKey struct{}

type identityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// WithIdentity stores the caller on ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller set by Authenticate.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok && id.Subject != ""
}

// Authenticate requires a bearer JWT signed with secret (HS256) and carrying
// a subject on every operation the generated router marks with bearerAuth.
// Failures are passed to onError as domain.ErrUnauthenticated.
func Authenticate(secret []byte, onError func(http.ResponseWriter, *http.Request, error)) api.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
				next.ServeHTTP(w, r)
				return
			}
			id, err := ParseToken(bearerToken(r), secret)
			if err != nil {
				onError(w, r, domain.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// ParseToken verifies raw and maps its claims to an identity.
func ParseToken(raw string, secret []byte) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, errors.New("token is required")
	}
	if len(secret) == 0 {
		return domain.Identity{}, errors.New("token verifier is not configured")
	}
	var c identityClaims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Identity{}, err
	}
	if strings.TrimSpace(c.Subject) == "" {
		return domain.Identity{}, errors.New("token subject is required")
	}
	return domain.Identity{Subject: c.Subject, Email: c.Email, Name: c.Name, Picture: c.Picture}, nil
}

// SignToken mints an HS256 token for id. Used by tests and local tooling.
func SignToken(id domain.Identity, secret []byte) (string, error) {
	c := identityClaims{
		Email:            id.Email,
		Name:             id.Name,
		Picture:          id.Picture,
		RegisteredClaims: jwt.RegisteredClaims{Subject: id.Subject},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
