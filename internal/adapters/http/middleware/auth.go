package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/adapters/http/dto"
	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
)

const bearerPrefix = "Bearer "

// accessClaims is the expected JWT payload: the standard registered claims
// plus the role names granted to the subject.
type accessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Auth returns middleware that verifies the Authorization bearer token and
// stores the resolved Principal in the request context. Tokens must be
// HS256-signed with the configured secret; the subject claim carries the
// user id. Identity is never read from the request payload.
//
// Requests without a valid token receive an RFC 9457 401 response.
func Auth(secret []byte, issuer string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := principalFromHeader(r.Header.Get("Authorization"), secret, parserOpts)
			if err != nil {
				logger.InfoContext(r.Context(), "rejected request credentials",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, fmt.Errorf("invalid or missing credentials: %w", domain.ErrUnauthenticated))
				return
			}

			ctx := auth.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalFromHeader verifies the bearer token and builds the Principal.
func principalFromHeader(header string, secret []byte, opts []jwt.ParserOption) (auth.Principal, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return auth.Principal{}, fmt.Errorf("missing bearer token")
	}
	raw := strings.TrimPrefix(header, bearerPrefix)

	var claims accessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("parsing token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("parsing subject claim: %w", err)
	}

	return auth.Principal{ID: userID, Roles: claims.Roles}, nil
}
