package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/response"
)

// jwtClaimsContextKey is used as a key for storing JWT claims in the invocation context.
type jwtClaimsContextKey struct{}

// ErrMissingToken is returned when no bearer token is present on the request.
var ErrMissingToken = errors.New("missing bearer token")

// JWTConfig configures the JWT authentication middleware.
type JWTConfig struct {
	// Skip defines a function to skip middleware execution for specific invocations
	Skip func(ctx handler.Context) bool
	// SigningKey verifies token signatures (HMAC)
	SigningKey []byte
	// TokenExtractor defines how to extract the token from the request
	// (default: from the Authorization header)
	TokenExtractor func(ctx handler.Context) string
	// ErrorHandler maps an authentication failure to a handler outcome
	// (default: a 401 response)
	ErrorHandler func(ctx handler.Context, err error) (any, error)
}

// JWT creates a JWT authentication middleware with an HMAC signing key.
// Invocations without a valid bearer token short-circuit with a 401
// response; parsed claims are stored in the invocation context.
func JWT[C handler.Context](signingKey []byte) handler.Middleware[C] {
	return JWTWithConfig[C](JWTConfig{SigningKey: signingKey})
}

// JWTWithConfig creates a JWT authentication middleware with custom configuration.
// Panics if no signing key is provided.
func JWTWithConfig[C handler.Context](cfg JWTConfig) handler.Middleware[C] {
	if len(cfg.SigningKey) == 0 {
		panic("middleware: JWT signing key is required")
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = func(ctx handler.Context) string {
			auth := ctx.Request().Header("Authorization")
			if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
				return token
			}
			return ""
		}
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context, err error) (any, error) {
			return response.Respond("unauthorized",
				response.WithStatus(http.StatusUnauthorized)), nil
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			raw := cfg.TokenExtractor(ctx)
			if raw == "" {
				return cfg.ErrorHandler(ctx, ErrMissingToken)
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return cfg.SigningKey, nil
			})
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(jwtClaimsContextKey{}, claims)
			return next(ctx)
		}
	}
}

// GetClaims retrieves the parsed JWT claims from the invocation context.
// Returns the claims and a boolean indicating whether they were found.
func GetClaims(ctx handler.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(jwtClaimsContextKey{}).(jwt.MapClaims)
	return claims, ok
}
