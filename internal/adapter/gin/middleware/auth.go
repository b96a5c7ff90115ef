package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "auth-service/pkg/errors"
)

// TokenVerifier checks a bearer token's signature and returns the embedded
// user identifier.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// RequireAuth gates protected routes behind a bearer token.
// A missing header or token segment is rejected with 401; a present but
// unverifiable token with 400. Verification is a signature check only;
// issued tokens carry no expiry, so staleness is never a rejection reason.
// The middleware mutates nothing and touches no store; handlers that need
// the caller's identity must derive it themselves.
func RequireAuth(tokens TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := bearerToken(header)
		if token == "" {
			log.Warn("missing bearer token", zap.String("path", c.Request.URL.Path))
			denied := apperrors.NewAccessDeniedError("access denied")
			c.AbortWithStatusJSON(denied.HTTPStatus(), gin.H{
				"error":   "access_denied",
				"message": denied.Message,
			})
			return
		}

		if _, err := tokens.Verify(token); err != nil {
			log.Warn("token verification failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			invalid := apperrors.NewInvalidTokenError("invalid token", err)
			c.AbortWithStatusJSON(invalid.HTTPStatus(), gin.H{
				"error":   "invalid_token",
				"message": invalid.Message,
			})
			return
		}

		c.Next()
	}
}

// bearerToken extracts the token segment from an "Authorization: Bearer x"
// header. It returns "" when the header or the segment is absent.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
