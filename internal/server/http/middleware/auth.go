package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	pkgAuth "github.com/takaex/takaex/internal/pkg/auth"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"

	authCookieName = "takaex_token"
)

// SessionResolver turns a token into its live session.
type SessionResolver interface {
	Authenticate(ctx context.Context, token string) (*model.Session, error)
}

// AuthRequired ensures the caller holds a live session before the handler runs.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolve(c, resolver)
		if err != nil {
			if authFailure(err) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Set(UserIDContextKey, session.UserID)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present and lets
// anonymous callers through. Navigation needs this: the login gate is part of
// its semantics, not a reason to reject the request.
func OptionalAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolve(c, resolver)
		if err != nil {
			if !authFailure(err) {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Next()
			return
		}

		c.Set(SessionContextKey, session)
		c.Set(UserIDContextKey, session.UserID)
		c.Next()
	}
}

func resolve(c *gin.Context, resolver SessionResolver) (*model.Session, error) {
	token := ExtractToken(c)
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return resolver.Authenticate(c.Request.Context(), token)
}

func authFailure(err error) bool {
	return errors.Is(err, pkgAuth.ErrInvalidToken) ||
		errors.Is(err, domainErrors.ErrNotFound) ||
		errors.Is(err, domainErrors.ErrSessionExpired)
}

// ExtractToken reads the session token from the Authorization header or the
// auth cookie.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie drops the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
