package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated session from context, nil when
// the caller is anonymous.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	session, _ := val.(*model.Session)
	return session
}

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
