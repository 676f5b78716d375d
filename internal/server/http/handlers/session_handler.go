package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/server/http/dto"
	"github.com/takaex/takaex/internal/usecase"
)

// SessionHandler reports and moves the navigation position. Both endpoints
// accept anonymous callers; the authentication gate is navigation semantics,
// not access control.
type SessionHandler struct {
	facade NavFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade NavFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// State handles GET /api/session.
func (h *SessionHandler) State(c *gin.Context) {
	session := CurrentSession(c)
	state := h.facade.NavState(session)
	c.JSON(http.StatusOK, dto.ToSessionResponse(state, session != nil))
}

// Navigate handles POST /api/session/navigate.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	session := CurrentSession(c)
	var (
		state usecase.NavState
		err   error
	)
	if req.Back {
		state, err = h.facade.NavigateBack(c.Request.Context(), session)
	} else {
		state, err = h.facade.Navigate(c.Request.Context(), session, req.Target)
	}
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidScreen) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state, session != nil))
}
