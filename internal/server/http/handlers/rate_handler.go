package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/server/http/dto"
)

// RateHandler serves current rates and conversion previews.
type RateHandler struct {
	facade RateFacade
}

// NewRateHandler constructs RateHandler.
func NewRateHandler(facade RateFacade) *RateHandler {
	return &RateHandler{facade: facade}
}

// Rates handles GET /api/rates.
func (h *RateHandler) Rates(c *gin.Context) {
	pair, err := h.facade.Rates(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(pair))
}

// Quote handles GET /api/rates/quote?type=Buy&amount=100.
func (h *RateHandler) Quote(c *gin.Context) {
	quote, err := h.facade.PreviewQuote(c.Request.Context(), c.Query("type"), c.Query("amount"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidDirection) {
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
