package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/server/http/dto"
	"github.com/takaex/takaex/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), CurrentUserID(c), usecase.SubmitOrderInput{
		Direction:     req.Type,
		Service:       req.Service,
		Amount:        req.AmountUSD,
		PaymentMethod: req.PaymentMethod,
		Screenshot:    req.Screenshot,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDirection),
			errors.Is(err, domainErrors.ErrInvalidProvider),
			errors.Is(err, domainErrors.ErrInvalidPayment),
			errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// List handles GET /api/orders?status=Pending.
func (h *OrderHandler) List(c *gin.Context) {
	orders, total, err := h.facade.Orders(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidStatusFilter) {
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}
