package checkout

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/notice"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /cart/checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	var customer Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), c.GetString("cartID"), customer)
	switch {
	case errors.Is(err, ErrInvalidCustomer):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"notice": notice.Error("Invalid details", err.Error()),
		})
		return
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"notice": notice.Error("Cart is empty", "Please add some items to cart before checkout"),
		})
		return
	case errors.Is(err, ErrCheckoutInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  ErrOrderFailed.Error(),
			"notice": notice.Error("Order Failed", "There was an error placing your order. Please try again."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout": res,
		"cart":     cart.NewView(res.Remaining),
	})
}
