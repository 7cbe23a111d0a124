package order

import (
	"errors"
	"net/http"

	"storefront/internal/notice"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /admin/orders?status=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context(), c.DefaultQuery("status", "all"))
	if errors.Is(err, ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("fetch orders")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to fetch orders",
			"notice": notice.Error("Error", "Failed to fetch orders"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------------------------------------------------
// PATCH /admin/orders/:id/status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	st, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Error().Err(err).Str("order_id", c.Param("id")).Msg("update order status")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to update order status",
			"notice": notice.Error("Error", "Failed to update order status"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     c.Param("id"),
		"status": st,
		"notice": notice.Info("Success", "Order status updated successfully"),
	})
}
