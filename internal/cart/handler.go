package cart

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/menu"
	"storefront/internal/notice"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TokenIssuer signs a cart id into the opaque token clients send back
// in X-Cart-Token.
type TokenIssuer interface {
	IssueCartToken(cartID string) (string, error)
}

type Handler struct {
	carts   *Manager
	catalog *menu.Catalog
	tokens  TokenIssuer
}

func NewHandler(carts *Manager, catalog *menu.Catalog, tokens TokenIssuer) *Handler {
	return &Handler{carts: carts, catalog: catalog, tokens: tokens}
}

// View is the cart as returned to clients.
type View struct {
	Items      []LineItem `json:"items"`
	TotalPrice string     `json:"total_price"`
	TotalItems int        `json:"total_items"`
}

func NewView(items []LineItem) View {
	return View{
		Items:      items,
		TotalPrice: TotalPrice(items).StringFixed(2),
		TotalItems: TotalItems(items),
	}
}

type addItemRequest struct {
	DishID     string `json:"dish_id" binding:"required"`
	Quantity   int    `json:"quantity"`
	SpiceLevel int    `json:"spice_level"`
}

type updateItemRequest struct {
	Quantity   *int `json:"quantity"`
	SpiceLevel *int `json:"spice_level"`
}

// --------------------------------------------------
// POST /cart
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	cartID := NewCartID()

	token, err := h.tokens.IssueCartToken(cartID)
	if err != nil {
		log.Error().Err(err).Msg("issue cart token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cart"})
		return
	}

	engine := h.carts.Engine(c.Request.Context(), cartID)

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"cart":  NewView(engine.Items()),
	})
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	engine := h.engine(c)
	c.JSON(http.StatusOK, gin.H{"cart": NewView(engine.Items())})
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_id is required"})
		return
	}

	if !h.catalog.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": menu.ErrCatalogNotLoaded.Error()})
		return
	}

	dish, ok := h.catalog.Lookup(req.DishID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	engine := h.engine(c)
	n, err := engine.AddItem(c.Request.Context(), dish, req.Quantity, req.SpiceLevel)
	if err != nil {
		writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":   NewView(engine.Items()),
		"notice": n,
	})
}

// --------------------------------------------------
// PATCH /cart/items/:index
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Quantity == nil && req.SpiceLevel == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity or spice_level is required"})
		return
	}

	ctx := c.Request.Context()
	engine := h.engine(c)

	var n *notice.Notice

	// Quantity first: a spice change may merge and shift indexes.
	if req.Quantity != nil {
		n, err = engine.UpdateQuantity(ctx, index, *req.Quantity)
		if err != nil {
			writeCartError(c, err)
			return
		}
	}

	// A quantity of zero or less removed the line, so the spice change has nothing to apply to.
	if req.SpiceLevel != nil && (req.Quantity == nil || *req.Quantity > 0) {
		n, err = engine.UpdateSpiceLevel(ctx, index, *req.SpiceLevel)
		if err != nil {
			writeCartError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":   NewView(engine.Items()),
		"notice": n,
	})
}

// --------------------------------------------------
// DELETE /cart/items/:index
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	engine := h.engine(c)
	n, err := engine.RemoveItem(c.Request.Context(), index)
	if err != nil {
		writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":   NewView(engine.Items()),
		"notice": n,
	})
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	engine := h.engine(c)
	n := engine.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"cart":   NewView(engine.Items()),
		"notice": n,
	})
}

func (h *Handler) engine(c *gin.Context) *Engine {
	return h.carts.Engine(c.Request.Context(), c.GetString("cartID"))
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidSpiceLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
	}
}
