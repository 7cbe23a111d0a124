package menu

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

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// GET /menu?category=&q=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	category := c.DefaultQuery("category", AllCategories)
	search := c.Query("q")

	dishes, err := h.service.Catalog().Filter(category, search)
	if errors.Is(err, ErrCatalogNotLoaded) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":  err.Error(),
			"notice": notice.Error("Error", "Failed to fetch menu items"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dishes":   dishes,
		"showing":  len(dishes),
		"total":    h.service.Catalog().Size(),
		"category": category,
		"query":    search,
	})
}

// --------------------------------------------------
// GET /menu/categories
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": append([]string{AllCategories}, Categories...),
	})
}

// --------------------------------------------------
// Admin: GET /admin/menu
// --------------------------------------------------
func (h *AdminHandler) List(c *gin.Context) {
	dishes, err := h.service.ListForAdmin(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch menu items")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to fetch menu items",
			"notice": notice.Error("Error", "Failed to fetch menu items"),
		})
		return
	}

	c.JSON(http.StatusOK, dishes)
}

// --------------------------------------------------
// Admin: POST /admin/menu
// --------------------------------------------------
func (h *AdminHandler) Create(c *gin.Context) {
	var in DishInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dish, err := h.service.CreateDish(c.Request.Context(), in)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"dish":   dish,
		"notice": notice.Info("Success", "Menu item created successfully"),
	})
}

// --------------------------------------------------
// Admin: PUT /admin/menu/:id
// --------------------------------------------------
func (h *AdminHandler) Update(c *gin.Context) {
	var in DishInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dish, err := h.service.UpdateDish(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dish":   dish,
		"notice": notice.Info("Success", "Menu item updated successfully"),
	})
}

// --------------------------------------------------
// Admin: DELETE /admin/menu/:id
// --------------------------------------------------
func (h *AdminHandler) Delete(c *gin.Context) {
	err := h.service.DeleteDish(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrDishNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("dish_id", c.Param("id")).Msg("delete menu item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to delete menu item",
			"notice": notice.Error("Error", "Failed to delete menu item"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice": notice.Info("Success", "Menu item deleted successfully"),
	})
}

// --------------------------------------------------
// Admin: POST /admin/menu/:id/image
// --------------------------------------------------
func (h *AdminHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.service.UploadImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
	)
	switch {
	case errors.Is(err, ErrDishNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Error().Err(err).Str("dish_id", c.Param("id")).Msg("upload dish image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": url})
}

// --------------------------------------------------
// Admin: GET /admin/menu/export
// --------------------------------------------------
func (h *AdminHandler) Export(c *gin.Context) {
	dishes, err := h.service.ListForAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=menu.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := WriteWorkbook(c.Writer, dishes); err != nil {
		log.Error().Err(err).Msg("write menu workbook")
	}
}

func (h *AdminHandler) writeSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDish):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDishNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("save menu item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to save menu item",
			"notice": notice.Error("Error", "Failed to save menu item"),
		})
	}
}
