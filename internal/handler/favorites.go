package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/catalog"
	"github.com/craftroots/storefront/internal/state"
)

type toggleFavoriteRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type FavoritesHandler struct {
	favorites *state.Favorites
	catalog   *catalog.Catalog
}

func NewFavoritesHandler(favorites *state.Favorites, c *catalog.Catalog) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, catalog: c}
}

func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, h.favorites.State())
}

func (h *FavoritesHandler) Toggle(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	h.favorites.ToggleFavorite(product)
	c.JSON(http.StatusOK, h.favorites.State())
}

func (h *FavoritesHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	h.favorites.RemoveFavorite(id)
	c.Status(http.StatusNoContent)
}

func (h *FavoritesHandler) Clear(c *gin.Context) {
	h.favorites.ClearFavorites()
	c.Status(http.StatusNoContent)
}
