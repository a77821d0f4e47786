package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/storage"
)

type HealthHandler struct {
	backend storage.Backend
}

func NewHealthHandler(backend storage.Backend) *HealthHandler {
	return &HealthHandler{backend: backend}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz verifies the storage backend can complete a write/read/delete
// round trip.
func (h *HealthHandler) Readyz(c *gin.Context) {
	const probe = "health_probe"
	if err := h.backend.Set(probe, []byte(`"ok"`)); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "storage write failed"})
		return
	}
	if _, ok, err := h.backend.Get(probe); err != nil || !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "storage read failed"})
		return
	}
	if err := h.backend.Delete(probe); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "storage delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
