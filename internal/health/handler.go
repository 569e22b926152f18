package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Check - GET /api/health
// Probes the store with a trivial query; the failure text is the only
// place an underlying driver error reaches a response body.
func (h *Handler) Check(c *gin.Context) {
	var one int
	if err := h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
