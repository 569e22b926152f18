package upload

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gtnglobal/gtn-backend/config"
)

// PublicPrefix is the URL prefix the upload directory is served under.
const PublicPrefix = "/uploads"

type Handler struct {
	dir     string
	baseURL string
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{dir: cfg.UploadDir, baseURL: cfg.UploadBaseURL}
}

// ============================
// 📤 Upload - POST /api/upload
// Accepts a single image file, stores it under a derived safe name and
// returns its public URL. The whole payload is buffered in memory; the
// admin panel only ever sends small images.
func (h *Handler) Save(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file received"})
		return
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only image files allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
		return
	}

	name := StoredName(file.Filename)
	if err := os.WriteFile(filepath.Join(h.dir, name), content, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": h.baseURL + PublicPrefix + "/" + name})
}
