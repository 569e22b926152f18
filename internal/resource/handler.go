package resource

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ============================
// 🌐 Generic Resource Handler
//
// Serves list, create and delete for one record kind. Which of the three
// sit behind the session guard is decided at route registration, not
// here.
type Handler[T any] struct {
	store *Store[T]
	desc  Descriptor
	build func(Values) T
}

func NewHandler[T any](store *Store[T], desc Descriptor, build func(Values) T) *Handler[T] {
	return &Handler[T]{store: store, desc: desc, build: build}
}

// List - GET /api/{kind}s
func (h *Handler[T]) List(c *gin.Context) {
	rows, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list " + h.desc.Table})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create - POST /api/{kind}s
func (h *Handler[T]) Create(c *gin.Context) {
	values, err := BindValues(c, h.desc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	rec := h.build(values)
	if err := h.store.Create(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create " + h.desc.Kind})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, h.desc.Kind: rec})
}

// Delete - DELETE /api/{kind}s?id= (or id in the body, which wins)
func (h *Handler[T]) Delete(c *gin.Context) {
	id, err := ResolveID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": h.desc.Label + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete " + h.desc.Kind})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
