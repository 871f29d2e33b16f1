package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/progression"
	"github.com/fukimorihigh/server/game/session"
)

// ProgressionHandler handles player progression REST endpoints. Item
// mutations run under the world's mutation lock; reads do not.
type ProgressionHandler struct {
	db          *gorm.DB
	progression *progression.Service
	sessions    *session.Manager
}

// NewProgressionHandler creates a new ProgressionHandler.
func NewProgressionHandler(db *gorm.DB, prog *progression.Service, sessions *session.Manager) *ProgressionHandler {
	return &ProgressionHandler{db: db, progression: prog, sessions: sessions}
}

// Stats handles GET /api/progression.
func (h *ProgressionHandler) Stats(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	stats, err := h.progression.Stats(c.Request.Context(), w.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CheckAction handles GET /api/progression/actions/:key.
func (h *ProgressionHandler) CheckAction(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	unlocked, err := h.progression.CanPerformAction(c.Request.Context(), w.ID, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"action":   c.Param("key"),
		"unlocked": unlocked,
	})
}

type itemRequest struct {
	Name    string `json:"name" binding:"required,max=64"`
	Special bool   `json:"special"`
}

// AddItem handles POST /api/progression/items.
func (h *ProgressionHandler) AddItem(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Under the world lock: the capacity check is count-then-insert and
	// must not interleave with another writer on the same save.
	err := h.sessions.Do(c.Request.Context(), w.ID, func() error {
		return h.progression.AddItem(c.Request.Context(), w.ID, req.Name, req.Special)
	})
	if errors.Is(err, progression.ErrInventoryFull) {
		c.JSON(http.StatusConflict, gin.H{"error": "inventory full"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}

// RemoveItem handles DELETE /api/progression/items/:name.
func (h *ProgressionHandler) RemoveItem(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	var removed bool
	err := h.sessions.Do(c.Request.Context(), w.ID, func() error {
		var err error
		removed, err = h.progression.RemoveItem(c.Request.Context(), w.ID, c.Param("name"))
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not held"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
