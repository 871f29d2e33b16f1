package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/memlog"
)

// MemoryHandler handles story memory REST endpoints.
type MemoryHandler struct {
	db       *gorm.DB
	memories *memlog.Service
}

// NewMemoryHandler creates a new MemoryHandler.
func NewMemoryHandler(db *gorm.DB, mem *memlog.Service) *MemoryHandler {
	return &MemoryHandler{db: db, memories: mem}
}

// Query handles GET /api/memories?character=&context=&limit=.
// Without filters it returns the most recent memories.
func (h *MemoryHandler) Query(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	charID := c.Query("character")
	freeText := c.Query("context")

	ctx := c.Request.Context()
	if charID == "" && freeText == "" {
		memories, err := h.memories.Recent(ctx, w.ID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"memories": memories})
		return
	}

	memories, err := h.memories.QueryRelevant(ctx, w.ID, charID, freeText, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"memories": memories})
}
