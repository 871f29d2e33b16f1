package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/reputation"
)

// ReputationHandler handles reputation REST endpoints.
type ReputationHandler struct {
	db         *gorm.DB
	reputation *reputation.Service
}

// NewReputationHandler creates a new ReputationHandler.
func NewReputationHandler(db *gorm.DB, rep *reputation.Service) *ReputationHandler {
	return &ReputationHandler{db: db, reputation: rep}
}

// Status handles GET /api/reputation.
func (h *ReputationHandler) Status(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	st, err := h.reputation.GetStatus(c.Request.Context(), w.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// Achievements handles GET /api/reputation/achievements?limit=.
func (h *ReputationHandler) Achievements(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	unlocks, err := h.reputation.Recent(c.Request.Context(), w.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": unlocks})
}

// Reaction handles GET /api/reputation/reaction?tags=shy,popular.
func (h *ReputationHandler) Reaction(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	var tags []string
	if raw := c.Query("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}
	reaction, err := h.reputation.ReactionModifier(c.Request.Context(), w.ID, tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reaction)
}
