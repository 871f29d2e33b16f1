package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/game/social"
)

// SocialHandler handles social context REST endpoints.
type SocialHandler struct {
	db       *gorm.DB
	social   *social.Service
	registry *registry.Service
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(db *gorm.DB, soc *social.Service, reg *registry.Service) *SocialHandler {
	return &SocialHandler{db: db, social: soc, registry: reg}
}

// Context handles GET /api/social/context?character=&location=.
func (h *SocialHandler) Context(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	charID := c.Query("character")
	location := c.Query("location")
	if charID == "" || location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "character and location required"})
		return
	}

	sctx, err := h.social.SocialContext(c.Request.Context(), w.ID, charID, location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, sctx)
}

// Relationship handles GET /api/social/relationships?owner=&target=.
func (h *SocialHandler) Relationship(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	owner := c.Query("owner")
	target := c.Query("target")
	if owner == "" || target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner and target required"})
		return
	}

	rel, err := h.registry.GetRelationship(c.Request.Context(), w.ID, owner, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if rel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no relationship recorded"})
		return
	}
	c.JSON(http.StatusOK, rel)
}
