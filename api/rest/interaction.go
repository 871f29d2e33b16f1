package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/interaction"
	"github.com/fukimorihigh/server/game/registry"
	mw "github.com/fukimorihigh/server/middleware"
)

// InteractionHandler handles interaction event REST endpoints.
type InteractionHandler struct {
	db           *gorm.DB
	interactions *interaction.Service
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(db *gorm.DB, svc *interaction.Service) *InteractionHandler {
	return &InteractionHandler{db: db, interactions: svc}
}

type interactionRequest struct {
	ActorID        string   `json:"actor_id" binding:"required,max=64"`
	Action         string   `json:"action" binding:"required,max=255"`
	Emotion        string   `json:"emotion" binding:"max=32"`
	Witnesses      []string `json:"witnesses" binding:"max=32"`
	Location       string   `json:"location" binding:"max=64"`
	AchievementKey string   `json:"achievement_key" binding:"max=64"`
}

// Process handles POST /api/interactions.
func (h *InteractionHandler) Process(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.interactions.Process(c.Request.Context(), w.ID, interaction.Event{
		ActorID:        req.ActorID,
		Action:         req.Action,
		Emotion:        req.Emotion,
		Witnesses:      req.Witnesses,
		Location:       req.Location,
		AchievementKey: req.AchievementKey,
		TraceID:        mw.GetTraceID(c),
		IP:             c.ClientIP(),
	})
	if errors.Is(err, registry.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "actor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "interaction failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}
