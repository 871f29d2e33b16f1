package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/game/session"
	"github.com/fukimorihigh/server/game/world"
	mw "github.com/fukimorihigh/server/middleware"
)

// WorldHandler handles save lifecycle REST endpoints.
type WorldHandler struct {
	db         *gorm.DB
	worlds     *world.Service
	sessions   *session.Manager
	reputation *reputation.Service
}

// NewWorldHandler creates a new WorldHandler.
func NewWorldHandler(db *gorm.DB, worlds *world.Service, sessions *session.Manager, rep *reputation.Service) *WorldHandler {
	return &WorldHandler{db: db, worlds: worlds, sessions: sessions, reputation: rep}
}

// Create handles POST /api/worlds. Initializes a fresh save for the
// authenticated account.
func (h *WorldHandler) Create(c *gin.Context) {
	var req struct {
		PlayerName string `json:"player_name" binding:"max=32"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID := mw.GetAccountID(c)
	w, err := h.worlds.Init(c.Request.Context(), accountID, req.PlayerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "world init failed"})
		return
	}

	// Attach the session to the new world so admin listing shows it.
	if token := mw.BearerToken(c); token != "" {
		h.sessions.Register(token, accountID, w.ID)
	}

	c.JSON(http.StatusCreated, gin.H{"world": w})
}

// List handles GET /api/worlds. Returns the account's saves.
func (h *WorldHandler) List(c *gin.Context) {
	var worlds []struct {
		ID         string `json:"id"`
		PlayerName string `json:"player_name"`
	}
	err := h.db.Table("worlds").
		Where("account_id = ?", mw.GetAccountID(c)).
		Order("created_at").
		Find(&worlds).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"worlds": worlds})
}

// Status handles GET /api/worlds/status.
func (h *WorldHandler) Status(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	st, err := h.worlds.GetStatus(c.Request.Context(), w.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// Reset handles POST /api/worlds/reset. Wipes the save and reseeds it.
func (h *WorldHandler) Reset(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	err := h.sessions.Do(c.Request.Context(), w.ID, func() error {
		if err := h.worlds.Reset(c.Request.Context(), w.ID); err != nil {
			return err
		}
		// The reseeded save starts from default reputation; drop the
		// cached snapshot so readers do not see the old axes.
		h.reputation.Invalidate(c.Request.Context(), w.ID)
		return nil
	})
	if err != nil {
		if errors.Is(err, world.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "world not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "world reset"})
}
