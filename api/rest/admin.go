package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/game/session"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/scheduler"
)

// AdminAuth guards admin-only routes with a shared key. Routes should
// additionally sit behind the IP whitelist middleware.
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": "admin endpoints disabled: set server.admin_key in config"})
			return
		}
		if c.GetHeader("X-Admin-Key") != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// AdminHandler handles admin-only REST endpoints.
type AdminHandler struct {
	db         *gorm.DB
	reputation *reputation.Service
	sessions   *session.Manager
	sched      *scheduler.Scheduler
	logger     *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(db *gorm.DB, rep *reputation.Service, sessions *session.Manager, sched *scheduler.Scheduler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{db: db, reputation: rep, sessions: sessions, sched: sched, logger: logger}
}

// Metrics returns server health metrics.
// GET /api/admin/metrics
func (h *AdminHandler) Metrics(c *gin.Context) {
	var worlds int64
	_ = h.db.Model(&model.World{}).Count(&worlds).Error
	c.JSON(http.StatusOK, gin.H{
		"sessions":       h.sessions.Count(),
		"worlds":         worlds,
		"scheduler_jobs": h.sched.Names(),
	})
}

// ForceAchievement triggers an achievement event on any world.
// POST /api/admin/achievements/:event_key
func (h *AdminHandler) ForceAchievement(c *gin.Context) {
	var req struct {
		WorldID string `json:"world_id" binding:"required,max=36"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var w model.World
	err := h.db.Where("id = ?", req.WorldID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "world not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	eventKey := c.Param("event_key")
	var unlocked *reputation.Unlocked
	err = h.sessions.Do(c.Request.Context(), w.ID, func() error {
		var err error
		unlocked, err = h.reputation.Trigger(c.Request.Context(), w.ID, eventKey)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "trigger failed"})
		return
	}
	if unlocked == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no achievement for event, or already unlocked"})
		return
	}

	h.logger.Info("achievement force-triggered",
		zap.String("world_id", w.ID),
		zap.String("event_key", eventKey),
		zap.String("achievement", unlocked.ID))
	c.JSON(http.StatusOK, gin.H{"achievement": unlocked})
}

// Leaderboard returns the top worlds by notoriety.
// GET /api/admin/leaderboard?n=10
func (h *AdminHandler) Leaderboard(c *gin.Context) {
	n, _ := strconv.ParseInt(c.DefaultQuery("n", "10"), 10, 64)
	if n <= 0 || n > 100 {
		n = 10
	}
	entries, err := h.reputation.Leaderboard(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// ListSessions returns a snapshot of attached sessions.
// GET /api/admin/sessions
func (h *AdminHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.sessions.All()})
}
