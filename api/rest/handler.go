package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/fukimorihigh/server/middleware"
	"github.com/fukimorihigh/server/model"
)

// WorldIDHeader carries the active save's ID on every gameplay request.
// A world_id query parameter works as a fallback.
const WorldIDHeader = "X-World-ID"

// requestWorld resolves the world for the request and verifies the
// authenticated account owns it. On failure it writes the error response
// and returns false.
func requestWorld(c *gin.Context, db *gorm.DB) (*model.World, bool) {
	worldID := c.GetHeader(WorldIDHeader)
	if worldID == "" {
		worldID = c.Query("world_id")
	}
	if worldID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing world id"})
		return nil, false
	}

	var w model.World
	err := db.Where("id = ?", worldID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "world not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	if w.AccountID != mw.GetAccountID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "world belongs to another account"})
		return nil, false
	}
	return &w, true
}

// isUniqueViolation detects duplicate-key errors from common database drivers.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "already exists")
}
