package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/model"
)

// CharacterHandler handles character registry REST endpoints.
type CharacterHandler struct {
	db       *gorm.DB
	registry *registry.Service
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(db *gorm.DB, reg *registry.Service) *CharacterHandler {
	return &CharacterHandler{db: db, registry: reg}
}

// List handles GET /api/characters.
func (h *CharacterHandler) List(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	chars, err := h.registry.List(c.Request.Context(), w.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": chars})
}

// Get handles GET /api/characters/:id.
func (h *CharacterHandler) Get(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	ch, err := h.registry.Get(c.Request.Context(), w.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if ch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
		return
	}

	relationships, err := h.registry.ListRelationships(c.Request.Context(), w.ID, ch.CharID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"character":     ch,
		"relationships": relationships,
	})
}

type createCharacterRequest struct {
	CharID         string             `json:"char_id" binding:"max=64"`
	Name           string             `json:"name" binding:"max=64"`
	Age            int                `json:"age" binding:"min=0,max=120"`
	Gender         string             `json:"gender" binding:"max=16"`
	Appearance     *model.Appearance  `json:"appearance"`
	Personality    *model.Personality `json:"personality"`
	Background     *model.Background  `json:"background"`
	Abilities      *model.Abilities   `json:"abilities"`
	ReputationTags []string           `json:"reputation_tags"`
}

// Create handles POST /api/characters. Creates or overwrites a character
// sheet; omitted fields get the documented defaults.
func (h *CharacterHandler) Create(c *gin.Context) {
	w, ok := requestWorld(c, h.db)
	if !ok {
		return
	}
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := h.registry.Create(c.Request.Context(), w.ID, registry.CreateInput{
		CharID:         req.CharID,
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Appearance:     req.Appearance,
		Personality:    req.Personality,
		Background:     req.Background,
		Abilities:      req.Abilities,
		ReputationTags: req.ReputationTags,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"character": ch})
}
