package rest_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fukimorihigh/server/api/rest"
	"github.com/fukimorihigh/server/model"
)

func TestListCharacters(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/characters", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Characters []model.Character `json:"characters"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Characters, 6)
}

func TestGetCharacterWithRelationships(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/characters/teacher_tanaka", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Character     model.Character      `json:"character"`
		Relationships []model.Relationship `json:"relationships"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "teacher_tanaka", resp.Character.CharID)
	assert.NotEmpty(t, resp.Character.Name)

	w = e.do(http.MethodGet, "/api/characters/nobody_here", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCharacterDefaults(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/characters", map[string]interface{}{
		"char_id": "student_hana",
		"name":    "Hana Mochizuki",
		"age":     16,
		"gender":  "female",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Character model.Character `json:"character"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "student_hana", resp.Character.CharID)

	w = e.do(http.MethodGet, "/api/characters", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Characters []model.Character `json:"characters"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Characters, 7)
}
