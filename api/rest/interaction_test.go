package rest_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fukimorihigh/server/api/rest"
	"github.com/fukimorihigh/server/game/interaction"
)

func TestProcessInteraction(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/interactions", map[string]interface{}{
		"actor_id":  "player",
		"action":    "helped a classmate with homework",
		"emotion":   "happy",
		"witnesses": []string{"coach_saito"},
		"location":  "library",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var out interaction.Outcome
	decode(t, w, &out)
	require.NotNil(t, out.Social)
	require.NotNil(t, out.Progression)
	assert.Equal(t, "academics", out.Gain.SkillCategory)
	assert.Equal(t, 22, out.Gain.Amount)
	assert.Equal(t, 22, out.Progression.Experience)
}

func TestProcessInteractionUnknownActor(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/interactions", map[string]interface{}{
		"actor_id": "ghost",
		"action":   "waved",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProcessInteractionValidation(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/interactions", map[string]interface{}{
		"actor_id": "player",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessInteractionAchievement(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/interactions", map[string]interface{}{
		"actor_id":        "player",
		"action":          "threw the third big party this month",
		"emotion":         "excited",
		"location":        "gymnasium",
		"achievement_key": "organized_3_parties",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var out interaction.Outcome
	decode(t, w, &out)
	require.NotNil(t, out.Achievement)
	assert.Equal(t, "party_king", out.Achievement.ID)
}
