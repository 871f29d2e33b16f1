package rest_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fukimorihigh/server/api/rest"
	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/model"
)

func TestSocialContextEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/social/context?character=player&location=classroom", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/social/context?character=player", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelationshipEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/social/relationships?owner=player&target=coach_saito", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodPost, "/api/interactions", map[string]interface{}{
		"actor_id":  "player",
		"action":    "said hello to a friend",
		"witnesses": []string{"coach_saito"},
		"location":  "classroom",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/social/relationships?owner=player&target=coach_saito", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var rel model.Relationship
	decode(t, w, &rel)
	assert.Equal(t, "player", rel.OwnerID)
	assert.Equal(t, "coach_saito", rel.OtherID)
}

func TestReputationStatusEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/reputation", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var st reputation.Status
	decode(t, w, &st)
	assert.Equal(t, 50, st.Popularity)
	assert.Equal(t, "The Transfer Student", st.Title)
}

func TestReputationReactionEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/reputation/reaction?tags=strict,teacher", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProgressionStatsEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/progression", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Progression model.Progression     `json:"progression"`
		Skills      []model.PlayerSkill   `json:"skills"`
		Items       []model.InventoryItem `json:"items"`
	}
	decode(t, w, &stats)
	assert.Equal(t, 1, stats.Progression.Level)
	assert.Len(t, stats.Skills, 18)
	assert.Len(t, stats.Items, 3)
}

func TestCheckActionEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/progression/actions/study", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Action   string `json:"action"`
		Unlocked bool   `json:"unlocked"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Unlocked)

	w = e.do(http.MethodGet, "/api/progression/actions/join_club", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.False(t, resp.Unlocked)
}

func TestInventoryEndpoints(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodPost, "/api/progression/items", map[string]interface{}{
		"name": "bento_box",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Starting capacity is 10 and the save seeds 3 items.
	for i := 0; i < 6; i++ {
		w = e.do(http.MethodPost, "/api/progression/items", map[string]interface{}{
			"name": "manga_volume",
		}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w = e.do(http.MethodPost, "/api/progression/items", map[string]interface{}{
		"name": "one_too_many",
	}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(http.MethodDelete, "/api/progression/items/bento_box", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodDelete, "/api/progression/items/bento_box", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Concurrent adds race for the last inventory slot; the world lock must
// admit exactly one of them.
func TestInventoryConcurrentAddsRespectCapacity(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	// Fill to capacity-1: 3 seeded items, capacity 10.
	for i := 0; i < 6; i++ {
		w := e.do(http.MethodPost, "/api/progression/items", map[string]interface{}{
			"name": "manga_volume",
		}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	const racers = 8
	codes := make(chan int, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := e.do(http.MethodPost, "/api/progression/items", map[string]interface{}{
				"name": "last_slot_item",
			}, "Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, racers-1, conflicts)
}

func TestMemoriesEndpoint(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")
	worldID := e.newWorld(t, token, "Kenji")

	w := e.do(http.MethodGet, "/api/memories", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Memories []model.StoryMemory `json:"memories"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Memories, 3)

	w = e.do(http.MethodGet, "/api/memories?character=teacher_tanaka", nil,
		"Authorization", "Bearer "+token, rest.WorldIDHeader, worldID)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Memories)
}
