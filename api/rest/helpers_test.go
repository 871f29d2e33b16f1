package rest_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/api/rest"
	"github.com/fukimorihigh/server/cache"
	"github.com/fukimorihigh/server/config"
	"github.com/fukimorihigh/server/game/interaction"
	"github.com/fukimorihigh/server/game/memlog"
	"github.com/fukimorihigh/server/game/progression"
	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/game/session"
	"github.com/fukimorihigh/server/game/social"
	"github.com/fukimorihigh/server/game/world"
	mw "github.com/fukimorihigh/server/middleware"
	"github.com/fukimorihigh/server/resource"
	"github.com/fukimorihigh/server/scheduler"
	"github.com/fukimorihigh/server/testutil"
)

const testAdminKey = "test-admin-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type env struct {
	router   *gin.Engine
	db       *gorm.DB
	cache    cache.Cache
	registry *registry.Service
	memories *memlog.Service
	sched    *scheduler.Scheduler
}

// newEnv builds the full route tree the way main does, against an
// in-memory database and local cache.
func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	cat, err := resource.Load("")
	require.NoError(t, err)
	cfg := config.DefaultGame()
	sec := config.SecurityConfig{
		JWTSecret: "test-secret",
		JWTTTLH:   72 * time.Hour,
	}
	logger := zap.NewNop()

	sessions := session.NewManager(c, logger)
	reg := registry.NewService(db, logger, cfg.RelationshipHistoryCap)
	mem := memlog.NewService(db, logger, cfg.MemoryCapacity)
	soc := social.NewService(reg, mem, cat, logger, cfg)
	rep := reputation.NewService(db, c, cat, logger)
	prog := progression.NewService(db, mem, logger, cfg, rand.New(rand.NewSource(1)))
	worlds := world.NewService(db, reg, mem, cat, logger, cfg)
	inter := interaction.NewService(soc, prog, rep, sessions, nil, logger)
	sched := scheduler.New(logger)
	t.Cleanup(sched.Stop)

	authH := rest.NewAuthHandler(db, c, sessions, sec)
	worldH := rest.NewWorldHandler(db, worlds, sessions, rep)
	charH := rest.NewCharacterHandler(db, reg)
	interH := rest.NewInteractionHandler(db, inter)
	socialH := rest.NewSocialHandler(db, soc, reg)
	repH := rest.NewReputationHandler(db, rep)
	progH := rest.NewProgressionHandler(db, prog, sessions)
	memH := rest.NewMemoryHandler(db, mem)
	adminH := rest.NewAdminHandler(db, rep, sessions, sched, logger)

	r := gin.New()
	api := r.Group("/api")

	authG := api.Group("/auth")
	authG.POST("/register", authH.Register)
	authG.POST("/login", authH.Login)
	authG.POST("/logout", mw.Auth(sec, c), authH.Logout)

	worldsG := api.Group("/worlds")
	worldsG.Use(mw.Auth(sec, c))
	worldsG.POST("", worldH.Create)
	worldsG.GET("", worldH.List)
	worldsG.GET("/status", worldH.Status)
	worldsG.POST("/reset", worldH.Reset)

	charsG := api.Group("/characters")
	charsG.Use(mw.Auth(sec, c))
	charsG.GET("", charH.List)
	charsG.POST("", charH.Create)
	charsG.GET("/:id", charH.Get)

	api.POST("/interactions", mw.Auth(sec, c), interH.Process)

	socialG := api.Group("/social")
	socialG.Use(mw.Auth(sec, c))
	socialG.GET("/context", socialH.Context)
	socialG.GET("/relationships", socialH.Relationship)

	repG := api.Group("/reputation")
	repG.Use(mw.Auth(sec, c))
	repG.GET("", repH.Status)
	repG.GET("/achievements", repH.Achievements)
	repG.GET("/reaction", repH.Reaction)

	progG := api.Group("/progression")
	progG.Use(mw.Auth(sec, c))
	progG.GET("", progH.Stats)
	progG.GET("/actions/:key", progH.CheckAction)
	progG.POST("/items", progH.AddItem)
	progG.DELETE("/items/:name", progH.RemoveItem)

	api.GET("/memories", mw.Auth(sec, c), memH.Query)

	adminG := api.Group("/admin")
	adminG.Use(rest.AdminAuth(testAdminKey))
	adminG.GET("/metrics", adminH.Metrics)
	adminG.GET("/sessions", adminH.ListSessions)
	adminG.GET("/leaderboard", adminH.Leaderboard)
	adminG.POST("/achievements/:event_key", adminH.ForceAchievement)

	return &env{
		router:   r,
		db:       db,
		cache:    c,
		registry: reg,
		memories: mem,
		sched:    sched,
	}
}

func (e *env) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login registers and logs in a fresh account, returning its token.
func (e *env) login(t *testing.T, username string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username, "password": "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username, "password": "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["token"].(string)
}

// newWorld creates a save for the token and returns its ID.
func (e *env) newWorld(t *testing.T, token, playerName string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/worlds", map[string]string{"player_name": playerName},
		"Authorization", "Bearer "+token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		World struct {
			ID string `json:"id"`
		} `json:"world"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.World.ID)
	return resp.World.ID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
