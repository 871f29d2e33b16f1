package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	apirest "github.com/fukimorihigh/server/api/rest"
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

const AdminKey = "integration-admin-key"

var testCounter uint64

// TestServer wraps a real HTTP server with all game subsystems wired together.
type TestServer struct {
	DB       *gorm.DB
	Cache    cache.Cache
	Sessions *session.Manager
	Server   *httptest.Server
	URL      string // http://127.0.0.1:<port>
	Sec      config.SecurityConfig
}

// NewTestServer creates a fully wired game server for integration testing.
// It mirrors the dependency wiring in main.go.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	logger := zap.NewNop()

	sec := config.SecurityConfig{
		JWTSecret:      "integration-test-secret",
		JWTTTLH:        72 * time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 2000,
	}
	cfg := config.DefaultGame()

	cat, err := resource.Load("")
	require.NoError(t, err)

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

	authH := apirest.NewAuthHandler(db, c, sessions, sec)
	worldH := apirest.NewWorldHandler(db, worlds, sessions, rep)
	charH := apirest.NewCharacterHandler(db, reg)
	interH := apirest.NewInteractionHandler(db, inter)
	socialH := apirest.NewSocialHandler(db, soc, reg)
	repH := apirest.NewReputationHandler(db, rep)
	progH := apirest.NewProgressionHandler(db, prog, sessions)
	memH := apirest.NewMemoryHandler(db, mem)
	adminH := apirest.NewAdminHandler(db, rep, sessions, sched, logger)

	r := gin.New()
	r.Use(mw.TraceID(), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(sec.RateLimitRPS), sec.RateLimitBurst))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
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
		adminG.Use(apirest.AdminAuth(AdminKey))
		adminG.GET("/metrics", adminH.Metrics)
		adminG.GET("/sessions", adminH.ListSessions)
		adminG.GET("/leaderboard", adminH.Leaderboard)
		adminG.POST("/achievements/:event_key", adminH.ForceAchievement)
	}

	server := httptest.NewServer(r)

	return &TestServer{
		DB:       db,
		Cache:    c,
		Sessions: sessions,
		Server:   server,
		URL:      server.URL,
		Sec:      sec,
	}
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

func (ts *TestServer) request(t *testing.T, method, path string, body interface{}, token, worldID string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if worldID != "" {
		req.Header.Set(apirest.WorldIDHeader, worldID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// PostJSON sends an authenticated POST with a JSON body.
func (ts *TestServer) PostJSON(t *testing.T, path string, body interface{}, token, worldID string) *http.Response {
	return ts.request(t, "POST", path, body, token, worldID)
}

// Get sends an authenticated GET.
func (ts *TestServer) Get(t *testing.T, path string, token, worldID string) *http.Response {
	return ts.request(t, "GET", path, nil, token, worldID)
}

// Delete sends an authenticated DELETE.
func (ts *TestServer) Delete(t *testing.T, path string, token, worldID string) *http.Response {
	return ts.request(t, "DELETE", path, nil, token, worldID)
}

// ReadJSON decodes and closes a response body.
func ReadJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target), "body: %s", string(data))
}

// Login registers a fresh account and logs it in.
func (ts *TestServer) Login(t *testing.T, username, password string) (token string, accountID int64) {
	t.Helper()
	resp := ts.PostJSON(t, "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, "", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ts.PostJSON(t, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result map[string]interface{}
	ReadJSON(t, resp, &result)
	token = result["token"].(string)
	accountID = int64(result["account_id"].(float64))
	return
}

// NewWorld creates a save for the token and returns its ID.
func (ts *TestServer) NewWorld(t *testing.T, token, playerName string) string {
	t.Helper()
	resp := ts.PostJSON(t, "/api/worlds", map[string]string{
		"player_name": playerName,
	}, token, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result struct {
		World struct {
			ID string `json:"id"`
		} `json:"world"`
	}
	ReadJSON(t, resp, &result)
	require.NotEmpty(t, result.World.ID)
	return result.World.ID
}

// UniqueID generates a unique identifier for test isolation.
func UniqueID(prefix string) string {
	n := atomic.AddUint64(&testCounter, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano()%100000, n)
}
