package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fukimorihigh/server/model"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "kenji", "password": "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "kenji", "password": "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp["token"])
	assert.NotZero(t, resp["account_id"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "kenji", "password": "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "kenji", "password": "other123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newEnv(t)
	e.login(t, "kenji")

	w := e.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "kenji", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownAccount(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nobody", "password": "pass1234",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBannedAccount(t *testing.T) {
	e := newEnv(t)
	e.login(t, "kenji")

	require.NoError(t, e.db.Model(&model.Account{}).
		Where("username = ?", "kenji").
		Update("status", 0).Error)

	w := e.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "kenji", "password": "pass1234",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	e := newEnv(t)
	token := e.login(t, "kenji")

	w := e.do(http.MethodGet, "/api/worlds", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodPost, "/api/auth/logout", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/worlds", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "k", "password": "pass1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "kenji", "password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedEndpointRequiresAuth(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/worlds", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}
