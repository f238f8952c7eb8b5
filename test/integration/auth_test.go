package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"cobrew_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	email := fmt.Sprintf("founder_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "Response: "+regBodyStr)
	assert.Contains(t, regBodyStr, email)
	assert.Contains(t, regBodyStr, "token")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, logRes.StatusCode, "Response: "+logBodyStr)

	var authResponse struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(logBodyStr), &authResponse)
	require.NoError(t, err)
	assert.Equal(t, email, authResponse.User.Email)
	assert.NotEmpty(t, authResponse.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	email := fmt.Sprintf("dup_%d@test.com", time.Now().UnixNano())

	helpers.RegisterUser(t, ts, email, "super_password123")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": "another_password456",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")
}

func TestRegister_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Response: "+bodyStr)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	email := fmt.Sprintf("badpass_%d@test.com", time.Now().UnixNano())

	helpers.RegisterUser(t, ts, email, "correct_password123")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := GetTestServer(t)

	// Same status and message as a bad password, so the API never reveals
	// whether an email is registered.
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "irrelevant_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestGetMe(t *testing.T) {
	ts := GetTestServer(t)
	email := fmt.Sprintf("me_%d@test.com", time.Now().UnixNano())

	token, userID := helpers.RegisterUser(t, ts, email, "super_password123")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, email)
	assert.Contains(t, bodyStr, userID)
}

func TestGetMe_NoToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetMe_GarbageToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogout(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Logout successful")
}
