package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cobrew_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile_EmptyAfterRegistration(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterRandomUser(t, ts, "profile_empty")

	// Registration creates an empty profile row, so the endpoint never 404s
	// for a fresh account.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/profiles/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var profile struct {
		ID        string   `json:"id"`
		FirstName string   `json:"firstName"`
		Skills    []string `json:"skills"`
	}
	err := json.Unmarshal([]byte(bodyStr), &profile)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Empty(t, profile.FirstName)
}

func TestUpdateProfile(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterRandomUser(t, ts, "profile_update")

	updateBody := map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"title":     "Backend Engineer",
		"bio":       "I like distributed systems",
		"location":  "Berlin",
		"skills":    []string{"Go", "PostgreSQL"},
		"githubUrl": "https://github.com/ada",
	}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/profiles", token, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var profile struct {
		FirstName string   `json:"firstName"`
		LastName  string   `json:"lastName"`
		Skills    []string `json:"skills"`
		GithubURL string   `json:"githubUrl"`
	}
	err := json.Unmarshal([]byte(bodyStr), &profile)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.Skills)
	assert.Equal(t, "https://github.com/ada", profile.GithubURL)
}

func TestUpdateProfile_AvatarGoesToUser(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterRandomUser(t, ts, "profile_avatar")

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/profiles", token, map[string]interface{}{
		"avatarUrl": "https://cdn.test.com/avatar.png",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	// The avatar lives on the account, so /auth/me must reflect it too.
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, "https://cdn.test.com/avatar.png")
}

func TestUpdateProfile_InvalidURL(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterRandomUser(t, ts, "profile_badurl")

	res, _ := ts.SendRequest(t, "PUT", "/api/profiles", token, map[string]interface{}{
		"githubUrl": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetProfile_Public(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, ownerID := helpers.RegisterRandomUser(t, ts, "profile_public")

	_, bodyStr := ts.SendRequest(t, "PUT", "/api/profiles", ownerToken, map[string]interface{}{
		"firstName": "Grace",
		"lastName":  "Hopper",
	})
	require.Contains(t, bodyStr, "Grace")

	// Profiles are readable without a token.
	res, pubBodyStr := ts.SendRequest(t, "GET", "/api/profiles/"+ownerID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+pubBodyStr)
	assert.Contains(t, pubBodyStr, "Grace")
	assert.Contains(t, pubBodyStr, "Hopper")
}

func TestGetProfile_UnknownUser(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/profiles/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
