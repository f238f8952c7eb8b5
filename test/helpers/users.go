package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RegisterUser registers a fresh account through the API and returns the
// issued token together with the new user id.
func RegisterUser(t *testing.T, ts *TestServer, email, password string) (string, string) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Registration should succeed. Response: "+bodyStr)

	var authResponse struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &authResponse)
	require.NoError(t, err)
	require.NotEmpty(t, authResponse.Token)

	return authResponse.Token, authResponse.User.ID
}

// RegisterRandomUser registers a user with a unique email so tests never
// collide on the email unique index.
func RegisterRandomUser(t *testing.T, ts *TestServer, label string) (string, string) {
	email := fmt.Sprintf("%s_%d@test.com", label, time.Now().UnixNano())
	return RegisterUser(t, ts, email, "super_password123")
}

// CreateProject creates a project through the API and returns its id.
func CreateProject(t *testing.T, ts *TestServer, token, title, stage string) string {
	body := map[string]interface{}{
		"title":       title,
		"description": "A project used by the integration tests",
		"stage":       stage,
		"category":    "SaaS",
		"rolesNeeded": []string{"Backend Developer", "Designer"},
		"tags":        []string{"go", "startup"},
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/projects", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Project creation should succeed. Response: "+bodyStr)

	var project struct {
		ID string `json:"id"`
	}
	err := json.Unmarshal([]byte(bodyStr), &project)
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)

	return project.ID
}

// SubmitApplication applies to a project through the API and returns the
// application id.
func SubmitApplication(t *testing.T, ts *TestServer, token, projectID string) string {
	body := map[string]interface{}{
		"projectId":    projectID,
		"introduction": "Hi, I would love to join",
		"experience":   "5 years of backend work",
		"motivation":   "The problem space is exciting",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/applications", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Application should succeed. Response: "+bodyStr)

	var application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	err := json.Unmarshal([]byte(bodyStr), &application)
	require.NoError(t, err)
	assert.Equal(t, "pending", application.Status)

	return application.ID
}

// ApproveApplication decides an application as approved on behalf of the
// project owner.
func ApproveApplication(t *testing.T, ts *TestServer, ownerToken, applicationID string) {
	body := map[string]interface{}{"status": "approved"}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/applications/"+applicationID+"/status", ownerToken, body)
	require.Equal(t, http.StatusOK, res.StatusCode, "Approval should succeed. Response: "+bodyStr)
}
