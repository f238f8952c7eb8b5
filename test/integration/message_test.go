package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cobrew_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageView struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	IsOwn   bool   `json:"isOwn"`
	Sender  *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"sender"`
}

func listMessages(t *testing.T, ts *helpers.TestServer, token, projectID string) (*http.Response, []messageView, string) {
	res, bodyStr := ts.SendRequest(t, "GET", "/api/messages/"+projectID, token, nil)
	if res.StatusCode != http.StatusOK {
		return res, nil, bodyStr
	}
	var envelope struct {
		Messages []messageView `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	return res, envelope.Messages, bodyStr
}

func sendMessage(t *testing.T, ts *helpers.TestServer, token, projectID, content string) (*http.Response, string) {
	return ts.SendRequest(t, "POST", "/api/messages/"+projectID, token, map[string]interface{}{
		"content": content,
	})
}

// TestMessaging_ApprovedApplicantFlow walks the whole collaboration path:
// apply, get approved, then exchange messages with the owner.
func TestMessaging_ApprovedApplicantFlow(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, ownerID := helpers.RegisterRandomUser(t, ts, "msg_owner")
	applicantToken, applicantID := helpers.RegisterRandomUser(t, ts, "msg_applicant")
	projectID := helpers.CreateProject(t, ts, ownerToken, "Team Chat", "mvp")

	// Pending applicants cannot read the room yet.
	applicationID := helpers.SubmitApplication(t, ts, applicantToken, projectID)
	pendingRes, _, _ := listMessages(t, ts, applicantToken, projectID)
	assert.Equal(t, http.StatusForbidden, pendingRes.StatusCode)

	helpers.ApproveApplication(t, ts, ownerToken, applicationID)

	// Approval opens both reading and writing.
	postRes, postBodyStr := sendMessage(t, ts, applicantToken, projectID, "Thanks for approving me!")
	require.Equal(t, http.StatusCreated, postRes.StatusCode, "Response: "+postBodyStr)

	var posted messageView
	require.NoError(t, json.Unmarshal([]byte(postBodyStr), &posted))
	assert.True(t, posted.IsOwn)
	require.NotNil(t, posted.Sender)
	assert.Equal(t, applicantID, posted.Sender.ID)

	ownerPostRes, _ := sendMessage(t, ts, ownerToken, projectID, "Welcome aboard")
	require.Equal(t, http.StatusCreated, ownerPostRes.StatusCode)

	// Oldest first, with per-caller ownership flags.
	res, messages, bodyStr := listMessages(t, ts, ownerToken, projectID)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	require.Len(t, messages, 2)
	assert.Equal(t, "Thanks for approving me!", messages[0].Content)
	assert.False(t, messages[0].IsOwn)
	assert.Equal(t, applicantID, messages[0].Sender.ID)
	assert.Equal(t, "Welcome aboard", messages[1].Content)
	assert.True(t, messages[1].IsOwn)
	assert.Equal(t, ownerID, messages[1].Sender.ID)
}

func TestMessaging_RejectedApplicant(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _ := helpers.RegisterRandomUser(t, ts, "msg_rej_owner")
	applicantToken, _ := helpers.RegisterRandomUser(t, ts, "msg_rej_applicant")
	projectID := helpers.CreateProject(t, ts, ownerToken, "Closed Door", "idea")
	applicationID := helpers.SubmitApplication(t, ts, applicantToken, projectID)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/applications/"+applicationID+"/status", ownerToken, map[string]interface{}{
		"status": "rejected",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	readRes, _, _ := listMessages(t, ts, applicantToken, projectID)
	assert.Equal(t, http.StatusForbidden, readRes.StatusCode)

	writeRes, _ := sendMessage(t, ts, applicantToken, projectID, "Can I still join?")
	assert.Equal(t, http.StatusForbidden, writeRes.StatusCode)
}

func TestMessaging_Stranger(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _ := helpers.RegisterRandomUser(t, ts, "msg_str_owner")
	strangerToken, _ := helpers.RegisterRandomUser(t, ts, "msg_str_stranger")
	projectID := helpers.CreateProject(t, ts, ownerToken, "Members Only", "idea")

	readRes, _, readBodyStr := listMessages(t, ts, strangerToken, projectID)
	assert.Equal(t, http.StatusForbidden, readRes.StatusCode)
	assert.Contains(t, readBodyStr, "approved applicants")

	writeRes, _ := sendMessage(t, ts, strangerToken, projectID, "Hello?")
	assert.Equal(t, http.StatusForbidden, writeRes.StatusCode)
}

func TestMessaging_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _ := helpers.RegisterRandomUser(t, ts, "msg_auth_owner")
	projectID := helpers.CreateProject(t, ts, ownerToken, "Token Required", "idea")

	res, _ := ts.SendRequest(t, "GET", "/api/messages/"+projectID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMessaging_EmptyContent(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _ := helpers.RegisterRandomUser(t, ts, "msg_empty_owner")
	projectID := helpers.CreateProject(t, ts, ownerToken, "No Blank Messages", "idea")

	// Whitespace-only content is rejected before anything is stored.
	res, _ := sendMessage(t, ts, ownerToken, projectID, "   ")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	listRes, messages, _ := listMessages(t, ts, ownerToken, projectID)
	require.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Empty(t, messages)
}

func TestMessaging_UnknownProject(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterRandomUser(t, ts, "msg_ghost")

	res, _ := sendMessage(t, ts, token, "00000000-0000-0000-0000-000000000000", "Anyone home?")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	listRes, _, _ := listMessages(t, ts, token, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, listRes.StatusCode)
}
