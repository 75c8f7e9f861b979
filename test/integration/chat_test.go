package integration

import (
	"net/http"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type conversationResp struct {
	ID          string `json:"id"`
	PeerID      string `json:"peer_id"`
	UnreadCount int64  `json:"unread_count"`
	LastMessage *struct {
		Body string `json:"body"`
	} `json:"last_message"`
}

func openConversation(t *testing.T, ts *helpers.TestServer, token, peerID string) conversationResp {
	t.Helper()

	w := ts.SendRequest(http.MethodPost, "/api/v1/conversations", map[string]string{
		"peer_id": peerID,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var conv conversationResp
	ts.DecodeJSON(w, &conv)
	return conv
}

func TestConversationGetOrCreateIsIdempotent(t *testing.T) {
	ts := helpers.NewTestServer(t)
	aID, aToken := ts.CreateActiveUser("alice@example.com", models.UserRoleTalent, "Alice")
	bID, bToken := ts.CreateActiveUser("bob@example.com", models.UserRoleProducer, "Bob")

	first := openConversation(t, ts, aToken, bID)
	again := openConversation(t, ts, aToken, bID)
	reverse := openConversation(t, ts, bToken, aID)

	// One conversation per pair, whichever side opens it.
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, first.ID, reverse.ID)
	assert.Equal(t, bID, first.PeerID)
	assert.Equal(t, aID, reverse.PeerID)
}

func TestConversationWithSelfRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	userID, token := ts.CreateActiveUser("solo@example.com", models.UserRoleTalent, "Solo")

	w := ts.SendRequest(http.MethodPost, "/api/v1/conversations", map[string]string{
		"peer_id": userID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessagingFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, aToken := ts.CreateActiveUser("sender@example.com", models.UserRoleTalent, "Sender")
	bID, bToken := ts.CreateActiveUser("receiver@example.com", models.UserRoleProducer, "Receiver")

	conv := openConversation(t, ts, aToken, bID)

	w := ts.SendRequest(http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", map[string]string{
		"body": "Hello! Interested in your casting.",
	}, aToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.SendRequest(http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", map[string]string{
		"body": "Second message",
	}, aToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// Receiver sees two unread and the latest message in the list.
	w = ts.SendRequest(http.MethodGet, "/api/v1/conversations", nil, bToken)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Conversations []conversationResp `json:"conversations"`
	}
	ts.DecodeJSON(w, &list)
	require.Len(t, list.Conversations, 1)
	assert.Equal(t, int64(2), list.Conversations[0].UnreadCount)
	require.NotNil(t, list.Conversations[0].LastMessage)
	assert.Equal(t, "Second message", list.Conversations[0].LastMessage.Body)

	// Loading the thread marks it read, oldest first.
	w = ts.SendRequest(http.MethodGet, "/api/v1/conversations/"+conv.ID+"/messages", nil, bToken)
	require.Equal(t, http.StatusOK, w.Code)

	var thread struct {
		Messages []struct {
			Body string `json:"body"`
		} `json:"messages"`
	}
	ts.DecodeJSON(w, &thread)
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "Hello! Interested in your casting.", thread.Messages[0].Body)

	w = ts.SendRequest(http.MethodGet, "/api/v1/conversations", nil, bToken)
	ts.DecodeJSON(w, &list)
	assert.Equal(t, int64(0), list.Conversations[0].UnreadCount)

	// Messaging also raised a notification for the receiver.
	w = ts.SendRequest(http.MethodGet, "/api/v1/notifications", nil, bToken)
	var notifs struct {
		Notifications []struct {
			Type models.NotificationType `json:"type"`
		} `json:"notifications"`
	}
	ts.DecodeJSON(w, &notifs)
	require.NotEmpty(t, notifs.Notifications)
	assert.Equal(t, models.NotificationNewMessage, notifs.Notifications[0].Type)
}

func TestOutsiderCannotReadConversation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, aToken := ts.CreateActiveUser("one@example.com", models.UserRoleTalent, "One")
	bID, _ := ts.CreateActiveUser("two@example.com", models.UserRoleProducer, "Two")
	_, outsiderToken := ts.CreateActiveUser("three@example.com", models.UserRoleTalent, "Three")

	conv := openConversation(t, ts, aToken, bID)

	w := ts.SendRequest(http.MethodGet, "/api/v1/conversations/"+conv.ID+"/messages", nil, outsiderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.SendRequest(http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", map[string]string{
		"body": "let me in",
	}, outsiderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
