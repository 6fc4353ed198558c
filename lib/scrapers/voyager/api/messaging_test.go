package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"voyager-client/lib/jsonnav"
	"voyager-client/lib/scrapers/voyager/core"

	"github.com/stretchr/testify/require"
)

func TestGetConversations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/messaging/conversations", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "LEGACY_INBOX", r.URL.Query().Get("keyVersion"))
		_, _ = w.Write([]byte(`{
			"elements": [
				{"entityUrn": "urn:li:fs_conversation:2-abc"},
				{"entityUrn": "urn:li:fs_conversation:2-def"}
			]
		}`))
	})

	client := newTestClient(t, mux)
	conversations, err := client.GetConversations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Conversation{{ID: "2-abc"}, {ID: "2-def"}}, conversations)
}

func TestGetConversationDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/messaging/conversations", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "participants", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"elements": [{"entityUrn": "urn:li:fs_conversation:2-abc"}]}`))
	})

	client := newTestClient(t, mux)
	details, err := client.GetConversationDetails(context.Background(), "urn:li:fs_miniProfile:AbC123")
	require.NoError(t, err)
	require.Equal(t, "2-abc", details.ID)
}

func TestSendMessageToConversation(t *testing.T) {
	var payload jsonnav.Node
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messaging/conversations/2-abc/events", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "create", r.URL.Query().Get("action"))
		raw, _ := io.ReadAll(r.Body)
		payload, _ = jsonnav.Decode(raw)
		w.WriteHeader(http.StatusCreated)
	})

	client := newTestClient(t, mux)
	err := client.SendMessage(context.Background(), "2-abc", nil, "hello there")
	require.NoError(t, err)

	body := payload.
		Get("eventCreate").Get("value").
		Get("com.linkedin.voyager.messaging.create.MessageCreate")
	require.Equal(t, "hello there", body.Get("body").Str())
	require.Equal(t, "hello there", body.Get("attributedBody").Get("text").Str())
}

func TestSendMessageToRecipients(t *testing.T) {
	var payload jsonnav.Node
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messaging/conversations", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "create", r.URL.Query().Get("action"))
		raw, _ := io.ReadAll(r.Body)
		payload, _ = jsonnav.Decode(raw)
		w.WriteHeader(http.StatusCreated)
	})

	client := newTestClient(t, mux)
	err := client.SendMessage(context.Background(), "", []string{"urn:li:fs_miniProfile:AbC123"}, "hi")
	require.NoError(t, err)

	require.Equal(t, "LEGACY_INBOX", payload.Get("keyVersion").Str())
	create := payload.Get("conversationCreate")
	require.Equal(t, "MEMBER_TO_MEMBER", create.Get("subtype").Str())
	require.Equal(t, "urn:li:fs_miniProfile:AbC123", create.Get("recipients").Index(0).Str())
}

func TestSendMessageValidation(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	err := client.SendMessage(context.Background(), "", nil, "hello")
	require.ErrorIs(t, err, core.ErrInvalidInput)

	err = client.SendMessage(context.Background(), "2-abc", nil, "")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messaging/conversations/2-abc/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	client := newTestClient(t, mux)
	err := client.SendMessage(context.Background(), "2-abc", nil, "hello")

	var status core.StatusError
	require.ErrorAs(t, err, &status)
	require.Equal(t, http.StatusBadRequest, status.Code)
}

func TestMarkConversationSeen(t *testing.T) {
	var payload map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messaging/conversations/2-abc", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	})

	client := newTestClient(t, mux)
	err := client.MarkConversationSeen(context.Background(), "2-abc")
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"patch": map[string]any{"$set": map[string]any{"read": true}},
	}, payload)
}

func TestMarkConversationSeenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messaging/conversations/2-abc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	client := newTestClient(t, mux)
	err := client.MarkConversationSeen(context.Background(), "2-abc")

	var status core.StatusError
	require.ErrorAs(t, err, &status)
	require.Equal(t, http.StatusForbidden, status.Code)
}
