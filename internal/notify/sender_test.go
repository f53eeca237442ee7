package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSenderPostsNotification(t *testing.T) {
	var got models.Notification
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := notify.NewWebhookSender(server.URL, "delivery-token", time.Second)
	notification := &models.Notification{
		TenantID: uuid.New(),
		Title:    "Account approved",
		Type:     models.NotificationTypeSuccess,
	}

	require.NoError(t, sender.Send(notification))
	assert.Equal(t, "Bearer delivery-token", gotAuth)
	assert.Equal(t, notification.Title, got.Title)
}

func TestWebhookSenderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := notify.NewWebhookSender(server.URL, "", time.Second)
	err := sender.Send(&models.Notification{Title: "x"})
	assert.ErrorContains(t, err, "502")
}

func TestWebhookSenderUnreachableEndpoint(t *testing.T) {
	sender := notify.NewWebhookSender("http://127.0.0.1:1/webhook", "", 100*time.Millisecond)
	err := sender.Send(&models.Notification{Title: "x"})
	assert.Error(t, err)
}

func TestNoopSender(t *testing.T) {
	assert.NoError(t, notify.NoopSender{}.Send(&models.Notification{}))
}
