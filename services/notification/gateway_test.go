package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSChannel_PostsToGateway(t *testing.T) {
	var got smsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewSMSChannel(srv.URL, "key-1", "RENTWISE")
	err := ch.Send(context.Background(),
		&models.User{ID: "u1", PhoneNumber: "+639171234567"},
		models.Notification{Title: "Rent due", Message: "Rent is due on Jan 2, 2025"})
	require.NoError(t, err)

	assert.Equal(t, "key-1", got.APIKey)
	assert.Equal(t, "+639171234567", got.Number)
	assert.Equal(t, "Rent due: Rent is due on Jan 2, 2025", got.Message)
}

func TestSMSChannel_NoPhoneIsSkipped(t *testing.T) {
	ch := NewSMSChannel("http://127.0.0.1:0", "k", "s")
	err := ch.Send(context.Background(), &models.User{ID: "u1"}, models.Notification{})
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestEmailChannel_ReportsGatewayErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad sender"}`))
	}))
	defer srv.Close()

	ch := NewEmailChannel(srv.URL, "secret", "no-reply@rentwise.local")
	err := ch.Send(context.Background(),
		&models.User{ID: "u1", Email: "tenant@example.com"},
		models.Notification{Title: "Lease assigned", Message: "Welcome"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
