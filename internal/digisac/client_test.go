package digisac

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	c, err := New(Config{
		BaseURL:   ts.URL,
		APIToken:  "tok",
		ServiceID: "svc-1",
	})
	require.NoError(t, err)
	return c
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{APIToken: "t", ServiceID: "s"})
	assert.ErrorContains(t, err, "base URL")
	_, err = New(Config{BaseURL: "https://x", ServiceID: "s"})
	assert.ErrorContains(t, err, "API token")
	_, err = New(Config{BaseURL: "https://x", APIToken: "t"})
	assert.ErrorContains(t, err, "service id")
}

func TestSendMessagePayload(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, messagesPath, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	body, err := c.SendMessage(context.Background(), "5532999999999", "Olá, Maria!")
	require.NoError(t, err)
	assert.Contains(t, body, "msg-1")

	assert.Equal(t, "Olá, Maria!", got["text"])
	assert.Equal(t, "5532999999999", got["number"])
	assert.Equal(t, "svc-1", got["serviceId"])
	assert.Equal(t, "bot", got["origin"])
	assert.Equal(t, true, got["dontOpenticket"])
}

func TestSendMessageAcceptedStatuses(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		c := newTestClient(t, ts)
		_, err := c.SendMessage(context.Background(), "55329", "oi")
		assert.NoError(t, err, "status %d", code)
		ts.Close()
	}
}

func TestSendMessageRejectedCarriesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid number"}`, http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	_, err := c.SendMessage(context.Background(), "123", "oi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid number")
}
