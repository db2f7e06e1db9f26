package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"weatherscraper/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBotAPI имитирует Bot API: getMe и sendMessage
type fakeBotAPI struct {
	mu       sync.Mutex
	messages []map[string]string
	failSend bool
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Weather","username":"weather_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if f.failSend {
			_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.messages = append(f.messages, map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"text":       r.PostForm.Get("text"),
			"parse_mode": r.PostForm.Get("parse_mode"),
		})
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api *fakeBotAPI) *Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := NewClientWithEndpoint("test-token", 42, server.URL+"/bot%s/%s", zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClientWithEndpoint("", 42, "http://127.0.0.1/bot%s/%s", zap.NewNop())
	assert.Error(t, err)

	_, err = NewClientWithEndpoint("token", 0, "http://127.0.0.1/bot%s/%s", zap.NewNop())
	assert.Error(t, err)
}

func TestClient_NotifySuccess(t *testing.T) {
	api := &fakeBotAPI{}
	client := newTestClient(t, api)

	summary := &model.RunSummary{
		FilePath:  "files/weather_data_2024-02-01_12-00-00.txt",
		Rows:      3,
		StartedAt: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC),
		Duration:  time.Second,
	}
	require.NoError(t, client.Notify(context.Background(), summary, nil))

	require.Len(t, api.messages, 1)
	msg := api.messages[0]
	assert.Equal(t, "42", msg["chat_id"])
	assert.Equal(t, "HTML", msg["parse_mode"])
	assert.Contains(t, msg["text"], "Days: 3")
	assert.Contains(t, msg["text"], "weather_data_2024-02-01_12-00-00.txt")
}

func TestClient_NotifyFailure(t *testing.T) {
	api := &fakeBotAPI{}
	client := newTestClient(t, api)

	require.NoError(t, client.Notify(context.Background(), nil, errors.New("fetch stage failed: timeout")))
	require.Len(t, api.messages, 1)
	assert.Contains(t, api.messages[0]["text"], "fetch stage failed: timeout")
}

func TestClient_SendError(t *testing.T) {
	api := &fakeBotAPI{failSend: true}
	client := newTestClient(t, api)

	err := client.SendMessage("hello")
	assert.Error(t, err)
}
