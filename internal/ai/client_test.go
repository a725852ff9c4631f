package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteHonorsRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", 50*time.Millisecond,
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	start := time.Now()
	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:  "gpt-4o-mini",
		Prompt: "hello",
	})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestCompleteTrimsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  answer \n"}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", time.Minute,
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	got, err := client.Complete(context.Background(), CompletionRequest{
		Model:  "gpt-4o-mini",
		Prompt: "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "answer", got)
}
