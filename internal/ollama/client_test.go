package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsNonStreamingRequest(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"response": "drink water and rest"})
	}))
	defer server.Close()

	client := NewClient(Config{Host: server.URL, Model: "llava"})
	got, err := client.Generate(context.Background(), GenerateRequest{Prompt: "I have a headache"})
	require.NoError(t, err)

	assert.Equal(t, "drink water and rest", got)
	assert.Equal(t, "llava", captured["model"])
	assert.Equal(t, "I have a headache", captured["prompt"])
	assert.Equal(t, false, captured["stream"])
	_, hasImages := captured["images"]
	assert.False(t, hasImages, "images field omitted when there are none")
}

func TestGenerateEncodesImagesBase64(t *testing.T) {
	var captured struct {
		Images []string `json:"images"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := NewClient(Config{Host: server.URL, Model: "llava"})
	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	_, err := client.Generate(context.Background(), GenerateRequest{
		Prompt: "what is on this photo",
		Images: [][]byte{raw},
	})
	require.NoError(t, err)

	require.Len(t, captured.Images, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), captured.Images[0])
}

func TestGeneratePassesTemperatureOption(t *testing.T) {
	var captured struct {
		Options *struct {
			Temperature float64 `json:"temperature"`
		} `json:"options"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := NewClient(Config{Host: server.URL, Model: "llava"})
	temp := 0.1
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "p", Temperature: &temp})
	require.NoError(t, err)

	require.NotNil(t, captured.Options)
	assert.Equal(t, 0.1, captured.Options.Temperature)
}

func TestGenerateNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{Host: server.URL, Model: "missing"})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "p"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Body, "model not found")
	assert.NotErrorIs(t, err, ErrUnreachable)
}

func TestGenerateUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{Host: server.URL, Model: "llava"})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "p"})

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestGenerateContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{Host: server.URL, Model: "llava"})
	_, err := client.Generate(ctx, GenerateRequest{Prompt: "p"})

	assert.ErrorIs(t, err, ErrUnreachable)
}
