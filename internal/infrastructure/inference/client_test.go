package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette-backend/internal/config"
	"palette-backend/internal/seasons"
)

const validAnswer = `{
	"season": "Spring",
	"subseason": "Light Spring",
	"gender": "female",
	"recommendedColors": [
		{"name": "Coral", "hex": "#FF6F61", "reason": "Warms your golden undertones."},
		{"name": "Mint Green", "hex": "#98FB98", "reason": "Echoes your fresh lightness."},
		{"name": "Sky Blue", "hex": "#87CEEB", "reason": "Brightens your eyes."}
	]
}`

func completionBody(content string) string {
	wrapped, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(wrapped)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.InferenceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	return client, server
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	// Fails fast, before any network call is possible
	_, err := NewClient(config.InferenceConfig{BaseURL: "https://api.openai.com/v1"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClassify_Success(t *testing.T) {
	var gotPath, gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, completionBody(validAnswer))
	})

	result, err := client.Classify(context.Background(), "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)

	assert.Equal(t, seasons.Spring, result.Season)
	assert.Equal(t, seasons.LightSpring, result.SubSeason)
	assert.Equal(t, seasons.Female, result.Gender)
	require.Len(t, result.RecommendedColors, 3)
	assert.Equal(t, "Coral", result.RecommendedColors[0].Name)
	assert.Equal(t, "#FF6F61", result.RecommendedColors[0].Hex)
}

func TestClassify_NormalizesCasing(t *testing.T) {
	answer := `{
		"season": "winter",
		"subseason": "bright winter",
		"gender": "MALE",
		"recommendedColors": [
			{"name": "Emerald", "hex": "#50C878", "reason": "r1"},
			{"name": "Sapphire", "hex": "#0F52BA", "reason": "r2"},
			{"name": "Ruby", "hex": "#E0115F", "reason": "r3"}
		]
	}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(answer))
	})

	result, err := client.Classify(context.Background(), "https://cdn.example.com/p.jpg")
	require.NoError(t, err)

	assert.Equal(t, seasons.Winter, result.Season)
	assert.Equal(t, seasons.BrightWinter, result.SubSeason)
	assert.Equal(t, seasons.Male, result.Gender)
}

func TestClassify_InvalidResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "I think this person is a Spring!",
		},
		{
			name: "wrong color count",
			content: `{"season":"Spring","subseason":"Light Spring","gender":"female",
				"recommendedColors":[{"name":"Coral","hex":"#FF6F61","reason":"r"}]}`,
		},
		{
			name: "bad hex",
			content: `{"season":"Spring","subseason":"Light Spring","gender":"female",
				"recommendedColors":[
					{"name":"Coral","hex":"coral","reason":"r"},
					{"name":"Mint","hex":"#98FB98","reason":"r"},
					{"name":"Sky","hex":"#87CEEB","reason":"r"}]}`,
		},
		{
			name: "unknown sub-season",
			content: `{"season":"Spring","subseason":"Deep Spring","gender":"female",
				"recommendedColors":[
					{"name":"Coral","hex":"#FF6F61","reason":"r"},
					{"name":"Mint","hex":"#98FB98","reason":"r"},
					{"name":"Sky","hex":"#87CEEB","reason":"r"}]}`,
		},
		{
			name: "sub-season outside season family",
			content: `{"season":"Winter","subseason":"Light Spring","gender":"female",
				"recommendedColors":[
					{"name":"Coral","hex":"#FF6F61","reason":"r"},
					{"name":"Mint","hex":"#98FB98","reason":"r"},
					{"name":"Sky","hex":"#87CEEB","reason":"r"}]}`,
		},
		{
			name: "unknown gender",
			content: `{"season":"Spring","subseason":"Light Spring","gender":"robot",
				"recommendedColors":[
					{"name":"Coral","hex":"#FF6F61","reason":"r"},
					{"name":"Mint","hex":"#98FB98","reason":"r"},
					{"name":"Sky","hex":"#87CEEB","reason":"r"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, completionBody(tt.content))
			})

			_, err := client.Classify(context.Background(), "https://cdn.example.com/p.jpg")
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClassify_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Classify(context.Background(), "https://cdn.example.com/p.jpg")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClassify_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		fmt.Fprint(w, completionBody(validAnswer))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Classify(ctx, "https://cdn.example.com/p.jpg")
	assert.ErrorIs(t, err, ErrUpstream)
}
