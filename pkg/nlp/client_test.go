package nlp

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

func TestTruncateAtStop(t *testing.T) {
	tests := []struct {
		name string
		text string
		stop []string
		want string
	}{
		{"no stop sequences", "Apollo 11 launched.", nil, "Apollo 11 launched."},
		{"stop not present", "Apollo 11 launched.", []string{"User:"}, "Apollo 11 launched."},
		{"cuts at user turn", "July 16, 1969.\nUser: next", []string{"User:"}, "July 16, 1969.\n"},
		{"earliest stop wins", "a\n\nb User: c", []string{"User:", "\n\n"}, "a"},
		{"empty stop ignored", "abc", []string{""}, "abc"},
		{"stop at start", "User: hi", []string{"User:"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateAtStop(tt.text, tt.stop))
		})
	}
}

func TestDecodingParams(t *testing.T) {
	qa := QAParams()
	assert.Equal(t, 200, qa.MaxTokens)
	assert.Equal(t, float32(0), qa.Temperature)
	assert.Equal(t, float32(1), qa.TopP)
	assert.Equal(t, 1, qa.TopK)
	assert.Equal(t, []string{"User:", "\n\n"}, qa.Stop)

	ex := ExtractionParams()
	assert.Equal(t, 1250, ex.MaxTokens)
	assert.Equal(t, float32(1.1), ex.RepeatPenalty)
	assert.Equal(t, []string{"\n\n", "User:"}, ex.Stop)

	// each call returns a fresh value
	qa.Stop[0] = "changed"
	assert.Equal(t, "User:", QAParams().Stop[0])
}

func TestOpenAIBuildRequest(t *testing.T) {
	client, err := NewOpenAIClient("test-key", Config{})
	require.NoError(t, err)

	t.Run("defaults model", func(t *testing.T) {
		req := client.buildRequest("hello", nil)
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[0].Content)
		assert.Zero(t, req.MaxTokens)
	})

	t.Run("greedy qa decoding", func(t *testing.T) {
		req := client.buildRequest("q", QAParams())
		assert.Equal(t, float32(math.SmallestNonzeroFloat32), req.Temperature)
		assert.Equal(t, 200, req.MaxTokens)
		assert.Equal(t, float32(1), req.TopP)
		assert.Equal(t, []string{"User:", "\n\n"}, req.Stop)
	})

	t.Run("explicit temperature kept", func(t *testing.T) {
		req := client.buildRequest("q", &GenerateParams{Temperature: 0.7})
		assert.Equal(t, float32(0.7), req.Temperature)
		assert.Nil(t, req.Stop)
	})
}

func TestNewOpenAIClientBaseURL(t *testing.T) {
	_, err := NewOpenAIClient("", Config{BaseURL: "localhost:8080"})
	assert.Error(t, err)

	client, err := NewOpenAIClient("", Config{BaseURL: "http://localhost:8080/"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", client.config.Model)

	assert.True(t, hasAPIPath("http://localhost:8080/v1"))
	assert.False(t, hasAPIPath("http://localhost:8080"))
}

func TestNewClientFromConfig(t *testing.T) {
	t.Run("openai by default", func(t *testing.T) {
		client, err := NewClientFromConfig(config.NLPConfig{APIKey: "k"})
		require.NoError(t, err)
		_, ok := client.(*OpenAIClient)
		assert.True(t, ok)
		assert.True(t, HasCapability(client, TaskQuestionAnswering))
	})

	t.Run("unknown provider", func(t *testing.T) {
		client, err := NewClientFromConfig(config.NLPConfig{Provider: "gemini"})
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("rustbert", func(t *testing.T) {
		client, err := NewClientFromConfig(config.NLPConfig{Provider: "rustbert"})
		if err != nil {
			assert.Nil(t, client)
			assert.ErrorIs(t, err, ErrNativeRequired)
			return
		}
		t.Cleanup(func() { _ = client.Close() })
	})
}

type recordingAlerter struct {
	subjects []string
}

func (a *recordingAlerter) Alert(subject, message string) error {
	a.subjects = append(a.subjects, subject)
	return nil
}

func TestCircuitBreakerClientOpens(t *testing.T) {
	mock := &mockClient{failUntilCall: 100, errorToReturn: errors.New("503 service unavailable")}
	alerter := &recordingAlerter{}
	client := NewCircuitBreakerClient(mock, config.CircuitBreakerConfig{
		Enabled:     true,
		MaxRequests: 1,
		Interval:    60,
		Timeout:     60,
	}, alerter, "generation", nil)

	for i := 0; i < 3; i++ {
		_, err := client.Generate(context.Background(), "q", nil)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, client.State())
	require.Len(t, alerter.subjects, 1)
	assert.Contains(t, alerter.subjects[0], "generation")

	_, err := client.Generate(context.Background(), "q", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, mock.callCount)
}

func TestTokenTrackingClient(t *testing.T) {
	dir := t.TempDir()
	tracker, err := NewTokenTracker(dir, 10)
	require.NoError(t, err)

	mock := &mockClient{responseToReturn: &types.Response{
		Content: "July 16, 1969",
		Model:   "gpt-4o-mini",
		TokensUsed: &types.TokenUsage{
			PromptTokens:     40,
			CompletionTokens: 5,
			TotalTokens:      45,
		},
	}}
	client := NewTokenTrackingClient(mock, tracker, nil)

	ctx := context.WithValue(context.Background(), types.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, types.ContextKeyRequestID, "req-1")
	resp, err := client.Generate(ctx, "When did Apollo 11 launch?", QAParams())
	require.NoError(t, err)
	assert.Equal(t, "July 16, 1969", resp.Content)

	files, err := filepath.Glob(filepath.Join(dir, "*.parquet"))
	require.NoError(t, err)
	assert.Empty(t, files, "records stay buffered below the batch size")

	require.NoError(t, client.Close())

	files, err = filepath.Glob(filepath.Join(dir, "*.parquet"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	rows, err := parquet.ReadFile[TokenUsageRecord](files[0])
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gpt-4o-mini", rows[0].Model)
	assert.Equal(t, 45, rows[0].TotalTokens)
	assert.Equal(t, "user-1", rows[0].UserID)
	assert.Equal(t, "req-1", rows[0].RequestID)
	assert.NotEmpty(t, rows[0].ID)
}

func TestTokenTrackingClientSkipsMissingUsage(t *testing.T) {
	dir := t.TempDir()
	tracker, err := NewTokenTracker(dir, 1)
	require.NoError(t, err)

	client := NewTokenTrackingClient(&mockClient{}, tracker, nil)
	_, err = client.Generate(context.Background(), "q", nil)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.parquet"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
