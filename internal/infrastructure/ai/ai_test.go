package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/pkg/config"
)

func TestAnthropicService_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "k-123", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sys", req.System)
		if assert.Len(t, req.Messages, 1) {
			assert.Equal(t, "¿Total?", req.Messages[0].Content)
		}

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"` + "```\\n1.234,50\\n```" + `"}]}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("k-123", "")
	s.baseURL = srv.URL

	out, err := s.Complete(context.Background(), "sys", "¿Total?")
	require.NoError(t, err)
	assert.Equal(t, "1.234,50", out)
	assert.Equal(t, ProviderAnthropic, s.Provider())
}

func TestAnthropicService_ErrorAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("k", "")
	s.baseURL = srv.URL

	_, err := s.Complete(context.Background(), "sys", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}

func TestAnthropicService_Cancelacion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	s := NewAnthropicService("k", "")
	s.baseURL = srv.URL
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := s.Complete(ctx, "sys", "u")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGeminiService_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"), "la key no viaja en la URL")

		var req struct {
			SystemInstruction struct {
				Parts []struct{ Text string } `json:"parts"`
			} `json:"systemInstruction"`
			Contents []struct {
				Parts []struct{ Text string } `json:"parts"`
			} `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.SystemInstruction.Parts, 1) {
			assert.Equal(t, "sys", req.SystemInstruction.Parts[0].Text)
		}
		if assert.Len(t, req.Contents, 1) {
			assert.Equal(t, "u", req.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"INV-"},{"text":"001"}]}}]}`))
	}))
	defer srv.Close()

	s, err := newGeminiService("g-key", "gemini-test", srv.URL)
	require.NoError(t, err)

	out, err := s.Complete(context.Background(), "sys", "u")
	require.NoError(t, err)
	assert.Equal(t, "INV-001", out)
}

func TestGeminiService_ErrorAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	s, err := newGeminiService("g-key", "gemini-test", srv.URL)
	require.NoError(t, err)

	_, err = s.Complete(context.Background(), "sys", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.NotContains(t, err.Error(), "g-key")
}

func TestGeminiService_RespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	s, err := newGeminiService("g-key", "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, geminiDefaultModel, s.model)

	_, err = s.Complete(context.Background(), "sys", "u")
	assert.ErrorContains(t, err, "respuesta vacía")
}

func TestGeminiService_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	llm, err := New(config.AIConfig{Provider: ProviderAnthropic})
	require.NoError(t, err)
	assert.Nil(t, llm)
	llm, err = New(config.AIConfig{Provider: ProviderGemini, AnthropicAPIKey: "x"})
	require.NoError(t, err)
	assert.Nil(t, llm)

	llm, err = New(config.AIConfig{Provider: ProviderGemini, GeminiAPIKey: "g"})
	require.NoError(t, err)
	require.NotNil(t, llm)
	assert.Equal(t, ProviderGemini, llm.Provider())

	llm, err = New(config.AIConfig{Provider: ProviderAnthropic, AnthropicAPIKey: "a"})
	require.NoError(t, err)
	require.NotNil(t, llm)
	assert.Equal(t, ProviderAnthropic, llm.Provider())
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "42", stripCodeFence("```text\n42\n```"))
	assert.Equal(t, "plain", stripCodeFence("  plain \n"))
}
