package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/at-ishikawa/mathgrade/internal/inference"
)

func chatResponse(content string) ChatCompletionResponse {
	return ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4",
		Choices: []Choice{
			{
				Index: 0,
				Message: ChoiceMessage{
					Role:    RoleAssistant,
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: Usage{
			PromptTokens:     100,
			CompletionTokens: 50,
			TotalTokens:      150,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_GenerateProblems(t *testing.T) {
	tests := []struct {
		name              string
		request           inference.GenerateProblemsRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse    inference.GenerateProblemsResponse
		wantCalls       int32
		wantError       bool
		wantErrorString string
	}{
		{
			name:    "Success",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 2},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "gpt-4", reqBody.Model)
				require.Len(t, reqBody.Messages, 4)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.JSONEq(t, `{"unit_name":"일차방정식","count":2}`, reqBody.Messages[3].Content)

				writeJSON(w, http.StatusOK, chatResponse(`[
					{"question": "2x+3=7", "answer": "2"},
					{"question": "다음 방정식을 푸시오", "question2": "x/2=3", "answer": "6"}
				]`))
			},
			wantResponse: inference.GenerateProblemsResponse{
				Problems: []inference.GeneratedProblem{
					{Question: "2x+3=7", Answer: "2"},
					{Question: "다음 방정식을 푸시오", Question2: "x/2=3", Answer: "6"},
				},
			},
			wantCalls: 1,
		},
		{
			name:    "Array wrapped in a code fence",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, chatResponse("```json\n[{\"question\": \"x-1=2\", \"answer\": \"3\"}]\n```"))
			},
			wantResponse: inference.GenerateProblemsResponse{
				Problems: []inference.GeneratedProblem{
					{Question: "x-1=2", Answer: "3"},
				},
			},
			wantCalls: 1,
		},
		{
			name:    "Zero count - no HTTP request",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 0},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Error("unexpected request")
			},
			wantCalls: 0,
		},
		{
			name:    "HTTP 500 error is retried",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error": "internal"}`))
			},
			wantCalls:       2,
			wantError:       true,
			wantErrorString: "response error 500",
		},
		{
			name:    "HTTP 400 error is not retried",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": "bad request"}`))
			},
			wantCalls:       1,
			wantError:       true,
			wantErrorString: "response error 400",
		},
		{
			name:    "Invalid JSON response",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, chatResponse(`[{"question": "2x=4", "answer": `))
			},
			wantCalls:       2,
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name:    "Empty choices",
			request: inference.GenerateProblemsRequest{UnitName: "일차방정식", Count: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, ChatCompletionResponse{ID: "chatcmpl-1"})
			},
			wantCalls:       1,
			wantError:       true,
			wantErrorString: "empty response body or choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4",
				maxRetryAttempts: 1,
			}
			defer client.Close()

			got, gotErr := client.GenerateProblems(context.Background(), tt.request)
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantError {
				require.Error(t, gotErr)
				if tt.wantErrorString != "" {
					assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				}
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantResponse, got)
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "json decode", err: errString("json.Unmarshal([) > unexpected end of JSON input"), want: true},
		{name: "connection refused", err: errString("dial tcp: connection refused"), want: true},
		{name: "timeout", err: errString("read tcp: i/o timeout"), want: true},
		{name: "server error", err: errString("response error 503: unavailable"), want: true},
		{name: "rate limited", err: errString("response error 429: slow down"), want: true},
		{name: "client error", err: errString("response error 401: unauthorized"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bare array", content: `[{"a":1}]`, want: `[{"a":1}]`},
		{name: "surrounding prose", content: "Here you go:\n[1,[2]]\nDone.", want: `[1,[2]]`},
		{name: "brackets inside strings", content: `[{"q":"f(x]=1"}] trailing`, want: `[{"q":"f(x]=1"}]`},
		{name: "no array", content: `{"a":1}`, want: `{"a":1}`},
		{name: "unterminated", content: `[1, 2`, want: `[1, 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.content))
		})
	}
}
