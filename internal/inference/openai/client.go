package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/mathgrade/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Incomplete responses often fail to decode
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	if strings.Contains(errStr, "response error 5") {
		return true
	}

	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// GenerateProblems implements the inference.Client interface
func (client *Client) GenerateProblems(
	ctx context.Context,
	params inference.GenerateProblemsRequest,
) (inference.GenerateProblemsResponse, error) {
	var result inference.GenerateProblemsResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateProblems(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Warn("retrying problem generation",
					"unit", params.UnitName,
					"error", err)
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateProblemsResponse{}, err
	}
	return result, nil
}

const systemPrompt = `You write practice problems for Korean middle-school mathematics.

Return ONLY a JSON array. Each element is an object:
- "question": the problem text shown to the student
- "question2": the bare linear equation in x when "question" is a sentence, otherwise omit it
- "answer": the exact solution for x, written as an integer, a decimal, or a fraction a/b

RULES
- Every equation must be linear in x and have exactly one solution.
- Use only digits, x, + - * / ( ) and a single =.
- Do not put "x=" in front of the answer.
- No text outside the JSON.`

type generateRequest struct {
	UnitName string `json:"unit_name"`
	Count    int    `json:"count"`
}

var fewShotRequest = generateRequest{UnitName: "일차방정식", Count: 2}

var fewShotAnswer = []inference.GeneratedProblem{
	{Question: "2x+3=7", Answer: "2"},
	{Question: "어떤 수의 3배에서 4를 빼면 11일 때, 어떤 수를 구하시오.", Question2: "3x-4=11", Answer: "5"},
}

func (client *Client) getRequestBody(args inference.GenerateProblemsRequest) (ChatCompletionRequest, error) {
	exampleRequest, err := json.Marshal(fewShotRequest)
	if err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("failed to marshal example user request: %w", err)
	}
	exampleAnswer, err := json.Marshal(fewShotAnswer)
	if err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("failed to marshal example assistant answer: %w", err)
	}
	userContent, err := json.Marshal(generateRequest{UnitName: args.UnitName, Count: args.Count})
	if err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: string(exampleRequest)},
			{Role: RoleAssistant, Content: string(exampleAnswer)},
			{Role: RoleUser, Content: string(userContent)},
		},
	}, nil
}

func (client *Client) generateProblems(
	ctx context.Context,
	args inference.GenerateProblemsRequest,
) (inference.GenerateProblemsResponse, error) {
	if args.Count <= 0 {
		return inference.GenerateProblemsResponse{}, nil
	}

	requestBody, err := client.getRequestBody(args)
	if err != nil {
		return inference.GenerateProblemsResponse{}, fmt.Errorf("getRequestBody > %w", err)
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.GenerateProblemsResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.GenerateProblemsResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.GenerateProblemsResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.GenerateProblemsResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"unit", args.UnitName,
		"response", responseBody,
	)

	var decoded []inference.GeneratedProblem
	if err := json.Unmarshal([]byte(extractJSONArray(content)), &decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"unit", args.UnitName,
			"error", err)
		return inference.GenerateProblemsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return inference.GenerateProblemsResponse{Problems: decoded}, nil
}

// extractJSONArray returns the first complete top-level JSON array in content,
// dropping any surrounding prose or code fences.
func extractJSONArray(content string) string {
	start := -1
	depth := 0
	inString := false
	escapeNext := false

	for i, ch := range content {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '[':
			if start == -1 {
				start = i
			}
			depth++
		case ']':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return content
}
