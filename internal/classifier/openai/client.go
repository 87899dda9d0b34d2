package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/config"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

const defaultMaxTokensPerBatch = 20000

var _ classifier.Gateway = (*Client)(nil)

type Client struct {
	httpClient        *resty.Client
	model             string
	maxRetryAttempts  uint
	retryDelay        time.Duration
	maxTokensPerBatch int
	now               func() time.Time
}

func NewClient(cfg config.OpenAIConfig, maxTokensPerBatch int) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/"))
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	if maxTokensPerBatch <= 0 {
		maxTokensPerBatch = defaultMaxTokensPerBatch
	}
	return &Client{
		httpClient:        client,
		model:             cfg.Model,
		maxRetryAttempts:  cfg.MaxRetryAttempts,
		retryDelay:        500 * time.Millisecond,
		maxTokensPerBatch: maxTokensPerBatch,
		now:               time.Now,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
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

// Classify implements the classifier.Gateway interface
func (client *Client) Classify(ctx context.Context, req classifier.ClassifyRequest) (classifier.ClassifyResponse, error) {
	var result classifier.ClassifyResponse
	if err := client.complete(ctx, "classify", classifyPrompt, req.Note, &result); err != nil {
		return classifier.ClassifyResponse{}, err
	}
	if result.Kind != classifier.KindInspiration && result.Kind != classifier.KindTask {
		return classifier.ClassifyResponse{}, flow.New(flow.ErrService, "classify", "unknown classification %q", result.Kind)
	}
	return result, nil
}

// Categorize implements the classifier.Gateway interface
func (client *Client) Categorize(ctx context.Context, req classifier.CategorizeRequest) (classifier.CategorizeResponse, error) {
	existing := req.ActiveCategories
	if existing == nil {
		existing = []string{}
	}
	payload := struct {
		Title              string   `json:"title"`
		Body               string   `json:"body"`
		ExistingCategories []string `json:"existing_categories"`
	}{Title: req.Note.Title, Body: req.Note.Body, ExistingCategories: existing}

	var result classifier.CategorizeResponse
	if err := client.complete(ctx, "categorize", categorizePrompt, payload, &result); err != nil {
		return classifier.CategorizeResponse{}, err
	}
	result.Category = strings.TrimSpace(result.Category)
	if result.Category == "" {
		return classifier.CategorizeResponse{}, flow.New(flow.ErrService, "categorize", "empty category")
	}
	return result, nil
}

// Translate implements the classifier.Gateway interface
func (client *Client) Translate(ctx context.Context, req classifier.TranslateRequest) (classifier.TranslateResponse, error) {
	today := req.Today
	if today == "" {
		today = client.now().Format(time.DateOnly)
	}
	payload := struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Today string `json:"today"`
	}{Title: req.Note.Title, Body: req.Note.Body, Today: today}

	var result classifier.TranslateResponse
	if err := client.complete(ctx, "translate", translatePrompt, payload, &result); err != nil {
		return classifier.TranslateResponse{}, err
	}
	if result.Suggestions == nil {
		result.Suggestions = []classifier.TaskSuggestion{}
	}
	return result, nil
}

// SelectFolders implements the classifier.Gateway interface
func (client *Client) SelectFolders(ctx context.Context, req classifier.SelectFoldersRequest) (classifier.SelectFoldersResponse, error) {
	payload := struct {
		Question            string                   `json:"question"`
		Folders             []classifier.FolderInput `json:"folders"`
		ConversationHistory string                   `json:"conversation_history"`
	}{Question: req.Question, Folders: req.Folders, ConversationHistory: formatHistory(req.History)}

	var result classifier.SelectFoldersResponse
	if err := client.complete(ctx, "select_folders", selectFoldersPrompt, payload, &result); err != nil {
		return classifier.SelectFoldersResponse{}, err
	}
	return result, nil
}

// AnswerQuestion implements the classifier.Gateway interface
func (client *Client) AnswerQuestion(ctx context.Context, req classifier.AnswerQuestionRequest) (classifier.AnswerQuestionResponse, error) {
	payload := struct {
		Question            string                 `json:"question"`
		Notes               []classifier.NoteInput `json:"notes"`
		ConversationHistory string                 `json:"conversation_history"`
	}{Question: req.Question, Notes: req.Notes, ConversationHistory: formatHistory(req.History)}

	var result classifier.AnswerQuestionResponse
	if err := client.complete(ctx, "answer_question", answerQuestionPrompt, payload, &result); err != nil {
		return classifier.AnswerQuestionResponse{}, err
	}
	if result.Answer == "" {
		return classifier.AnswerQuestionResponse{}, flow.New(flow.ErrService, "answer_question", "empty answer")
	}
	return result, nil
}

func formatHistory(history []classifier.HistoryMessage) string {
	if len(history) == 0 {
		return "No previous conversation"
	}
	var b strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	return b.String()
}

// complete sends one JSON-mode chat completion and decodes its content into out.
// Transient failures are retried up to maxRetryAttempts times.
func (client *Client) complete(ctx context.Context, op, systemPrompt string, payload any, out any) error {
	userContent, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: string(userContent)},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	// Only the transport is retried; the content is decoded once, from the final answer.
	var content string
	err = client.withRetry(ctx, op, func() error {
		var err error
		content, err = client.completeOnce(ctx, op, requestBody)
		return err
	})
	if err != nil {
		if flow.KindOf(err) == nil {
			// Cancelled or timed out while waiting for a retry.
			return flow.Wrap(flow.ErrNetwork, op, err)
		}
		return err
	}
	return decodeContent(op, content, out)
}

func (client *Client) completeOnce(ctx context.Context, op string, requestBody ChatCompletionRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", flow.Wrap(flow.ErrNetwork, op, err)
	}
	if response.IsError() {
		return "", flow.Wrap(flow.ErrService, op, &responseError{StatusCode: response.StatusCode(), Body: response.String()})
	}

	responseBody, _ := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", flow.New(flow.ErrService, op, "empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", flow.New(flow.ErrService, op, "empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"operation", op,
		"response", responseBody,
	)
	return content, nil
}

func decodeContent(op, content string, out any) error {
	if err := json.NewDecoder(strings.NewReader(content)).Decode(out); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"operation", op,
			"content", content,
			"error", err)
		return flow.Wrap(flow.ErrService, op, &decodeError{err: err})
	}
	return nil
}

// responseError is a non-2xx answer of the API.
type responseError struct {
	StatusCode int
	Body       string
}

func (e *responseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// decodeError is a completion whose content is not the requested JSON.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("json.Unmarshal > %v", e.err)
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func asResponseError(err error) (*responseError, bool) {
	var respErr *responseError
	ok := errors.As(err, &respErr)
	return respErr, ok
}
