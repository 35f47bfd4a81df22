package advisory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrUnavailable indicates the advisory service is not configured.
	ErrUnavailable = errors.New("advisory service unavailable")
	// ErrRequest indicates an error during the advisory API request.
	ErrRequest = errors.New("advisory request failed")
	// ErrEmptyResponse indicates the advisory returned no usable content.
	ErrEmptyResponse = errors.New("empty advisory response")
)

const systemPrompt = `You are an analysis aid inside an adherence risk engine for behavior-change programs.

You receive structured JSON about one user's engagement metrics and context. You answer with EXACTLY the shape the request asks for: a single number, a comma-separated list of tags, or a small JSON array. No prose, no explanations, no markdown fences.

Your output is advisory only. It is validated and clamped by the caller; out-of-shape answers are discarded.`

// OpenAIClient implements Client using the OpenAI API. Every call carries a
// hard timeout so a slow model can never stall an evaluation cycle.
type OpenAIClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates an advisory client. Returns nil if apiKey is empty;
// a nil client disables the advisory path entirely.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Generate calls the model with the advisory system prompt.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrUnavailable
	}

	tracer := otel.Tracer("adherence-engine/advisory")
	ctx, span := tracer.Start(ctx, "OpenAIClient.Generate",
		trace.WithAttributes(
			attribute.String("llm.model", c.model),
			attribute.String("langfuse.observation.input", prompt),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		span.SetAttributes(attribute.String("llm.error", err.Error()))
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	span.SetAttributes(attribute.String("langfuse.observation.output", content))
	return content, nil
}
