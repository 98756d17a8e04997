// Package ai wraps the external generative model behind typed operations.
// Every call is a single blocking round trip: no caching, no streaming and
// no internal retries. Output that cannot be decoded into the expected
// structure fails closed with ErrMalformedAIResponse.
package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	"github.com/askiep/askiep-api/pkg/config"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

// Completer issues one chat completion. Abstracted so tests can stub the
// model without a network round trip.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type openaiCompleter struct {
	client openai.Client
	model  string
}

func (c *openaiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}

// Gateway translates domain requests into model calls.
type Gateway struct {
	completer Completer
	logger    *zap.Logger
}

// NewGateway builds a gateway over the configured OpenAI-compatible endpoint.
func NewGateway(cfg config.AIConfig, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	return &Gateway{
		completer: &openaiCompleter{client: openai.NewClient(opts...), model: model},
		logger:    logger,
	}
}

// NewGatewayWithCompleter wires a custom completer, used by tests and the
// API client's embedded gateway.
func NewGatewayWithCompleter(completer Completer, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{completer: completer, logger: logger}
}

// AnalyzeIEP extracts a structured breakdown from raw IEP text.
func (g *Gateway) AnalyzeIEP(ctx context.Context, text string) (*models.IepAnalysis, error) {
	raw, err := g.completer.Complete(ctx, analyzerPrompt,
		fmt.Sprintf("Analyze the following IEP document text and return a structured JSON response:\n\n%s", text))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	analysis, err := decodeAnalysis(raw)
	if err != nil {
		g.logger.Warn("malformed analyzer response", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedAIResponse.Code, appErrors.ErrMalformedAIResponse.Status, appErrors.ErrMalformedAIResponse.Message)
	}
	return analysis, nil
}

// CompareIEPs contrasts an old and new IEP version.
func (g *Gateway) CompareIEPs(ctx context.Context, oldText, newText string) (*models.IepComparison, error) {
	raw, err := g.completer.Complete(ctx, comparerPrompt,
		fmt.Sprintf("PREVIOUS IEP:\n%s\n\nNEW IEP:\n%s", oldText, newText))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	comparison, err := decodeComparison(raw)
	if err != nil {
		g.logger.Warn("malformed comparer response", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedAIResponse.Code, appErrors.ErrMalformedAIResponse.Status, appErrors.ErrMalformedAIResponse.Message)
	}
	return comparison, nil
}

// GenerateLetter drafts an advocacy letter of the given type.
func (g *Gateway) GenerateLetter(ctx context.Context, letterType, details string) (string, error) {
	return g.freeText(ctx, letterPrompt, fmt.Sprintf("Letter Type: %s\nDetails: %s", letterType, details))
}

// ReviseLetter rewrites an existing letter per the instruction.
func (g *Gateway) ReviseLetter(ctx context.Context, current, instruction string) (string, error) {
	return g.freeText(ctx, editorPrompt,
		fmt.Sprintf("Original Text:\n%s\n\nInstruction: Rewrite the text above to be %s. Keep the core meaning but change the length/tone as requested. Output ONLY the new text.", current, instruction))
}

// SimulateMeeting plays one turn of a mock IEP team meeting.
func (g *Gateway) SimulateMeeting(ctx context.Context, userMessage, childContext string) (string, error) {
	return g.freeText(ctx, meetingPrompt, fmt.Sprintf("Context: %s\nParent says: %s", childContext, userMessage))
}

// LegalAnswer answers a plain-English IDEA question.
func (g *Gateway) LegalAnswer(ctx context.Context, question string) (string, error) {
	return g.freeText(ctx, legalPrompt, question)
}

func (g *Gateway) freeText(ctx context.Context, system, user string) (string, error) {
	raw, err := g.completer.Complete(ctx, system, user)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	if raw == "" {
		return "", appErrors.Wrap(fmt.Errorf("empty completion"), appErrors.ErrMalformedAIResponse.Code, appErrors.ErrMalformedAIResponse.Status, appErrors.ErrMalformedAIResponse.Message)
	}
	return raw, nil
}
