package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"incubator/pkg/logging"
)

const (
	geminiConfidence = 0.8
	systemPrompt     = "You are the assistant on a startup incubator website. Answer questions about programs, " +
		"applications, funding, mentorship and events in at most three friendly sentences. " +
		"If you are unsure, point the visitor to the Programs page or suggest scheduling a call with the team."
)

var errEmptyGeneration = errors.New("empty generation")

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiResponder answers with a Gemini model and falls back to another
// responder whenever generation fails or returns nothing.
type GeminiResponder struct {
	models   contentGenerator
	model    string
	fallback Responder
	log      *logging.Logger
}

func NewGeminiResponder(ctx context.Context, apiKey, model string, fallback Responder, log *logging.Logger) (*GeminiResponder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGeminiResponder(client.Models, model, fallback, log), nil
}

func newGeminiResponder(models contentGenerator, model string, fallback Responder, log *logging.Logger) *GeminiResponder {
	if log == nil {
		log = logging.NewNop()
	}
	return &GeminiResponder{models: models, model: model, fallback: fallback, log: log.Named("gemini")}
}

func (g *GeminiResponder) Respond(ctx context.Context, message string) (Reply, error) {
	text, err := g.generate(ctx, message)
	if err == nil {
		reply := Reply{Text: text, Confidence: geminiConfidence}
		if kr, ok := g.fallback.(*KeywordResponder); ok {
			reply.Suggestions = kr.dict.Suggestions
		}
		return reply, nil
	}

	if ctx.Err() != nil || g.fallback == nil {
		return Reply{}, err
	}
	g.log.Warn("gemini generation failed, using keyword answers", "error", err)
	return g.fallback.Respond(ctx, message)
}

func (g *GeminiResponder) generate(ctx context.Context, message string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(message, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
			MaxOutputTokens:   256,
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errEmptyGeneration
	}
	return text, nil
}
