package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text string
	err  error
	got  string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.got = model
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func TestGeminiResponder_UsesGeneration(t *testing.T) {
	gen := &fakeGenerator{text: "  We fund pre-seed teams.  "}
	fallback := NewKeywordResponder(mustDictionary(t), 0, 0)
	g := newGeminiResponder(gen, "gemini-2.0-flash", fallback, nil)

	reply, err := g.Respond(context.Background(), "do you fund pre-seed?")
	require.NoError(t, err)
	require.Equal(t, "We fund pre-seed teams.", reply.Text)
	require.Equal(t, "gemini-2.0-flash", gen.got)
	require.Len(t, reply.Suggestions, 4)
}

func TestGeminiResponder_FallsBackOnError(t *testing.T) {
	d := mustDictionary(t)
	g := newGeminiResponder(&fakeGenerator{err: errors.New("quota")}, "m", NewKeywordResponder(d, 0, 0), nil)

	reply, err := g.Respond(context.Background(), "tell me about equity")
	require.NoError(t, err)
	require.Equal(t, d.byKeyword["equity"], reply.Text)
}

func TestGeminiResponder_FallsBackOnEmptyText(t *testing.T) {
	d := mustDictionary(t)
	g := newGeminiResponder(&fakeGenerator{text: "   "}, "m", NewKeywordResponder(d, 0, 0), nil)

	reply, err := g.Respond(context.Background(), "xyz")
	require.NoError(t, err)
	require.Equal(t, d.Default, reply.Text)
}

func TestGeminiResponder_NoFallbackSurfacesError(t *testing.T) {
	g := newGeminiResponder(&fakeGenerator{err: errors.New("quota")}, "m", nil, nil)

	_, err := g.Respond(context.Background(), "hi")
	require.Error(t, err)
}

func TestNewGeminiResponder_RequiresKey(t *testing.T) {
	_, err := NewGeminiResponder(context.Background(), "", "m", nil, nil)
	require.Error(t, err)
}
