package chat

import (
	"context"
	"math/rand/v2"
	"time"
)

const keywordConfidence = 0.85

// Responder answers one validated chat message.
type Responder interface {
	Respond(ctx context.Context, message string) (Reply, error)
}

// KeywordResponder answers from a Dictionary after a simulated thinking delay
// of BaseDelay plus a uniform random share of Jitter.
type KeywordResponder struct {
	dict      *Dictionary
	baseDelay time.Duration
	jitter    time.Duration
	random    func() float64
}

func NewKeywordResponder(dict *Dictionary, baseDelay, jitter time.Duration) *KeywordResponder {
	return &KeywordResponder{
		dict:      dict,
		baseDelay: baseDelay,
		jitter:    jitter,
		random:    rand.Float64,
	}
}

func (r *KeywordResponder) Respond(ctx context.Context, message string) (Reply, error) {
	if err := r.wait(ctx); err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:        r.dict.Match(message),
		Confidence:  keywordConfidence,
		Suggestions: r.dict.Suggestions,
	}, nil
}

func (r *KeywordResponder) wait(ctx context.Context) error {
	delay := r.baseDelay + time.Duration(r.random()*float64(r.jitter))
	if delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
