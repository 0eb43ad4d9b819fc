package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := LoadDictionary("")
	require.NoError(t, err)
	return d
}

func TestDictionary_FirstKeywordInOrderWins(t *testing.T) {
	d := mustDictionary(t)

	// "funding" is declared before "mentor" and "team".
	got := d.Match("Does the team get mentor support and FUNDING?")
	require.Equal(t, d.byKeyword["funding"], got)

	// "application" precedes "apply" even though "apply" appears first in the text.
	got = d.Match("apply now? what about the application")
	require.Equal(t, d.byKeyword["application"], got)
}

func TestDictionary_Fallbacks(t *testing.T) {
	d := mustDictionary(t)

	cases := map[string]string{
		"How can I join?":           d.byKeyword["application"],
		"What is the program like?": d.byKeyword["programs"],
		"When does it start?":       d.byKeyword["timeline"],
		"Is there a fee?":           "Our programs are equity-based - we take a small equity stake in exchange for funding and support. No upfront fees required!",
		"Tell me a joke":            d.Default,
	}
	for msg, want := range cases {
		require.Equal(t, want, d.Match(msg), msg)
	}
}

func TestDictionary_MultiWordKeyword(t *testing.T) {
	d := mustDictionary(t)
	require.Contains(t, d.Match("What happens at Demo Day?"), "Each cohort culminates in Demo Day")
}

func TestDictionary_Suggestions(t *testing.T) {
	d := mustDictionary(t)
	require.Equal(t, []string{
		"Tell me about your programs",
		"How do I apply?",
		"What funding do you provide?",
		"Who are your mentors?",
	}, d.Suggestions)
}

func TestParseDictionary_Invalid(t *testing.T) {
	cases := []string{
		`keywords: []
default: hi`,
		`keywords:
  - keyword: a
    response: x
  - keyword: A
    response: y
default: hi`,
		`keywords:
  - keyword: a
    response: x
fallbacks:
  - any: [b]
    use: missing
default: hi`,
		`keywords:
  - keyword: a
    response: x`,
		`: not yaml :`,
	}
	for _, raw := range cases {
		_, err := ParseDictionary([]byte(raw))
		require.ErrorIs(t, err, ErrInvalidDictionary, raw)
	}
}
