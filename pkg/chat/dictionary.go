package chat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dictionary.yaml
var defaultDictionary []byte

var ErrInvalidDictionary = errors.New("invalid chat dictionary")

type Entry struct {
	Keyword  string `yaml:"keyword"`
	Response string `yaml:"response"`
}

// Rule is a pattern fallback. Use names a keyword whose response is reused.
type Rule struct {
	All      []string `yaml:"all"`
	Any      []string `yaml:"any"`
	Use      string   `yaml:"use"`
	Response string   `yaml:"response"`
}

// Dictionary is the ordered keyword table behind the mock assistant.
type Dictionary struct {
	Keywords    []Entry  `yaml:"keywords"`
	Fallbacks   []Rule   `yaml:"fallbacks"`
	Default     string   `yaml:"default"`
	Suggestions []string `yaml:"suggestions"`

	byKeyword map[string]string
}

// LoadDictionary parses the YAML file at path, or the built-in dictionary when path is empty.
func LoadDictionary(path string) (*Dictionary, error) {
	raw := defaultDictionary
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read chat dictionary: %w", err)
		}
		raw = b
	}
	return ParseDictionary(raw)
}

func ParseDictionary(raw []byte) (*Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Dictionary) index() error {
	if len(d.Keywords) == 0 {
		return fmt.Errorf("%w: no keywords", ErrInvalidDictionary)
	}
	if strings.TrimSpace(d.Default) == "" {
		return fmt.Errorf("%w: missing default response", ErrInvalidDictionary)
	}

	d.byKeyword = make(map[string]string, len(d.Keywords))
	for i, e := range d.Keywords {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" || e.Response == "" {
			return fmt.Errorf("%w: keyword entry %d is incomplete", ErrInvalidDictionary, i)
		}
		if _, dup := d.byKeyword[kw]; dup {
			return fmt.Errorf("%w: keyword %q repeated", ErrInvalidDictionary, kw)
		}
		d.Keywords[i].Keyword = kw
		d.byKeyword[kw] = e.Response
	}

	for i, r := range d.Fallbacks {
		if len(r.All) == 0 && len(r.Any) == 0 {
			return fmt.Errorf("%w: fallback %d has no terms", ErrInvalidDictionary, i)
		}
		d.Fallbacks[i].All = lowerAll(r.All)
		d.Fallbacks[i].Any = lowerAll(r.Any)
		if r.Response == "" {
			resp, ok := d.byKeyword[strings.ToLower(r.Use)]
			if !ok {
				return fmt.Errorf("%w: fallback %d uses unknown keyword %q", ErrInvalidDictionary, i, r.Use)
			}
			d.Fallbacks[i].Response = resp
		}
	}
	return nil
}

// Match returns the response for message: the first keyword contained in it,
// then the first matching fallback rule, then the default.
func (d *Dictionary) Match(message string) string {
	lower := strings.ToLower(message)

	for _, e := range d.Keywords {
		if strings.Contains(lower, e.Keyword) {
			return e.Response
		}
	}

	for _, r := range d.Fallbacks {
		if r.matches(lower) {
			return r.Response
		}
	}

	return d.Default
}

func (r Rule) matches(lower string) bool {
	for _, t := range r.All {
		if !strings.Contains(lower, t) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, t := range r.Any {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return out
}
