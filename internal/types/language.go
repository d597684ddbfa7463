package types

import (
	"fmt"
	"regexp"
	"strings"
)

// TagPlain is the undetermined sentinel: the tag a document carries before any
// evidence points at a real catalog language. Highlighters treat it as plain text.
const TagPlain = "plain"

// Language is a single catalog entry, loaded from a per-language YAML file.
type Language struct {
	Tag        string      `yaml:"tag" json:"tag"`
	Name       string      `yaml:"name" json:"name"`
	Priority   int         `yaml:"priority" json:"priority"`
	Extensions []string    `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Filenames  []string    `yaml:"filenames,omitempty" json:"filenames,omitempty"`
	Signatures []Signature `yaml:"signatures,omitempty" json:"signatures,omitempty"`
}

// Signature is one weighted content pattern. Pattern is a lowercase substring
// by default; wrapping it in slashes (/.../) makes it a regular expression.
type Signature struct {
	Pattern string  `yaml:"pattern" json:"pattern"`
	Weight  float64 `yaml:"weight" json:"weight"`
}

// CompiledSignature is a pre-compiled signature pattern for scoring.
type CompiledSignature struct {
	Regex  *regexp.Regexp // nil for plain substring patterns
	Token  string         // lowercased substring when Regex is nil
	Weight float64
}

// Compile prepares a signature for matching against lowercased content.
func (s *Signature) Compile() (*CompiledSignature, error) {
	pattern := s.Pattern
	if pattern == "" {
		return nil, fmt.Errorf("signature requires pattern")
	}

	if len(pattern) > 2 && pattern[0] == '/' && pattern[len(pattern)-1] == '/' {
		regex, err := regexp.Compile(pattern[1 : len(pattern)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid signature pattern %q: %w", pattern, err)
		}
		return &CompiledSignature{Regex: regex, Weight: s.Weight}, nil
	}

	return &CompiledSignature{Token: strings.ToLower(pattern), Weight: s.Weight}, nil
}

// Match reports whether the signature occurs in the content. The content must
// already be lowercased; occurrence count is not tracked, a pattern scores at
// most once per document.
func (cs *CompiledSignature) Match(content string) bool {
	if cs.Regex != nil {
		return cs.Regex.MatchString(content)
	}
	return strings.Contains(content, cs.Token)
}
