package catalog

import (
	"fmt"
	"strings"

	"github.com/neonvision/lang-engine/internal/types"
)

// Anchor is the compiled anchor policy. Token lists are lowercased once at
// build time; matching is case-insensitive substring containment.
type Anchor struct {
	Tag      string
	strong   []string
	evidence []string
}

func compileAnchor(policy types.AnchorPolicy, byTag map[string]types.Language) (*Anchor, error) {
	if policy.Tag == "" {
		return nil, fmt.Errorf("policy: anchor tag is required")
	}
	if _, ok := byTag[policy.Tag]; !ok {
		return nil, fmt.Errorf("policy: anchor tag %q is not in the catalog", policy.Tag)
	}

	return &Anchor{
		Tag:      policy.Tag,
		strong:   lowerAll(policy.StrongTokens),
		evidence: lowerAll(policy.EvidenceTokens),
	}, nil
}

// StrongSignal reports whether lowered content carries a near-unambiguous
// anchor token. True forces an immediate lock regardless of scores.
func (a *Anchor) StrongSignal(lowered string) bool {
	return containsAny(lowered, a.strong)
}

// Evidence is the lighter-weight heuristic: any anchor-idiomatic token,
// including the strong set.
func (a *Anchor) Evidence(lowered string) bool {
	return containsAny(lowered, a.strong) || containsAny(lowered, a.evidence)
}

// Pair is a compiled confusable pair.
type Pair struct {
	Primary    string
	Confusable string
	Margin     float64

	primaryEvidence    []string
	confusableEvidence []string
}

func compilePair(pair types.ConfusablePair, byTag map[string]types.Language) (*Pair, error) {
	if _, ok := byTag[pair.Primary]; !ok {
		return nil, fmt.Errorf("policy: confusable primary %q is not in the catalog", pair.Primary)
	}
	if _, ok := byTag[pair.Confusable]; !ok {
		return nil, fmt.Errorf("policy: confusable tag %q is not in the catalog", pair.Confusable)
	}
	if pair.Margin <= 0 {
		return nil, fmt.Errorf("policy: pair %s/%s requires a positive margin", pair.Primary, pair.Confusable)
	}

	return &Pair{
		Primary:            pair.Primary,
		Confusable:         pair.Confusable,
		Margin:             pair.Margin,
		primaryEvidence:    lowerAll(pair.PrimaryEvidence),
		confusableEvidence: lowerAll(pair.ConfusableEvidence),
	}, nil
}

// HasPrimaryEvidence reports whether lowered content carries tokens arguing
// for the pair's primary language.
func (p *Pair) HasPrimaryEvidence(lowered string) bool {
	return containsAny(lowered, p.primaryEvidence)
}

func lowerAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, strings.ToLower(t))
	}
	return out
}

func containsAny(content string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(content, t) {
			return true
		}
	}
	return false
}
