// Package classify scores document content against the catalog's weighted
// signature table. The classifier is a pure scoring function: it never fails,
// and the large-content guard is the caller's responsibility.
package classify

import (
	"strings"

	"github.com/neonvision/lang-engine/internal/catalog"
	"github.com/neonvision/lang-engine/internal/types"
)

// Classifier scores normalized content against every catalog candidate.
type Classifier struct {
	cat *catalog.Catalog
}

// New creates a classifier over the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify runs one scoring pass. Each signature pattern contributes its
// weight at most once per document, so adding occurrences never lowers a
// score. The winner is the highest-scoring tag; ties break by catalog order.
// Confidence is the margin over the runner-up, or the absolute winning score
// when no runner-up scored. An empty signature table yields the undetermined
// sentinel with zero confidence, never an error.
func (c *Classifier) Classify(content string) types.Classification {
	lowered := strings.ToLower(content)

	scores := make(map[string]float64, len(c.cat.Order()))
	winner := ""
	var best, runnerUp float64

	for _, tag := range c.cat.Order() {
		var score float64
		for _, sig := range c.cat.Signatures(tag) {
			if sig.Match(lowered) {
				score += sig.Weight
			}
		}
		scores[tag] = score

		// Strict > keeps the earlier tag on ties: Order() is the
		// documented priority sequence.
		if score > best {
			runnerUp = best
			best = score
			winner = tag
		} else if score > runnerUp {
			runnerUp = score
		}
	}

	result := types.Classification{
		Tag:          types.TagPlain,
		Scores:       scores,
		AnchorSignal: c.cat.Anchor().StrongSignal(lowered),
	}

	if winner != "" && best > 0 {
		result.Tag = winner
		if runnerUp > 0 {
			result.Confidence = best - runnerUp
		} else {
			result.Confidence = best
		}
	}

	return result
}

// AnchorEvidence is the lighter-weight anchor heuristic: any anchor-idiomatic
// token in the content, without running the scoring pass.
func (c *Classifier) AnchorEvidence(content string) bool {
	return c.cat.Anchor().Evidence(strings.ToLower(content))
}

// AnchorSignal reports the strong anchor signal alone, for callers that do
// not need scores.
func (c *Classifier) AnchorSignal(content string) bool {
	return c.cat.Anchor().StrongSignal(strings.ToLower(content))
}
