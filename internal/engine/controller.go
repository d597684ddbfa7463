// Package engine owns the per-document language decision: the lock/hysteresis
// controller that reconciles extension hints, content scores and prior state,
// and the document store that dispatches edit events into it.
package engine

import (
	"io"
	"strings"
	"unicode/utf8"

	"log/slog"

	"github.com/neonvision/lang-engine/internal/catalog"
	"github.com/neonvision/lang-engine/internal/classify"
	"github.com/neonvision/lang-engine/internal/config"
	"github.com/neonvision/lang-engine/internal/types"
)

// Controller applies the decision rules. It is stateless: each method maps a
// prior Decision plus the event's inputs to a new Decision, never erroring.
// Precedence on every evaluation: manual selection, anchor strong-signal,
// extension authority, large-content fast path, classifier.
type Controller struct {
	cat    *catalog.Catalog
	clf    *classify.Classifier
	tuning *config.Tuning
	log    *slog.Logger
}

// NewController wires the controller. A nil logger disables logging.
func NewController(cat *catalog.Catalog, clf *classify.Classifier, tuning *config.Tuning, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{cat: cat, clf: clf, tuning: tuning, log: logger}
}

// OnManualSelect handles an explicit language pick. Unconditional: any prior
// state, locked or not, yields Locked(tag). Unknown tags are ignored.
func (c *Controller) OnManualSelect(d Decision, tag string) Decision {
	if !c.cat.Has(tag) {
		c.log.Warn("ignoring manual selection of unknown language", "tag", tag)
		return d
	}
	return Locked(tag)
}

// OnOpened decides the initial language of a freshly materialized document:
// extension authority first, then a first classification pass when the
// filename gave no answer. override, when non-empty, stands in for the
// extension table (workspace .gitattributes).
func (c *Controller) OnOpened(filename, content, override string) Decision {
	d := c.extensionAuthority(Undetermined(), filename, content, override)
	if d.Locked() {
		return d
	}
	return c.OnContentChanged(d, filename, content)
}

// OnRenamed re-enters the extension-authority path. A locked document keeps
// its language; renames never unlock.
func (c *Controller) OnRenamed(d Decision, filename, content string) Decision {
	return c.extensionAuthority(d, filename, content, "")
}

// OnContentChanged processes an edit.
func (c *Controller) OnContentChanged(d Decision, filename, content string) Decision {
	lowered := strings.ToLower(content)

	// Anchor strong-signal pre-empts everything, including an existing lock
	// and the extension authority.
	if c.cat.Anchor().StrongSignal(lowered) {
		return Locked(c.cat.Anchor().Tag)
	}

	if d.Locked() {
		return d
	}

	// Large-content fast path: extension mapping only, no lock (the content
	// may shrink again), no scoring pass.
	if utf8.RuneCountInString(content) >= c.tuning.LargeContentThreshold {
		if tag, ok := c.cat.Resolve(filename); ok {
			return Tentative(tag)
		}
		return d
	}

	// With a mapped filename the extension stays authoritative.
	if _, ok := c.cat.Resolve(filename); ok {
		return c.extensionAuthority(d, filename, content, "")
	}

	result := c.clf.Classify(content)

	// Anti-downgrade: a transient weak read never reverts a real language
	// to the undetermined sentinel.
	if result.Tag == types.TagPlain {
		if d.Tag() != types.TagPlain {
			return d
		}
		return Undetermined()
	}

	// Moving from a confusable pair's primary to its confusable side needs
	// both a clear margin and no contrary primary evidence.
	if pair, ok := c.cat.PairFor(d.Tag(), result.Tag); ok {
		margin := result.Scores[pair.Confusable] - result.Scores[pair.Primary]
		if margin < pair.Margin || c.hasPrimaryEvidence(pair, lowered) {
			c.log.Debug("holding confusable primary",
				"primary", pair.Primary, "confusable", pair.Confusable, "margin", margin)
			return Tentative(pair.Primary)
		}
	}

	anchorWin := result.Tag == c.cat.Anchor().Tag && c.cat.Anchor().Evidence(lowered)
	if result.Confidence >= c.tuning.LockConfidence || anchorWin {
		return Locked(result.Tag)
	}
	return Tentative(result.Tag)
}

// extensionAuthority resolves and locks the filename's mapping, except that a
// confusable pair's confusable extension yields the primary language when the
// content carries primary evidence.
func (c *Controller) extensionAuthority(d Decision, filename, content, override string) Decision {
	if d.Locked() {
		return d
	}

	tag, ok := "", false
	if override != "" {
		if c.cat.Has(override) {
			tag, ok = override, true
		} else {
			c.log.Warn("ignoring workspace override for unknown language",
				"tag", override, "filename", filename)
		}
	}
	if !ok {
		tag, ok = c.cat.Resolve(filename)
	}
	if !ok {
		return d
	}

	if pair, found := c.cat.PairForConfusable(tag); found {
		lowered := strings.ToLower(content)
		if c.hasPrimaryEvidence(pair, lowered) {
			c.log.Debug("extension overridden by primary evidence",
				"extension_tag", tag, "resolved", pair.Primary, "filename", filename)
			return Locked(pair.Primary)
		}
	}

	return Locked(tag)
}

// hasPrimaryEvidence checks the pair's own evidence tokens, widened to the
// full anchor heuristic when the pair's primary is the anchor language.
func (c *Controller) hasPrimaryEvidence(pair *catalog.Pair, lowered string) bool {
	if pair.HasPrimaryEvidence(lowered) {
		return true
	}
	return pair.Primary == c.cat.Anchor().Tag && c.cat.Anchor().Evidence(lowered)
}
