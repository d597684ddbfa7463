// Package catalog holds the immutable language catalog: extension and
// filename mappings, the deterministic tie-break order, compiled signature
// patterns, and the anchor/confusable policy. A Catalog is built once at
// startup and shared by reference; it is never mutated afterwards.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/neonvision/lang-engine/internal/types"
)

type filenameRule struct {
	pattern string
	tag     string
}

// Catalog is the process-wide language configuration.
type Catalog struct {
	languages []types.Language
	byTag     map[string]types.Language
	byExt     map[string]string
	filenames []filenameRule

	// order is the tie-break sequence: ascending priority. When two
	// languages score equally the one earlier in order wins.
	order []string

	signatures map[string][]*types.CompiledSignature

	anchor           *Anchor
	pairs            []*Pair
	pairByConfusable map[string]*Pair
}

// New builds a catalog from loaded language entries and the policy. Entries
// sharing a tag replace earlier ones, so external overlays win over the
// embedded catalog when appended after it.
func New(langs []types.Language, policy types.Policy) (*Catalog, error) {
	merged := make(map[string]types.Language, len(langs))
	for _, lang := range langs {
		merged[lang.Tag] = lang
	}

	c := &Catalog{
		byTag:            make(map[string]types.Language, len(merged)),
		byExt:            make(map[string]string),
		signatures:       make(map[string][]*types.CompiledSignature, len(merged)),
		pairByConfusable: make(map[string]*Pair),
	}

	for _, lang := range merged {
		c.languages = append(c.languages, lang)
	}
	sort.Slice(c.languages, func(i, j int) bool {
		if c.languages[i].Priority != c.languages[j].Priority {
			return c.languages[i].Priority < c.languages[j].Priority
		}
		return c.languages[i].Tag < c.languages[j].Tag
	})

	for _, lang := range c.languages {
		c.byTag[lang.Tag] = lang
		c.order = append(c.order, lang.Tag)

		for _, ext := range lang.Extensions {
			if prev, exists := c.byExt[ext]; exists {
				return nil, fmt.Errorf("extension %q mapped to both %q and %q", ext, prev, lang.Tag)
			}
			c.byExt[ext] = lang.Tag
		}

		for _, pattern := range lang.Filenames {
			if !doublestar.ValidatePattern(pattern) {
				return nil, fmt.Errorf("language %q: invalid filename pattern %q", lang.Tag, pattern)
			}
			c.filenames = append(c.filenames, filenameRule{pattern: pattern, tag: lang.Tag})
		}

		for _, sig := range lang.Signatures {
			compiled, err := sig.Compile()
			if err != nil {
				return nil, fmt.Errorf("language %q: %w", lang.Tag, err)
			}
			c.signatures[lang.Tag] = append(c.signatures[lang.Tag], compiled)
		}
	}

	anchor, err := compileAnchor(policy.Anchor, c.byTag)
	if err != nil {
		return nil, err
	}
	c.anchor = anchor

	for _, pair := range policy.Confusables {
		compiled, err := compilePair(pair, c.byTag)
		if err != nil {
			return nil, err
		}
		c.pairs = append(c.pairs, compiled)
		c.pairByConfusable[compiled.Confusable] = compiled
	}

	return c, nil
}

// ResolveExtension maps the lowercase filename suffix to a language tag.
// Pure table lookup: no fallback inference, no confusable special-casing.
func (c *Catalog) ResolveExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", false
	}
	tag, ok := c.byExt[strings.TrimPrefix(ext, ".")]
	return tag, ok
}

// ResolveFilename matches the base filename against the catalog's special
// filename globs (Makefile, Dockerfile.*, ...).
func (c *Catalog) ResolveFilename(filename string) (string, bool) {
	base := filepath.Base(filename)
	for _, rule := range c.filenames {
		if ok, err := doublestar.Match(rule.pattern, base); err == nil && ok {
			return rule.tag, true
		}
	}
	return "", false
}

// Resolve answers the extension table first, then the special-filename globs.
func (c *Catalog) Resolve(filename string) (string, bool) {
	if tag, ok := c.ResolveExtension(filename); ok {
		return tag, true
	}
	return c.ResolveFilename(filename)
}

// Order returns the deterministic tie-break sequence over all catalog tags.
func (c *Catalog) Order() []string {
	return c.order
}

// Language returns the catalog entry for a tag.
func (c *Catalog) Language(tag string) (types.Language, bool) {
	lang, ok := c.byTag[tag]
	return lang, ok
}

// Languages returns all entries in tie-break order.
func (c *Catalog) Languages() []types.Language {
	return c.languages
}

// Has reports whether tag is a recognized catalog tag. The undetermined
// sentinel is always recognized.
func (c *Catalog) Has(tag string) bool {
	if tag == types.TagPlain {
		return true
	}
	_, ok := c.byTag[tag]
	return ok
}

// Signatures returns the compiled signature patterns for a tag.
func (c *Catalog) Signatures(tag string) []*types.CompiledSignature {
	return c.signatures[tag]
}

// Anchor returns the compiled anchor policy.
func (c *Catalog) Anchor() *Anchor {
	return c.anchor
}

// PairForConfusable returns the confusable pair whose confusable side is tag.
func (c *Catalog) PairForConfusable(tag string) (*Pair, bool) {
	pair, ok := c.pairByConfusable[tag]
	return pair, ok
}

// PairFor returns the pair connecting primary and confusable, if declared.
func (c *Catalog) PairFor(primary, confusable string) (*Pair, bool) {
	for _, pair := range c.pairs {
		if pair.Primary == primary && pair.Confusable == confusable {
			return pair, true
		}
	}
	return nil, false
}
