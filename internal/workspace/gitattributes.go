// Package workspace resolves per-repository language overrides: when a file
// lives inside a git repository whose .gitattributes carries
// linguist-language entries, those win over the catalog's extension table.
package workspace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	git "github.com/go-git/go-git/v5"
)

const attributePrefix = "linguist-language="

type attrRule struct {
	pattern string
	tag     string
}

// Overrides holds the parsed linguist-language rules of one repository root.
type Overrides struct {
	root  string
	rules []attrRule
}

// Load discovers the repository containing path and parses its root
// .gitattributes. Returns nil (no overrides) when the path is outside any
// repository or the repository has no .gitattributes; only genuine read or
// parse failures are errors.
func Load(path string) (*Overrides, error) {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, nil
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: no working tree to attribute
		return nil, nil
	}
	root := wt.Filesystem.Root()

	data, err := os.ReadFile(filepath.Join(root, ".gitattributes"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .gitattributes in %s: %w", root, err)
	}

	rules := parseAttributes(string(data))
	if len(rules) == 0 {
		return nil, nil
	}

	return &Overrides{root: root, rules: rules}, nil
}

// Root returns the repository root the overrides belong to.
func (o *Overrides) Root() string {
	return o.root
}

// LanguageFor matches path against the override rules. The last matching rule
// wins, mirroring gitattributes precedence. Tags are reported lowercase.
func (o *Overrides) LanguageFor(path string) (string, bool) {
	rel, err := filepath.Rel(o.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	tag := ""
	for _, rule := range o.rules {
		pattern := rule.pattern
		// A bare filename pattern applies at any depth, per gitattributes
		if !strings.Contains(pattern, "/") {
			pattern = "**/" + pattern
		} else {
			pattern = strings.TrimPrefix(pattern, "/")
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			tag = rule.tag
		}
	}

	return tag, tag != ""
}

// parseAttributes extracts pattern/linguist-language pairs from .gitattributes
// content. Unrelated attributes and malformed lines are skipped.
func parseAttributes(content string) []attrRule {
	var rules []attrRule

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		for _, attr := range fields[1:] {
			if !strings.HasPrefix(attr, attributePrefix) {
				continue
			}
			tag := strings.ToLower(strings.TrimPrefix(attr, attributePrefix))
			if tag == "" {
				continue
			}
			rules = append(rules, attrRule{pattern: fields[0], tag: tag})
		}
	}

	return rules
}
