package workspace

import (
	"path/filepath"
	"testing"
)

func TestParseAttributes(t *testing.T) {
	content := `
# comment line
*.rs  linguist-language=Rust
*.txt linguist-language=markdown linguist-documentation
docs/**/*.md linguist-language=Markdown
*.bin binary
broken-line
*.x linguist-language=
`

	rules := parseAttributes(content)
	if len(rules) != 3 {
		t.Fatalf("parsed %d rules, want 3: %+v", len(rules), rules)
	}

	want := []attrRule{
		{pattern: "*.rs", tag: "rust"},
		{pattern: "*.txt", tag: "markdown"},
		{pattern: "docs/**/*.md", tag: "markdown"},
	}
	for i, rule := range rules {
		if rule != want[i] {
			t.Errorf("rules[%d] = %+v, want %+v", i, rule, want[i])
		}
	}
}

func TestLanguageFor(t *testing.T) {
	o := &Overrides{
		root: "/repo",
		rules: []attrRule{
			{pattern: "*.txt", tag: "markdown"},
			{pattern: "vendor/**/*.txt", tag: "plain"},
			{pattern: "/README.txt", tag: "rust"},
		},
	}

	tests := []struct {
		path    string
		wantTag string
		wantOK  bool
	}{
		// Bare patterns apply at any depth.
		{"/repo/notes.txt", "markdown", true},
		{"/repo/deep/nested/notes.txt", "markdown", true},
		// Later rules win over earlier matches.
		{"/repo/vendor/pkg/readme.txt", "plain", true},
		// Root-anchored pattern.
		{"/repo/README.txt", "rust", true},
		// No rule matches.
		{"/repo/main.go", "", false},
		// Outside the repository root.
		{"/elsewhere/notes.txt", "", false},
	}

	for _, tt := range tests {
		tag, ok := o.LanguageFor(filepath.FromSlash(tt.path))
		if tag != tt.wantTag || ok != tt.wantOK {
			t.Errorf("LanguageFor(%q) = (%q, %v), want (%q, %v)", tt.path, tag, ok, tt.wantTag, tt.wantOK)
		}
	}
}

func TestLoadOutsideRepository(t *testing.T) {
	o, err := Load(filepath.Join(t.TempDir(), "file.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o != nil {
		t.Error("expected no overrides outside a repository")
	}
}
