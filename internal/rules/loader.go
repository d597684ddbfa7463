// Package rules loads the language catalog configuration: one YAML file per
// language plus a _policy.yaml describing the anchor language and confusable
// pairs. The core catalog ships embedded; an external directory can overlay
// or extend it.
package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/neonvision/lang-engine/internal/types"
	"github.com/neonvision/lang-engine/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed all:languages
var coreLanguagesFS embed.FS

const policyFile = "_policy.yaml"

// LoadEmbeddedLanguages loads all language entries from the embedded catalog.
func LoadEmbeddedLanguages() ([]types.Language, error) {
	var langs []types.Language

	err := fs.WalkDir(coreLanguagesFS, "languages", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// _policy.yaml is loaded separately
		if strings.HasSuffix(path, policyFile) {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		content, err := coreLanguagesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read language file %s: %w", path, err)
		}

		lang, err := parseLanguage(path, content)
		if err != nil {
			return err
		}

		langs = append(langs, lang)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded languages: %w", err)
	}

	return langs, nil
}

// LoadExternalLanguages loads additional language entries from a directory.
// External entries with a tag already in the catalog replace the embedded one.
func LoadExternalLanguages(dir string) ([]types.Language, error) {
	var langs []types.Language

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, policyFile) {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read language file %s: %w", path, err)
		}

		lang, err := parseLanguage(path, content)
		if err != nil {
			return err
		}

		langs = append(langs, lang)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk external languages in %s: %w", dir, err)
	}

	return langs, nil
}

// LoadPolicy loads the embedded anchor/confusable policy. An external
// directory containing its own _policy.yaml overrides the embedded one.
func LoadPolicy(externalDir string) (types.Policy, error) {
	content, err := coreLanguagesFS.ReadFile("languages/" + policyFile)
	if err != nil {
		return types.Policy{}, fmt.Errorf("failed to read embedded policy: %w", err)
	}

	if externalDir != "" {
		external := filepath.Join(externalDir, policyFile)
		if data, err := os.ReadFile(external); err == nil {
			content = data
		}
	}

	if err := validation.ValidateYAML("policy.json", content); err != nil {
		return types.Policy{}, fmt.Errorf("invalid policy: %w", err)
	}

	var policy types.Policy
	if err := yaml.Unmarshal(content, &policy); err != nil {
		return types.Policy{}, fmt.Errorf("failed to parse policy: %w", err)
	}

	return policy, nil
}

func parseLanguage(path string, content []byte) (types.Language, error) {
	if err := validation.ValidateYAML("language.json", content); err != nil {
		return types.Language{}, fmt.Errorf("invalid language file %s: %w", path, err)
	}

	var lang types.Language
	if err := yaml.Unmarshal(content, &lang); err != nil {
		return types.Language{}, fmt.Errorf("failed to parse language file %s: %w", path, err)
	}

	if err := validateLanguage(&lang); err != nil {
		return types.Language{}, fmt.Errorf("invalid language in %s: %w", path, err)
	}

	return lang, nil
}

// validateLanguage enforces the structural constraints the JSON schema cannot
// express across fields.
func validateLanguage(lang *types.Language) error {
	if lang.Tag == "" {
		return fmt.Errorf("tag is required")
	}
	if lang.Name == "" {
		return fmt.Errorf("name is required")
	}
	if lang.Tag == types.TagPlain {
		return fmt.Errorf("tag %q is reserved for the undetermined sentinel", types.TagPlain)
	}

	for i, ext := range lang.Extensions {
		if ext == "" || strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %d: must be non-empty without leading dot", i)
		}
		if ext != strings.ToLower(ext) {
			return fmt.Errorf("extension %d: must be lowercase", i)
		}
	}

	for i, sig := range lang.Signatures {
		if sig.Pattern == "" {
			return fmt.Errorf("signature %d: pattern is required", i)
		}
		if sig.Weight <= 0 {
			return fmt.Errorf("signature %d: weight must be positive", i)
		}
	}

	return nil
}
