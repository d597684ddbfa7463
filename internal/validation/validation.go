// Package validation checks catalog YAML files against embedded JSON schemas
// before they reach the engine.
package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed *.json
var schemaFS embed.FS

// Error aggregates the individual schema violations found in one document.
type Error struct {
	Errors []string
}

func (e Error) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateYAML validates raw YAML content against an embedded JSON schema.
// schemaName is the schema filename, e.g. "language.json" or "policy.json".
func ValidateYAML(schemaName string, yamlContent []byte) error {
	var data interface{}
	if err := yaml.Unmarshal(yamlContent, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return validate(schemaName, data)
}

func validate(schemaName string, data interface{}) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(data); err != nil {
		var causes []string
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			for _, c := range verr.Causes {
				causes = append(causes, c.Message)
			}
			if len(causes) == 0 {
				causes = append(causes, verr.Message)
			}
		} else {
			causes = append(causes, err.Error())
		}
		return Error{Errors: causes}
	}

	return nil
}
