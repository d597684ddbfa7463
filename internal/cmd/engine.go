package cmd

import (
	"fmt"

	"log/slog"

	"github.com/neonvision/lang-engine/internal/catalog"
	"github.com/neonvision/lang-engine/internal/classify"
	"github.com/neonvision/lang-engine/internal/config"
	"github.com/neonvision/lang-engine/internal/engine"
	"github.com/neonvision/lang-engine/internal/rules"
)

// runtime bundles the wired engine for CLI commands.
type runtime struct {
	settings *config.Settings
	tuning   *config.Tuning
	catalog  *catalog.Catalog
	ctrl     *engine.Controller
	clf      *classify.Classifier
	logger   *slog.Logger
}

// buildRuntime loads settings, catalog and tuning the same way the editor
// shell does at startup.
func buildRuntime() (*runtime, error) {
	settings := config.LoadSettings()
	logger := settings.ConfigureLogger()

	langs, err := rules.LoadEmbeddedLanguages()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
	}

	if settings.RulesDir != "" {
		external, err := rules.LoadExternalLanguages(settings.RulesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load external catalog: %w", err)
		}
		// External entries follow embedded ones, so same-tag overlays win
		langs = append(langs, external...)
	}

	policy, err := rules.LoadPolicy(settings.RulesDir)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(langs, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	tuning, err := config.LoadTuning(settings.TuningFile)
	if err != nil {
		return nil, err
	}

	clf := classify.New(cat)
	ctrl := engine.NewController(cat, clf, tuning, logger)

	return &runtime{
		settings: settings,
		tuning:   tuning,
		catalog:  cat,
		ctrl:     ctrl,
		clf:      clf,
		logger:   logger,
	}, nil
}
