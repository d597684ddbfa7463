package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Tuning holds the decision thresholds. These are product-tuning values, not
// invariants: defaults match what shipped, and a .lang-engine.hcl file can
// override them per installation.
//
//	lock_confidence         = 5
//	large_content_threshold = 1000000
type Tuning struct {
	// LockConfidence is the classification margin at or above which an
	// accepted winner is locked against further automatic change.
	LockConfidence float64 `hcl:"lock_confidence,optional"`

	// LargeContentThreshold is the content length in characters at or above
	// which the scoring pass is skipped in favor of extension-only resolution.
	LargeContentThreshold int `hcl:"large_content_threshold,optional"`
}

// DefaultTuning returns the shipped thresholds.
func DefaultTuning() *Tuning {
	return &Tuning{
		LockConfidence:        5,
		LargeContentThreshold: 1_000_000,
	}
}

// LoadTuning reads an HCL tuning file, filling unset attributes with
// defaults. A missing file is not an error: defaults apply.
func LoadTuning(path string) (*Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tuning, nil
	}

	var loaded Tuning
	if err := hclsimple.DecodeFile(path, nil, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}

	if loaded.LockConfidence > 0 {
		tuning.LockConfidence = loaded.LockConfidence
	}
	if loaded.LargeContentThreshold > 0 {
		tuning.LargeContentThreshold = loaded.LargeContentThreshold
	}

	return tuning, nil
}
