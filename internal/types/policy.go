package types

// Policy holds the anchor-language and confusable-pair configuration loaded
// from _policy.yaml alongside the language files.
type Policy struct {
	Anchor      AnchorPolicy     `yaml:"anchor" json:"anchor"`
	Confusables []ConfusablePair `yaml:"confusables,omitempty" json:"confusables,omitempty"`
}

// AnchorPolicy designates the privileged language whose strong token
// signatures override ordinary scoring and force an immediate lock.
type AnchorPolicy struct {
	Tag string `yaml:"tag" json:"tag"`

	// StrongTokens are near-unambiguous token sequences. Any case-insensitive
	// occurrence locks the document to the anchor language unconditionally.
	StrongTokens []string `yaml:"strong_tokens" json:"strong_tokens"`

	// EvidenceTokens are the lighter-weight heuristic: idiomatic tokens whose
	// presence counts as anchor evidence without forcing a lock on their own.
	EvidenceTokens []string `yaml:"evidence_tokens" json:"evidence_tokens"`
}

// ConfusablePair declares two languages that naive extension mapping or
// shallow scoring mix up, and the extra evidence needed to move between them.
type ConfusablePair struct {
	Primary    string  `yaml:"primary" json:"primary"`
	Confusable string  `yaml:"confusable" json:"confusable"`
	Margin     float64 `yaml:"margin" json:"margin"`

	// PrimaryEvidence tokens, when present in content, keep (or win) the
	// primary language even when the filename extension maps to the
	// confusable one.
	PrimaryEvidence []string `yaml:"primary_evidence,omitempty" json:"primary_evidence,omitempty"`

	// ConfusableEvidence tokens argue for the confusable side; they are
	// catalog signature material and listed here for tooling visibility.
	ConfusableEvidence []string `yaml:"confusable_evidence,omitempty" json:"confusable_evidence,omitempty"`
}
