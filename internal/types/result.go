package types

// Classification is the result of one scoring pass over a document's content.
// Produced fresh on every call; never persisted.
type Classification struct {
	// Tag is the best-guess language, or TagPlain when nothing scored.
	Tag string `json:"tag"`

	// Confidence is the winning score minus the runner-up's score, or the
	// absolute winning score when no runner-up scored at all.
	Confidence float64 `json:"confidence"`

	// Scores maps every candidate considered to its weighted score.
	Scores map[string]float64 `json:"scores"`

	// AnchorSignal is true when the content contains a strong anchor-language
	// token. Computed independently of the weighted scores.
	AnchorSignal bool `json:"anchor_signal"`
}
