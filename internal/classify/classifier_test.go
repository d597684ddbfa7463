package classify

import (
	"strings"
	"testing"

	"github.com/neonvision/lang-engine/internal/catalog"
	"github.com/neonvision/lang-engine/internal/types"
)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()

	langs := []types.Language{
		{
			Tag: "swift", Name: "Swift", Priority: 10,
			Signatures: []types.Signature{
				{Pattern: "guard let", Weight: 6},
				{Pattern: "func ", Weight: 2},
			},
		},
		{
			Tag: "javascript", Name: "JavaScript", Priority: 60,
			Signatures: []types.Signature{
				{Pattern: "console.log", Weight: 6},
				{Pattern: "function ", Weight: 3},
				{Pattern: "=> ", Weight: 3},
			},
		},
		{
			Tag: "markdown", Name: "Markdown", Priority: 200,
			Signatures: []types.Signature{
				{Pattern: "/(?m)^# /", Weight: 5},
			},
		},
		{Tag: "empty", Name: "Empty", Priority: 250},
	}
	policy := types.Policy{
		Anchor: types.AnchorPolicy{
			Tag:            "swift",
			StrongTokens:   []string{"import swiftui"},
			EvidenceTokens: []string{"@published"},
		},
	}

	cat, err := catalog.New(langs, policy)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return New(cat)
}

func TestClassifyWinnerAndConfidence(t *testing.T) {
	clf := testClassifier(t)

	result := clf.Classify("function hello() { console.log('hi') }")
	if result.Tag != "javascript" {
		t.Fatalf("Tag = %q, want javascript", result.Tag)
	}
	// javascript 9, no other positive score: confidence is the absolute score
	if result.Confidence != 9 {
		t.Errorf("Confidence = %v, want 9", result.Confidence)
	}
	if result.Scores["javascript"] != 9 {
		t.Errorf("Scores[javascript] = %v, want 9", result.Scores["javascript"])
	}
	if result.AnchorSignal {
		t.Error("Unexpected anchor signal")
	}
}

func TestClassifyMarginConfidence(t *testing.T) {
	clf := testClassifier(t)

	// javascript 6+3=9, swift 2: margin 7
	result := clf.Classify("function f() {} console.log(1)\nfunc ")
	if result.Tag != "javascript" {
		t.Fatalf("Tag = %q, want javascript", result.Tag)
	}
	if result.Confidence != 7 {
		t.Errorf("Confidence = %v, want margin 7", result.Confidence)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	clf := testClassifier(t)

	result := clf.Classify("CONSOLE.LOG('LOUD') FUNCTION X")
	if result.Scores["javascript"] == 0 {
		t.Error("Scoring should be case-insensitive")
	}
}

func TestClassifyRegexSignature(t *testing.T) {
	clf := testClassifier(t)

	result := clf.Classify("intro\n# Heading\nbody")
	if result.Tag != "markdown" {
		t.Errorf("Tag = %q, want markdown for line-anchored heading", result.Tag)
	}

	if got := clf.Classify("inline # not a heading"); got.Scores["markdown"] != 0 {
		t.Errorf("Scores[markdown] = %v, want 0 for non-anchored hash", got.Scores["markdown"])
	}
}

func TestClassifyNoMatchesYieldsSentinel(t *testing.T) {
	clf := testClassifier(t)

	result := clf.Classify("nothing recognizable here")
	if result.Tag != types.TagPlain {
		t.Errorf("Tag = %q, want %q", result.Tag, types.TagPlain)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
	if len(result.Scores) == 0 {
		t.Error("Scores should cover every candidate even with no matches")
	}
}

func TestClassifyTieBreaksByCatalogOrder(t *testing.T) {
	clf := testClassifier(t)

	// swift "guard let" (6) vs javascript "console.log" (6): swift has the
	// lower priority value and wins the tie.
	result := clf.Classify("guard let console.log")
	if result.Tag != "swift" {
		t.Errorf("Tag = %q, want swift on tie", result.Tag)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 on a tie", result.Confidence)
	}
}

func TestClassifyMonotonicPerPattern(t *testing.T) {
	clf := testClassifier(t)

	once := clf.Classify("console.log(1)")
	many := clf.Classify(strings.Repeat("console.log(1)\n", 50))
	if many.Scores["javascript"] < once.Scores["javascript"] {
		t.Error("Repeating a pattern must never lower its score")
	}
	// Occurrences are capped at one contribution per pattern
	if many.Scores["javascript"] != once.Scores["javascript"] {
		t.Errorf("Pattern should score once: %v vs %v", many.Scores["javascript"], once.Scores["javascript"])
	}
}

func TestAnchorSignalIndependentOfScores(t *testing.T) {
	clf := testClassifier(t)

	result := clf.Classify("import SwiftUI\nfunction f() { console.log(1) }")
	if !result.AnchorSignal {
		t.Error("Expected anchor signal despite javascript winning the score")
	}
}

func TestAnchorEvidence(t *testing.T) {
	clf := testClassifier(t)

	if !clf.AnchorEvidence("@Published var x: Int") {
		t.Error("Expected evidence for @Published")
	}
	if !clf.AnchorEvidence("import SwiftUI") {
		t.Error("Strong tokens count as evidence")
	}
	if clf.AnchorEvidence("using System;") {
		t.Error("Unexpected anchor evidence for C# content")
	}
}
