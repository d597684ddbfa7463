package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"github.com/neonvision/lang-engine/internal/codestats"
	"github.com/neonvision/lang-engine/internal/engine"
	"github.com/neonvision/lang-engine/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	classifyFormat  string
	classifyPreview bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>...",
	Short: "Classify files through the live engine",
	Long: `Classify runs each file through the same open-document path the editor
uses: workspace .gitattributes overrides, extension authority, content
signatures and the hysteresis policy. The result shows the decided tag, the
lock state, scores, go-enry's opinion for comparison, and line statistics.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	setupFormatFlag(classifyCmd, &classifyFormat)
	classifyCmd.Flags().BoolVar(&classifyPreview, "preview", false, "Print a syntax-highlighted preview using the decided language")
	rootCmd.AddCommand(classifyCmd)
}

// FileResult is the decision for one classified file.
type FileResult struct {
	File       string             `json:"file"`
	Language   string             `json:"language"`
	Locked     bool               `json:"locked"`
	Override   string             `json:"workspace_override,omitempty"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
	Enry       string             `json:"enry,omitempty"`
	Stats      codestats.Stats    `json:"stats"`
}

// ClassifyResult is the output of the classify command.
type ClassifyResult struct {
	Files []FileResult `json:"files"`
}

func (r *ClassifyResult) ToJSON() interface{} {
	return r
}

func (r *ClassifyResult) ToText(w io.Writer) {
	for _, f := range r.Files {
		state := styled(openStyle, "tentative")
		if f.Locked {
			state = styled(lockedStyle, "locked")
		}
		fmt.Fprintf(w, "%s  %s (%s)\n", styled(headerStyle, f.File), f.Language, state)
		if f.Override != "" {
			fmt.Fprintf(w, "  workspace override: %s\n", f.Override)
		}
		fmt.Fprintf(w, "  confidence: %.0f   enry: %s\n", f.Confidence, f.Enry)
		fmt.Fprintf(w, "  %s\n", styled(dimStyle, topScores(f.Scores)))
		fmt.Fprintf(w, "  lines: %d  code: %d  comments: %d  blanks: %d\n",
			f.Stats.Lines, f.Stats.Code, f.Stats.Comments, f.Stats.Blanks)
	}
}

// topScores renders the three best non-zero scores.
func topScores(scores map[string]float64) string {
	type entry struct {
		tag   string
		score float64
	}
	var entries []entry
	for tag, score := range scores {
		if score > 0 {
			entries = append(entries, entry{tag, score})
		}
	}
	if len(entries) == 0 {
		return "no signature matches"
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].tag < entries[j].tag
	})
	if len(entries) > 3 {
		entries = entries[:3]
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s=%.0f", e.tag, e.score))
	}
	return "scores: " + strings.Join(parts, " ")
}

func runClassify(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	result := &ClassifyResult{}

	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var override string
		overrides, err := workspace.Load(path)
		if err != nil {
			rt.logger.Warn("workspace overrides unavailable", "path", path, "error", err)
		} else if overrides != nil {
			if tag, ok := overrides.LanguageFor(path); ok {
				override = tag
			}
		}

		store := engine.NewStore(rt.ctrl, rt.logger, engine.WithOverrides(func(string) (string, bool) {
			return override, override != ""
		}))
		doc := store.Open(path, string(raw))

		classification := rt.clf.Classify(doc.Content)
		enryLang := strings.ToLower(enry.GetLanguage(doc.Name, raw))

		result.Files = append(result.Files, FileResult{
			File:       path,
			Language:   doc.Language(),
			Locked:     doc.Locked(),
			Override:   override,
			Confidence: classification.Confidence,
			Scores:     classification.Scores,
			Enry:       enryLang,
			Stats:      codestats.Analyze(path, doc.Content),
		})

		if classifyPreview {
			preview(doc.Language(), doc.Content)
		}
	}

	Output(result, classifyFormat)
	return nil
}

// preview prints the first lines of content highlighted with the decided
// language, the way the editor's highlighter collaborator would render it.
func preview(tag string, content string) {
	const maxLines = 20
	lines := strings.SplitN(content, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	snippet := strings.Join(lines, "\n")

	lexer := lexers.Get(tag)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal256")
	if !stdoutIsTTY() {
		formatter = formatters.Get("noop")
	}

	iterator, err := lexer.Tokenise(nil, snippet)
	if err != nil {
		fmt.Println(snippet)
		return
	}
	if err := formatter.Format(os.Stdout, styles.Get("monokai"), iterator); err != nil {
		fmt.Println(snippet)
		return
	}
	fmt.Println()
}
