package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/spf13/cobra"
)

var languagesFormat string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the catalog languages",
	Long: `List every catalog language with its tie-break priority, extensions,
special filenames and signature count, plus whether go-enry (GitHub Linguist)
knows the language under the same name.`,
	RunE: runLanguages,
}

func init() {
	setupFormatFlag(languagesCmd, &languagesFormat)
	infoCmd.AddCommand(languagesCmd)
}

// LanguageInfo describes one catalog entry.
type LanguageInfo struct {
	Tag         string   `json:"tag"`
	Name        string   `json:"name"`
	Priority    int      `json:"priority"`
	Extensions  []string `json:"extensions,omitempty"`
	Filenames   []string `json:"filenames,omitempty"`
	Signatures  int      `json:"signatures"`
	KnownToEnry bool     `json:"known_to_enry"`
}

// LanguagesResult is the output for the info languages command.
type LanguagesResult struct {
	Languages []LanguageInfo `json:"languages"`
	Anchor    string         `json:"anchor"`
	Total     int            `json:"total"`
}

func (r *LanguagesResult) ToJSON() interface{} {
	return r
}

func (r *LanguagesResult) ToText(w io.Writer) {
	fmt.Fprintf(w, "%s\n", styled(headerStyle, fmt.Sprintf("%-12s %-14s %4s  %-24s %s", "TAG", "NAME", "PRI", "EXTENSIONS", "SIGNATURES")))
	for _, lang := range r.Languages {
		marker := " "
		if lang.Tag == r.Anchor {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%-11s %-14s %4d  %-24s %d\n",
			marker, lang.Tag, lang.Name, lang.Priority,
			strings.Join(lang.Extensions, ","), lang.Signatures)
	}
	fmt.Fprintf(w, "\nTotal: %d languages (* = anchor)\n", r.Total)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	result := &LanguagesResult{Anchor: rt.catalog.Anchor().Tag}
	for _, lang := range rt.catalog.Languages() {
		_, enryErr := enry.GetLanguageInfo(lang.Name)
		result.Languages = append(result.Languages, LanguageInfo{
			Tag:         lang.Tag,
			Name:        lang.Name,
			Priority:    lang.Priority,
			Extensions:  lang.Extensions,
			Filenames:   lang.Filenames,
			Signatures:  len(lang.Signatures),
			KnownToEnry: enryErr == nil,
		})
	}
	result.Total = len(result.Languages)

	Output(result, languagesFormat)
	return nil
}
