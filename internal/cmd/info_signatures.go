package cmd

import (
	"fmt"
	"io"

	"github.com/neonvision/lang-engine/internal/types"
	"github.com/spf13/cobra"
)

var signaturesFormat string

var signaturesCmd = &cobra.Command{
	Use:   "signatures [tag]",
	Short: "Show the weighted signature table",
	Long: `Show the content signature patterns and weights per language, plus the
anchor policy tokens. Pass a tag to limit output to one language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSignatures,
}

func init() {
	setupFormatFlag(signaturesCmd, &signaturesFormat)
	infoCmd.AddCommand(signaturesCmd)
}

// SignatureEntry is one language's signature list.
type SignatureEntry struct {
	Tag        string            `json:"tag"`
	Signatures []types.Signature `json:"signatures"`
}

// SignaturesResult is the output for the info signatures command.
type SignaturesResult struct {
	Anchor    string           `json:"anchor"`
	Languages []SignatureEntry `json:"languages"`
}

func (r *SignaturesResult) ToJSON() interface{} {
	return r
}

func (r *SignaturesResult) ToText(w io.Writer) {
	for _, entry := range r.Languages {
		fmt.Fprintf(w, "%s\n", styled(headerStyle, entry.Tag))
		for _, sig := range entry.Signatures {
			fmt.Fprintf(w, "  %6.1f  %q\n", sig.Weight, sig.Pattern)
		}
	}
	fmt.Fprintf(w, "\nAnchor language: %s\n", r.Anchor)
}

func runSignatures(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	result := &SignaturesResult{Anchor: rt.catalog.Anchor().Tag}
	for _, lang := range rt.catalog.Languages() {
		if len(args) == 1 && lang.Tag != args[0] {
			continue
		}
		if len(lang.Signatures) == 0 {
			continue
		}
		result.Languages = append(result.Languages, SignatureEntry{
			Tag:        lang.Tag,
			Signatures: lang.Signatures,
		})
	}

	if len(args) == 1 && len(result.Languages) == 0 {
		return fmt.Errorf("unknown or signature-less language %q", args[0])
	}

	Output(result, signaturesFormat)
	return nil
}
