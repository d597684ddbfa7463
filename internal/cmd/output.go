package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Outputter interface for commands with structured output
type Outputter interface {
	// ToJSON returns the data structure for JSON/YAML marshaling
	ToJSON() interface{}
	// ToText writes human-readable text format
	ToText(w io.Writer)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// stdoutIsTTY gates lipgloss styling: plain text when piped.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func styled(style lipgloss.Style, s string) string {
	if !stdoutIsTTY() {
		return s
	}
	return style.Render(s)
}

// Output marshals an Outputter in the requested format to stdout.
func Output(o Outputter, format string) {
	switch normalizeFormat(format) {
	case "json":
		data, err := json.MarshalIndent(o.ToJSON(), "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal JSON: %v", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(o.ToJSON())
		if err != nil {
			log.Fatalf("Failed to marshal YAML: %v", err)
		}
		fmt.Print(string(data))
	default:
		o.ToText(os.Stdout)
	}
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	default:
		return "text"
	}
}

// setupFormatFlag configures the format flag for a command
func setupFormatFlag(cmd *cobra.Command, formatPtr *string) {
	cmd.Flags().StringVarP(formatPtr, "format", "f", "text", "Output format: text, json, or yaml")
}
