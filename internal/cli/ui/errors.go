package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and
// help commands
//
// Example output:
//
//	❌ DIRECTIVE NOT FOUND: login-frm
//	   Cannot find directive 'login-frm' in the manifest.
//
//	   Did you mean: login-form?
//
//	   → See all directives: lattice introspect directives
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	bodyColor := color.New(color.FgRed)
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "❌ %s\n", strings.ToUpper(opts.Context))
		bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
	} else {
		headerColor.Fprintf(&b, "❌ %s\n", opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// DirectiveNotFoundError creates a standardized directive-not-found error
func DirectiveNotFoundError(selector string, known []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Context:     fmt.Sprintf("DIRECTIVE NOT FOUND: %s", selector),
		Problem:     fmt.Sprintf("Cannot find directive '%s' in the manifest.", selector),
		Suggestions: FindSimilar(selector, known),
		HelpCommands: []string{
			"See all directives: lattice introspect directives",
			"Get help: lattice introspect --help",
		},
		NoColor: noColor,
	})
}
