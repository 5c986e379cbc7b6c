package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lattice-ui/lattice/internal/cli/config"
	"github.com/lattice-ui/lattice/internal/cli/ui"
	"github.com/lattice-ui/lattice/runtime/metadata"
)

var (
	// Global flags for introspect commands
	outputFormat string
	manifestPath string
	noColor      bool
	debug        bool
)

// NewIntrospectCommand creates the introspect command group
func NewIntrospectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Introspect an exported directive manifest",
		Long: `Introspect an exported directive manifest.

A lattice application exports its resolved directive metadata as a JSON
manifest (metadata.ExportManifest). The introspect commands read that
manifest and let you explore the declared directives, their merged
metadata records, and their required-directive lookup maps.

This is useful for:
  • Verifying how class-level and property-level annotations merged
  • Checking the lookup expressions synthesized for injected directives
  • Feeding directive metadata into editors and build tooling`,
		Example: `  # List all directives in the manifest
  lattice introspect directives

  # View the full record for one directive
  lattice introspect directive login-form

  # Show the required-directive map of a directive
  lattice introspect deps login-form

  # Output in JSON format for tooling
  lattice introspect directives --format json

  # Read a manifest from a non-default location
  lattice introspect directives --manifest build/lattice.json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable color output if requested
			if noColor {
				color.NoColor = true
			}
		},
	}

	// Add global flags
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: json or table (default from lattice.yml)")
	cmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "Path to the manifest file (default from lattice.yml)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug diagnostics")

	// Add subcommands
	cmd.AddCommand(newIntrospectDirectivesCommand())
	cmd.AddCommand(newIntrospectDirectiveCommand())
	cmd.AddCommand(newIntrospectDepsCommand())

	return cmd
}

// newIntrospectDirectivesCommand creates the 'introspect directives' command
func newIntrospectDirectivesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "directives",
		Short: "List all directives in the manifest",
		Long: `List all directives in the manifest.

Shows a summary of every directive and component: its selector, kind, class,
and how many inputs, outputs, and required directives it declares. Use the
'introspect directive <selector>' command for the full record.`,
		Example: `  # List all directives
  lattice introspect directives

  # List directives in JSON format
  lattice introspect directives --format json`,
		RunE: runIntrospectDirectivesCommand,
	}
}

// newIntrospectDirectiveCommand creates the 'introspect directive' command
func newIntrospectDirectiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "directive <selector>",
		Short: "Show the full metadata record for a directive",
		Long: `Show the full metadata record for a directive.

Displays the merged inputs, outputs, attrs, host map, queries, export name,
and - for components - the template, exactly as a rendering layer would
consume them.`,
		Example: `  # View the login-form record
  lattice introspect directive login-form

  # View the record in JSON format
  lattice introspect directive login-form --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runIntrospectDirectiveCommand,
	}
}

// newIntrospectDepsCommand creates the 'introspect deps' command
func newIntrospectDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <selector>",
		Short: "Show the required-directive map of a directive",
		Long: `Show the required-directive map of a directive.

For each host-qualified constructor parameter, displays the lookup
expression (["?"]["^"]name) the host runtime uses to locate the required
directive instance.`,
		Example: `  # Show what login-form requires from the component tree
  lattice introspect deps login-form

  # JSON output for tooling
  lattice introspect deps login-form --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runIntrospectDepsCommand,
	}
}

// introspectContext carries the resolved configuration and loaded manifest
// shared by the introspect subcommands.
type introspectContext struct {
	manifest *metadata.Manifest
	format   string
	logger   *zap.Logger
}

// loadIntrospectContext merges flags over lattice.yml configuration and
// loads the manifest. Flags win when set.
func loadIntrospectContext() (*introspectContext, error) {
	logger := zap.NewNop()
	if debug {
		dev, err := zap.NewDevelopment()
		if err == nil {
			logger = dev
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	format := cfg.Output.Format
	if outputFormat != "" {
		format = strings.ToLower(outputFormat)
	}
	if format != "table" && format != "json" {
		return nil, fmt.Errorf("unsupported format: %s (supported: json, table)", format)
	}

	path := cfg.Manifest
	if manifestPath != "" {
		path = manifestPath
	}

	logger.Debug("loading manifest", zap.String("path", path), zap.String("format", format))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	manifest, err := metadata.ReadManifest(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("manifest loaded",
		zap.String("version", manifest.Version),
		zap.Int("directives", len(manifest.Directives)))

	return &introspectContext{manifest: manifest, format: format, logger: logger}, nil
}

// runIntrospectDirectivesCommand executes the 'introspect directives' command
func runIntrospectDirectivesCommand(cmd *cobra.Command, args []string) error {
	ctx, err := loadIntrospectContext()
	if err != nil {
		return err
	}
	defer ctx.logger.Sync()

	writer := cmd.OutOrStdout()

	if ctx.format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ctx.manifest.Directives)
	}

	table := ui.NewTable(writer, []string{"SELECTOR", "KIND", "CLASS", "INPUTS", "OUTPUTS", "REQUIRES"}, noColor)
	for _, selector := range ctx.manifest.Selectors() {
		entry, _ := ctx.manifest.Entry(selector)
		table.AddRow(
			entry.Selector,
			entry.Kind,
			entry.Class,
			strconv.Itoa(len(entry.Inputs)),
			strconv.Itoa(len(entry.Outputs)),
			strconv.Itoa(len(entry.Requires)),
		)
	}
	table.Render()
	fmt.Fprintf(writer, "\n%d directive(s)\n", len(ctx.manifest.Directives))
	return nil
}

// runIntrospectDirectiveCommand executes the 'introspect directive' command
func runIntrospectDirectiveCommand(cmd *cobra.Command, args []string) error {
	ctx, err := loadIntrospectContext()
	if err != nil {
		return err
	}
	defer ctx.logger.Sync()

	entry, ok := ctx.manifest.Entry(args[0])
	if !ok {
		return errors.New(ui.DirectiveNotFoundError(args[0], ctx.manifest.Selectors(), noColor))
	}

	writer := cmd.OutOrStdout()

	if ctx.format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entry)
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(writer, "%s (%s)\n", entry.Selector, entry.Kind)
	fmt.Fprintf(writer, "Class: %s\n", entry.Class)
	if entry.ExportAs != "" {
		fmt.Fprintf(writer, "Export as: %s\n", entry.ExportAs)
	}
	printEntryList(writer, "Inputs", entry.Inputs)
	printEntryList(writer, "Outputs", entry.Outputs)
	printEntryList(writer, "Attrs", entry.Attrs)
	printEntryMap(writer, "Host", entry.Host)
	if len(entry.Queries) > 0 {
		fmt.Fprintln(writer, "Queries:")
		props := make([]string, 0, len(entry.Queries))
		for prop := range entry.Queries {
			props = append(props, prop)
		}
		sort.Strings(props)
		for _, prop := range props {
			q := entry.Queries[prop]
			fmt.Fprintf(writer, "  %s: %s -> %s\n", prop, q.Kind, q.Target)
		}
	}
	printEntryMap(writer, "Requires", entry.Requires)
	if entry.Template != "" {
		fmt.Fprintf(writer, "Template:\n  %s\n", entry.Template)
	}
	return nil
}

// runIntrospectDepsCommand executes the 'introspect deps' command
func runIntrospectDepsCommand(cmd *cobra.Command, args []string) error {
	ctx, err := loadIntrospectContext()
	if err != nil {
		return err
	}
	defer ctx.logger.Sync()

	entry, ok := ctx.manifest.Entry(args[0])
	if !ok {
		return errors.New(ui.DirectiveNotFoundError(args[0], ctx.manifest.Selectors(), noColor))
	}

	writer := cmd.OutOrStdout()

	if ctx.format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entry.Requires)
	}

	if len(entry.Requires) == 0 {
		fmt.Fprintf(writer, "%s requires no directives from the component tree\n", entry.Selector)
		return nil
	}

	table := ui.NewTable(writer, []string{"PARAMETER", "LOOKUP"}, noColor)
	for _, param := range sortedKeys(entry.Requires) {
		table.AddRow(param, entry.Requires[param])
	}
	table.Render()
	return nil
}

func printEntryList(w io.Writer, label string, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, entry := range entries {
		fmt.Fprintf(w, "  %s\n", entry)
	}
}

func printEntryMap(w io.Writer, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, key := range sortedKeys(m) {
		fmt.Fprintf(w, "  %s: %s\n", key, m[key])
	}
}

// sortedKeys returns map keys sorted for deterministic output
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
