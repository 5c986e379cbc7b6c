package metadata

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/lattice-ui/lattice/runtime/annotation"
)

// SchemaVersion identifies the manifest document schema for evolution.
const SchemaVersion = "1.0.0"

// Manifest is a versioned snapshot of resolved directive metadata for a set
// of classes, serialized as JSON for tooling (the lattice introspect
// commands consume it). It is a plain export: loading it back does not
// repopulate the fact base.
type Manifest struct {
	Version    string    `json:"version"`    // Schema version for evolution
	Generated  time.Time `json:"generated"`  // Timestamp of manifest generation
	Directives []Entry   `json:"directives"` // One entry per exported class
}

// Entry captures one class's resolved record plus its required-directive
// map, flattened to JSON-friendly shapes.
type Entry struct {
	Class    string              `json:"class"`               // Class display name
	Kind     string              `json:"kind"`                // "directive" or "component"
	Selector string              `json:"selector"`            // Declared selector
	Inputs   []string            `json:"inputs,omitempty"`    // Merged input entries, ordered
	Outputs  []string            `json:"outputs,omitempty"`   // Merged output entries, ordered
	Attrs    []string            `json:"attrs,omitempty"`     // Merged attr entries, ordered
	Host     map[string]string   `json:"host,omitempty"`      // Complete host map
	ExportAs string              `json:"export_as,omitempty"` // Template-local export name
	Queries  map[string]QueryRef `json:"queries,omitempty"`   // Queries keyed by property
	Template string              `json:"template,omitempty"`  // Component template
	Legacy   map[string]any      `json:"legacy,omitempty"`    // Opaque legacy configuration
	Requires map[string]string   `json:"requires,omitempty"`  // Parameter -> lookup expression
}

// QueryRef is the serialized form of a query descriptor.
type QueryRef struct {
	Kind   string `json:"kind"`   // "content_child", "content_children", "view_children"
	Target string `json:"target"` // Selector literal or referenced class name
}

// ExportManifest resolves each class and its required-directive map into a
// manifest. It fails fast on the first resolution error; a manifest is never
// partially populated.
func ExportManifest(types ...reflect.Type) (*Manifest, error) {
	manifest := &Manifest{
		Version:   SchemaVersion,
		Generated: time.Now().UTC(),
	}

	for _, t := range types {
		resolved, err := Resolve(t)
		if err != nil {
			return nil, err
		}
		requires, err := RequiredDirectivesMap(t)
		if err != nil {
			return nil, err
		}
		manifest.Directives = append(manifest.Directives, newEntry(t, resolved, requires))
	}

	return manifest, nil
}

// ReadManifest parses a manifest document previously produced by
// ExportManifest.
func ReadManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	return &manifest, nil
}

// Encode serializes the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Entry finds a manifest entry by selector.
func (m *Manifest) Entry(selector string) (*Entry, bool) {
	for i := range m.Directives {
		if m.Directives[i].Selector == selector {
			return &m.Directives[i], true
		}
	}
	return nil, false
}

// Selectors returns the selectors of all entries, sorted.
func (m *Manifest) Selectors() []string {
	selectors := make([]string, 0, len(m.Directives))
	for _, entry := range m.Directives {
		selectors = append(selectors, entry.Selector)
	}
	sort.Strings(selectors)
	return selectors
}

func newEntry(t reflect.Type, resolved Resolved, requires map[string]string) Entry {
	record := resolved.Directive()

	entry := Entry{
		Class:    annotation.DisplayName(t),
		Kind:     resolved.Kind().String(),
		Selector: record.Selector,
		Inputs:   record.Inputs,
		Outputs:  record.Outputs,
		Attrs:    record.Attrs,
		ExportAs: record.ExportAs,
	}
	if len(record.Host) > 0 {
		entry.Host = record.Host
	}
	if len(record.Queries) > 0 {
		entry.Queries = make(map[string]QueryRef, len(record.Queries))
		for prop, q := range record.Queries {
			entry.Queries[prop] = QueryRef{
				Kind:   q.Kind.String(),
				Target: q.Target.Value(),
			}
		}
	}
	if comp, ok := resolved.(*ComponentMetadata); ok {
		entry.Template = comp.Template
		entry.Legacy = comp.Legacy
	}
	if len(requires) > 0 {
		entry.Requires = requires
	}
	return entry
}
