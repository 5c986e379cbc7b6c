package metadata

import "github.com/lattice-ui/lattice/runtime/annotation"

// Kind distinguishes the two resolved record variants.
type Kind int

const (
	KindDirective Kind = iota
	KindComponent
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDirective:
		return "directive"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Resolved is the outcome of Resolve: either a *DirectiveMetadata or a
// *ComponentMetadata. Callers that need component-only fields type-assert:
//
//	if comp, ok := resolved.(*ComponentMetadata); ok {
//		render(comp.Template)
//	}
type Resolved interface {
	// Directive returns the base record shared by both variants.
	Directive() *DirectiveMetadata

	// Kind reports which variant this record is.
	Kind() Kind
}

// DirectiveMetadata is the fully merged, normalized metadata record for a
// directive class. Inputs, Outputs and Attrs preserve declaration order,
// with explicit-payload entries preceding annotation-derived entries; for a
// given property name only one entry survives.
type DirectiveMetadata struct {
	Selector  string                                // Matching identifier
	Inputs    []string                              // "prop" or "prop: alias", ordered
	Outputs   []string                              // "prop" or "prop: alias", ordered
	Attrs     []string                              // "prop" or "prop: alias", ordered
	Host      map[string]string                     // Complete host binding/listener map
	ExportAs  string                                // Template-local export name ("" = none)
	Queries   map[string]annotation.QueryDescriptor // Complete query map keyed by property
	Providers []any                                 // Provider configuration, passed through
}

// Directive implements Resolved.
func (m *DirectiveMetadata) Directive() *DirectiveMetadata { return m }

// Kind implements Resolved.
func (m *DirectiveMetadata) Kind() Kind { return KindDirective }

// ComponentMetadata is the component variant: the directive record plus the
// component-only template and legacy configuration.
type ComponentMetadata struct {
	DirectiveMetadata
	Template string
	Legacy   map[string]any
}

// Kind implements Resolved.
func (m *ComponentMetadata) Kind() Kind { return KindComponent }
