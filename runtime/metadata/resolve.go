package metadata

import (
	"reflect"
	"strings"

	"github.com/lattice-ui/lattice/runtime/annotation"
)

// Resolve merges the annotations recorded for a class into one canonical
// metadata record.
//
// The record is seeded from the class-level declaration's explicit payload,
// then each property-level annotation is merged in declaration order:
// Input/Output/Attr entries append after the payload entries for the same
// kind, HostBinding/HostListener complete the host map, and query
// annotations complete the query map. When a property annotation names a
// property already present in a payload sequence, the annotation entry
// replaces it. The result is the component variant exactly when the
// declaration is the component kind.
//
// Resolve fails only when the class has no declaration annotation, with a
// *MissingAnnotationError naming the class. It recomputes on every call and
// returns a fresh record each time.
func Resolve(t reflect.Type) (Resolved, error) {
	facts, ok := annotation.Lookup(t)
	if !ok {
		return nil, &MissingAnnotationError{Class: annotation.DisplayName(t)}
	}
	decl, ok := facts.Declaration()
	if !ok {
		return nil, &MissingAnnotationError{Class: annotation.DisplayName(t)}
	}

	var base annotation.Directive
	comp, isComponent := decl.(annotation.Component)
	if isComponent {
		base = comp.Directive
	} else {
		base = decl.(annotation.Directive)
	}

	record := &DirectiveMetadata{
		Selector:  base.Selector,
		Inputs:    append([]string(nil), base.Inputs...),
		Outputs:   append([]string(nil), base.Outputs...),
		Attrs:     append([]string(nil), base.Attrs...),
		Host:      copyStringMap(base.Host),
		ExportAs:  base.ExportAs,
		Queries:   copyQueryMap(base.Queries),
		Providers: append([]any(nil), base.Providers...),
	}

	for _, fact := range facts.Properties() {
		mergeProperty(record, fact)
	}

	if isComponent {
		return &ComponentMetadata{
			DirectiveMetadata: *record,
			Template:          comp.Template,
			Legacy:            copyAnyMap(comp.Legacy),
		}, nil
	}
	return record, nil
}

func mergeProperty(record *DirectiveMetadata, fact annotation.PropertyFact) {
	prop := fact.Property
	switch a := fact.Annotation.(type) {
	case annotation.Input:
		record.Inputs = appendMember(record.Inputs, prop, a.Alias)
	case annotation.Output:
		record.Outputs = appendMember(record.Outputs, prop, a.Alias)
	case annotation.Attr:
		record.Attrs = appendMember(record.Attrs, prop, a.Alias)
	case annotation.HostBinding:
		record.Host["["+a.Binding+"]"] = prop
	case annotation.HostListener:
		record.Host["("+a.Event+")"] = prop + "(" + strings.Join(a.Args, ", ") + ")"
	case annotation.ContentChild:
		record.Queries[prop] = annotation.QueryDescriptor{
			Kind:   annotation.QueryContentChild,
			Target: a.Target,
		}
	case annotation.ContentChildren:
		record.Queries[prop] = annotation.QueryDescriptor{
			Kind:   annotation.QueryContentChildren,
			Target: a.Target,
		}
	case annotation.ViewChildren:
		record.Queries[prop] = annotation.QueryDescriptor{
			Kind:   annotation.QueryViewChildren,
			Target: a.Target,
		}
	}
}

// appendMember appends the formatted entry for prop to seq, dropping any
// existing entry for the same property name so bare and aliased forms never
// coexist. The relative order of unrelated entries is preserved.
func appendMember(seq []string, prop, alias string) []string {
	kept := make([]string, 0, len(seq)+1)
	for _, entry := range seq {
		if entryProperty(entry) != prop {
			kept = append(kept, entry)
		}
	}
	return append(kept, memberEntry(prop, alias))
}

// memberEntry formats a sequence entry: "prop" bare, "prop: alias" aliased.
func memberEntry(prop, alias string) string {
	if alias == "" {
		return prop
	}
	return prop + ": " + alias
}

// entryProperty extracts the property name from a sequence entry, for both
// the bare and the aliased form.
func entryProperty(entry string) string {
	if i := strings.IndexByte(entry, ':'); i >= 0 {
		return strings.TrimSpace(entry[:i])
	}
	return strings.TrimSpace(entry)
}

func copyStringMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyQueryMap(src map[string]annotation.QueryDescriptor) map[string]annotation.QueryDescriptor {
	dst := make(map[string]annotation.QueryDescriptor, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyAnyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
