package annotation

import (
	"reflect"
	"sync"
)

// Facts is the complete set of annotations recorded for one class: at most
// one declaration, the property facts in declaration order, and the
// constructor parameter facts in declaration order.
type Facts struct {
	declaration Declaration
	properties  []PropertyFact
	params      []Param
}

// Declaration returns the class-level declaration annotation, if present.
func (f *Facts) Declaration() (Declaration, bool) {
	if f == nil || f.declaration == nil {
		return nil, false
	}
	return f.declaration, true
}

// Properties returns the property-level facts in declaration order.
// The returned slice is a copy.
func (f *Facts) Properties() []PropertyFact {
	if f == nil || len(f.properties) == 0 {
		return nil
	}
	out := make([]PropertyFact, len(f.properties))
	copy(out, f.properties)
	return out
}

// Params returns the constructor parameter facts in declaration order.
// The returned slice is a copy.
func (f *Facts) Params() []Param {
	if f == nil || len(f.params) == 0 {
		return nil
	}
	out := make([]Param, len(f.params))
	copy(out, f.params)
	return out
}

// registry is the process-wide fact store, keyed by class identity.
// Registration happens at class-definition time (package init); reads happen
// afterwards, but the store is lock-protected so the two never race.
type registry struct {
	mu    sync.RWMutex
	facts map[reflect.Type]*Facts
}

var globalRegistry = &registry{
	facts: make(map[reflect.Type]*Facts),
}

// Lookup returns the recorded facts for a class, or ok=false when the class
// carries no annotations at all. Absence is not an error.
func Lookup(t reflect.Type) (*Facts, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	f, ok := globalRegistry.facts[t]
	if !ok {
		return nil, false
	}
	// Return a copy to prevent external mutation of the stored facts.
	cp := &Facts{declaration: f.declaration}
	cp.properties = append(cp.properties, f.properties...)
	cp.params = append(cp.params, f.params...)
	return cp, true
}

// Reset clears the fact store (used for testing).
func Reset() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.facts = make(map[reflect.Type]*Facts)
}

// Builder accumulates annotations for one class before committing them to
// the fact store. Obtain one via Define and finish with Register.
type Builder struct {
	t     reflect.Type
	facts Facts
}

// Define starts annotating class T.
func Define[T any]() *Builder {
	return &Builder{t: TypeOf[T]()}
}

// Directive records the class-level declaration as the plain directive kind.
// A later Directive or Component call on the same builder replaces it.
func (b *Builder) Directive(d Directive) *Builder {
	b.facts.declaration = d
	return b
}

// Component records the class-level declaration as the component kind.
func (b *Builder) Component(c Component) *Builder {
	b.facts.declaration = c
	return b
}

// Input attaches an Input annotation to prop. alias may be empty.
func (b *Builder) Input(prop, alias string) *Builder {
	return b.property(prop, Input{Alias: alias})
}

// Output attaches an Output annotation to prop. alias may be empty.
func (b *Builder) Output(prop, alias string) *Builder {
	return b.property(prop, Output{Alias: alias})
}

// Attr attaches an Attr annotation to prop. alias may be empty.
func (b *Builder) Attr(prop, alias string) *Builder {
	return b.property(prop, Attr{Alias: alias})
}

// HostBinding binds prop to the host binding expression.
func (b *Builder) HostBinding(prop, binding string) *Builder {
	return b.property(prop, HostBinding{Binding: binding})
}

// HostListener routes the host event to the method prop, forwarding args.
func (b *Builder) HostListener(prop, event string, args ...string) *Builder {
	return b.property(prop, HostListener{Event: event, Args: args})
}

// ContentChild attaches a content-child query to prop.
func (b *Builder) ContentChild(prop string, target Token) *Builder {
	return b.property(prop, ContentChild{Target: target})
}

// ContentChildren attaches a content-children query to prop.
func (b *Builder) ContentChildren(prop string, target Token) *Builder {
	return b.property(prop, ContentChildren{Target: target})
}

// ViewChildren attaches a view-children query to prop.
func (b *Builder) ViewChildren(prop string, target Token) *Builder {
	return b.property(prop, ViewChildren{Target: target})
}

// Param records the next constructor parameter, in declaration order.
func (b *Builder) Param(name string, token Token, quals ...Qualifier) *Builder {
	var q Qualifier
	for _, extra := range quals {
		q |= extra
	}
	b.facts.params = append(b.facts.params, Param{
		Name:     name,
		Token:    token,
		Host:     q&Host != 0,
		Self:     q&Self != 0,
		SkipSelf: q&SkipSelf != 0,
		Optional: q&Optional != 0,
	})
	return b
}

// Register commits the accumulated facts to the fact store, replacing any
// facts previously recorded for the class.
func (b *Builder) Register() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	committed := b.facts
	globalRegistry.facts[b.t] = &committed
}

func (b *Builder) property(prop string, a PropertyAnnotation) *Builder {
	b.facts.properties = append(b.facts.properties, PropertyFact{
		Property:   prop,
		Annotation: a,
	})
	return b
}
