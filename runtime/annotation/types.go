package annotation

import "reflect"

// Directive is the class-level declaration annotation. Selector identifies
// the directive; the remaining fields are the explicit metadata payload that
// seeds resolution before any property-level facts are merged in.
//
// Inputs, Outputs and Attrs entries are either a bare property name ("prop")
// or an aliased form ("prop: publicAlias").
type Directive struct {
	Selector  string                     // Matching identifier (e.g. "login-form")
	Inputs    []string                   // Bindable input properties
	Outputs   []string                   // Event-emitting output properties
	Attrs     []string                   // Static attribute bindings
	Host      map[string]string          // Binding/listener expression -> handler expression
	ExportAs  string                     // Template-local export name ("" = none)
	Queries   map[string]QueryDescriptor // Content/view queries keyed by property
	Providers []any                      // Opaque provider configuration, passed through
}

// Component is the component variant of the declaration annotation: a
// Directive plus a template and an opaque legacy configuration block.
type Component struct {
	Directive
	Template string
	Legacy   map[string]any
}

// Declaration is the class-level fact stored for a type: either a Directive
// or a Component.
type Declaration interface {
	declaration()
}

func (Directive) declaration() {}
func (Component) declaration() {}

// PropertyAnnotation is a member-level fact. Exactly one annotation variant
// is attached per fact; a property may carry several facts.
type PropertyAnnotation interface {
	propertyAnnotation()
}

// Input marks a property as a bindable input. Alias, when non-empty, is the
// public name exposed to templates.
type Input struct{ Alias string }

// Output marks a property as an event output.
type Output struct{ Alias string }

// Attr marks a property as bound to a static host attribute.
type Attr struct{ Alias string }

// HostBinding binds a property value to a host element binding expression,
// e.g. HostBinding{Binding: "class.disabled"} on property "isDisabled".
type HostBinding struct{ Binding string }

// HostListener routes a host event to a method on the directive. Args are
// the expressions passed to the handler, in order.
type HostListener struct {
	Event string
	Args  []string
}

// ContentChild queries for the first matching element projected into the
// directive's content.
type ContentChild struct{ Target Token }

// ContentChildren queries for all matching elements projected into the
// directive's content.
type ContentChildren struct{ Target Token }

// ViewChildren queries for all matching elements in the directive's own view.
type ViewChildren struct{ Target Token }

func (Input) propertyAnnotation()           {}
func (Output) propertyAnnotation()          {}
func (Attr) propertyAnnotation()            {}
func (HostBinding) propertyAnnotation()     {}
func (HostListener) propertyAnnotation()    {}
func (ContentChild) propertyAnnotation()    {}
func (ContentChildren) propertyAnnotation() {}
func (ViewChildren) propertyAnnotation()    {}

// QueryKind tags the flavor of a content/view query.
type QueryKind int

const (
	QueryContentChild QueryKind = iota
	QueryContentChildren
	QueryViewChildren
)

// String returns the string representation of the query kind.
func (k QueryKind) String() string {
	switch k {
	case QueryContentChild:
		return "content_child"
	case QueryContentChildren:
		return "content_children"
	case QueryViewChildren:
		return "view_children"
	default:
		return "unknown"
	}
}

// QueryDescriptor describes a single content/view query: what kind of query
// it is and what it targets. Descriptors are comparable, so resolved records
// can be checked for deep equality in tests and by callers.
type QueryDescriptor struct {
	Kind   QueryKind
	Target Token
}

// Token identifies a dependency or query target: either a literal name or a
// reference to another annotated class. The zero Token is the empty name.
type Token struct {
	name  string
	class reflect.Type
}

// Name builds a literal-name token.
func Name(s string) Token { return Token{name: s} }

// Class builds a class-reference token for T. The reference is resolved to
// T's declared selector at resolution time.
func Class[T any]() Token { return Token{class: TypeOf[T]()} }

// IsClass reports whether the token is a class reference.
func (t Token) IsClass() bool { return t.class != nil }

// ClassType returns the referenced class type, or nil for name tokens.
func (t Token) ClassType() reflect.Type { return t.class }

// Value returns the literal name for name tokens and the referenced class's
// display name for class tokens.
func (t Token) Value() string {
	if t.class != nil {
		return DisplayName(t.class)
	}
	return t.name
}

// Qualifier is an injection scope qualifier attached to a constructor
// parameter. Qualifiers combine with bitwise or.
type Qualifier uint8

const (
	// Host restricts the lookup to directive instances on the current or an
	// ancestor element. Only host-qualified parameters participate in
	// required-directive resolution.
	Host Qualifier = 1 << iota
	// Self restricts the lookup to the current scope only.
	Self
	// SkipSelf starts the lookup at the parent scope.
	SkipSelf
	// Optional marks the dependency as satisfiable by absence.
	Optional
)

// Param is the per-constructor-parameter fact: the parameter's binding name,
// its injection token, and its scope qualifier flags.
type Param struct {
	Name     string
	Token    Token
	Host     bool
	Self     bool
	SkipSelf bool
	Optional bool
}

// PropertyFact pairs a property name with one annotation attached to it.
type PropertyFact struct {
	Property   string
	Annotation PropertyAnnotation
}

// TypeOf returns the reflect.Type identity used to key the fact base for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// DisplayName returns the name used to identify a class in error messages.
func DisplayName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
