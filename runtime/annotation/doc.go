// Package annotation is the declarative fact base for the lattice runtime.
//
// Go has no class decorators, so directive authors attach annotations
// explicitly at definition time via the Define builder, typically from the
// package init of the file that declares the type:
//
//	type LoginForm struct{ ... }
//
//	func init() {
//		annotation.Define[LoginForm]().
//			Component(annotation.Component{
//				Directive: annotation.Directive{Selector: "login-form"},
//				Template:  "<form>...</form>",
//			}).
//			Input("username", "user").
//			HostListener("onSubmit", "submit").
//			Param("panel", annotation.Name("panel"), annotation.Host).
//			Register()
//	}
//
// The stored facts are read-only projections: Lookup returns copies, and the
// resolution layer (runtime/metadata) never mutates them. Registration is
// expected to finish before reads begin, but the store is lock-protected so
// late registration and concurrent reads are still safe.
package annotation
