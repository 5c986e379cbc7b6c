package metadata

import (
	"reflect"

	"github.com/lattice-ui/lattice/runtime/annotation"
)

// RequiredDirectivesMap computes, for each host-qualified constructor
// parameter of a class, the lookup expression a host runtime uses to locate
// the required directive instance. The map is keyed by the parameter's own
// binding name. Parameters without the Host qualifier are excluded entirely;
// they are satisfied by a different injection channel.
//
// Lookup expressions follow the grammar ["?"]["^"]name:
//
//	{Host}                 -> "^name"   (search ancestor scopes)
//	{Host, Optional}       -> "?^name"
//	{Host, Self}           -> "name"    (current scope only)
//	{Host, Self, Optional} -> "?name"
//
// A name token is used directly as the dependency name; a class-reference
// token is resolved to that class's declared selector via Resolve, so a
// referenced class without a declaration annotation surfaces a
// *MissingAnnotationError. An empty dependency name fails with a
// *EmptyTokenError; declaring both Self and SkipSelf fails with a
// *ConflictingQualifiersError.
func RequiredDirectivesMap(t reflect.Type) (map[string]string, error) {
	required := make(map[string]string)

	facts, ok := annotation.Lookup(t)
	if !ok {
		return required, nil
	}

	for _, param := range facts.Params() {
		if !param.Host {
			continue
		}

		name, err := resolveTokenName(param.Token)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, &EmptyTokenError{Param: param.Name}
		}
		if param.Self && param.SkipSelf {
			return nil, &ConflictingQualifiersError{Dependency: name}
		}

		expr := name
		if !param.Self {
			// Default ancestor search; Self pins the lookup to the
			// current scope and suppresses the tree-walk prefix.
			expr = "^" + expr
		}
		if param.Optional {
			expr = "?" + expr
		}
		required[param.Name] = expr
	}

	return required, nil
}

// resolveTokenName turns an injection token into a dependency name before
// qualifier composition: name tokens pass through, class-reference tokens
// resolve to the referenced class's selector.
func resolveTokenName(token annotation.Token) (string, error) {
	if !token.IsClass() {
		return token.Value(), nil
	}
	resolved, err := Resolve(token.ClassType())
	if err != nil {
		return "", err
	}
	return resolved.Directive().Selector, nil
}
