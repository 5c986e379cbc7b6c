package metadata

// MissingAnnotationError is returned by Resolve when a class carries no
// declaration annotation, directly or transitively via a class-reference
// injection token.
type MissingAnnotationError struct {
	// Class is the display name of the offending class.
	Class string
}

// Error implements the error interface.
func (e *MissingAnnotationError) Error() string {
	return "no Directive annotation found on " + e.Class
}

// EmptyTokenError is returned by RequiredDirectivesMap when a host-qualified
// parameter's token resolves to an empty dependency name.
type EmptyTokenError struct {
	// Param is the constructor parameter carrying the empty token.
	Param string
}

// Error implements the error interface.
func (e *EmptyTokenError) Error() string {
	return "no Directive instance name provided within @Inject()"
}

// ConflictingQualifiersError is returned by RequiredDirectivesMap when a
// host-qualified parameter declares both Self and SkipSelf.
type ConflictingQualifiersError struct {
	// Dependency is the resolved dependency name.
	Dependency string
}

// Error implements the error interface.
func (e *ConflictingQualifiersError) Error() string {
	return "you cannot provide both @Self() and @SkipSelf() for @Inject(" + e.Dependency + ")"
}
