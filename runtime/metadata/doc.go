// Package metadata resolves the annotations recorded for a class into a
// single canonical metadata record, and computes how a class's
// constructor-level dependencies must be located in the surrounding
// component tree.
//
// The two entry points are independent pipelines over the same fact base
// (runtime/annotation):
//
//	resolved, err := metadata.Resolve(annotation.TypeOf[LoginForm]())
//	requires, err := metadata.RequiredDirectivesMap(annotation.TypeOf[LoginForm]())
//
// Resolve merges the class-level explicit payload with all property-level
// annotations under deterministic precedence and ordering rules.
// RequiredDirectivesMap translates host-qualified constructor parameters
// into lookup expressions of the form ["?"]["^"]name, which a host runtime
// uses to search for required directive instances.
//
// Both operations are stateless and recompute from the fact base on every
// call; results are fresh values owned by the caller. For tooling, a
// Manifest captures the resolved records of a set of classes as a versioned
// JSON document (see ExportManifest / ReadManifest).
package metadata
