// Package contentfront implements the content dispatch and presentation
// engine for the rendering frontend: it resolves a request path plus
// format/locale/variant hints into a single upstream fetch, classifies the
// returned document by schema, negotiates the output representation,
// derives cache directives and applies experiment overrides before
// rendering.
//
// The package owns no persisted state. The schema registry and the
// experiment override table are built once at startup and are read-only
// afterwards, so they are safe for unsynchronized concurrent reads.
package contentfront
