// Package ferrumerr collects the sentinel errors the pipeline returns to
// its caller, so a host application can distinguish error kinds with
// errors.Is/errors.As instead of matching on message text.
//
// Spec reference: spec.md §7 Error Handling Design.
package ferrumerr

import "errors"

var (
	// ErrParse marks a CSS parse error that survived past the point
	// where it should have been recovered (skip-the-declaration). The
	// tokenizer/parser recover from bad input silently per spec.md §7
	// and never return it; no function in this module returns ErrParse.
	ErrParse = errors.New("ferrum: css parse error")

	// ErrMissingResource marks a linked resource (stylesheet, image)
	// that could not be loaded. Per spec.md §7 this is never returned
	// from the normal rendering pipeline — stylesheets are omitted and
	// images fall back to zero intrinsic dimensions — and
	// dom.ResourceLoader returns its errors without wrapping them in it.
	ErrMissingResource = errors.New("ferrum: missing linked resource")

	// ErrStructural marks a box-tree invariant violation: an
	// inline-level styled node acquired block-level children, which
	// would require it to establish a block formatting context it
	// cannot establish. Fatal — returned to the caller, never
	// recovered from, since there is no well-defined layout for it.
	ErrStructural = errors.New("ferrum: structural violation in box tree")

	// ErrDriver marks a fatal error from outside the rendering
	// pipeline proper: the input HTML file could not be read, or the
	// requested viewport is invalid.
	ErrDriver = errors.New("ferrum: driver error")
)
