package object

import (
	"fmt"
	"reflect"
	"strings"
)

// ReflectionError reports a type whose parameters cannot be determined.
// Downstream accessors, the cloner, and the renderer all depend on the
// schema, so this is raised rather than silently ignored.
type ReflectionError struct {
	Type   reflect.Type
	Reason string
}

func (e *ReflectionError) Error() string {
	if e.Type == nil {
		return "object: cannot reflect parameters: " + e.Reason
	}

	return fmt.Sprintf("object: cannot reflect parameters of %s: %s", e.Type, e.Reason)
}

// UnknownParameterError reports SetParams paths that do not resolve to a
// declared parameter. All offending paths of one call are collected before
// failing, and nothing is mutated.
type UnknownParameterError struct {
	Paths []string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("object: unknown parameter path(s): %s", strings.Join(e.Paths, ", "))
}

// CycleError reports a nested parameter graph that revisits an object
// already on the current traversal path.
type CycleError struct {
	// Path is the parameter path at which the revisit was detected.
	Path string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("object: parameter graph cycle detected at %q", e.Path)
}

// TagNotFoundError reports a tag lookup that resolved nowhere and had no
// default to fall back to.
type TagNotFoundError struct {
	Key      string
	TypeName string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("object: tag %q not found on %s", e.Key, e.TypeName)
}

// CloneError reports a clone that failed its post-construction equality
// check, which guards against constructors with side-effecting defaults or
// drift between declared parameters and stored fields.
type CloneError struct {
	TypeName string
	Reason   string
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("object: clone of %s: %s", e.TypeName, e.Reason)
}
