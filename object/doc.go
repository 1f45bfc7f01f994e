// Package object is the composition core of predictably-core.
//
// A composable object is a struct that embeds Base and declares its
// configuration parameters with `param` struct tags. The package provides
// uniform access to those parameters (GetParams/SetParams, including nested
// `component__subparam` paths), inheritable metadata tags resolved across
// embedded ancestors (GetTag/GetTags/SetTag), deterministic reconstruction
// (Clone), and a deterministic human-readable representation (Render).
//
// Key entry points:
//   - Register: declare a type's constructor and class-level tags
//   - GetParams / SetParams: introspect and mutate configuration
//   - Clone: fresh, unfitted copy with equal configuration
//   - Render: parameters that differ from their defaults, width-wrapped
package object
